package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/apperrors"
	"github.com/textpesa/smsrelay/internal/handler"
	"github.com/textpesa/smsrelay/internal/models"
	"github.com/textpesa/smsrelay/internal/service"
)

type stubMessageService struct {
	result service.SendResult
}

func (s *stubMessageService) SendMessage(context.Context, string, string, int) service.SendResult {
	return s.result
}

func (s *stubMessageService) GetSentMessages(page, limit int) (*service.MessageListResult, error) {
	return &service.MessageListResult{
		Pagination: service.Pagination{CurrentPage: page, ItemsPerPage: limit},
	}, nil
}

type stubBulkService struct {
	result service.BulkResult
	err    error
	stats  *models.CampaignStats
}

func (s *stubBulkService) SendBulk(context.Context, service.BulkRequest) (service.BulkResult, error) {
	return s.result, s.err
}

func (s *stubBulkService) SendBulkFast(context.Context, service.BulkRequest) (service.BulkResult, error) {
	return s.result, s.err
}

func (s *stubBulkService) GetCampaignStats(string) (*models.CampaignStats, error) {
	if s.stats == nil {
		return nil, fmt.Errorf("campaign not found")
	}
	return s.stats, nil
}

type stubSchedulerService struct {
	id        int64
	err       error
	cancelled bool
}

func (s *stubSchedulerService) ScheduleMessage(context.Context, string, string, int, time.Time) (int64, error) {
	return s.id, s.err
}

func (s *stubSchedulerService) CancelMessage(int64) (bool, error) {
	return s.cancelled, nil
}

func (s *stubSchedulerService) ProcessDueMessages(context.Context) (int, error) {
	return 3, nil
}

type stubRetryService struct{}

func (stubRetryService) ProcessQueue(context.Context) (service.RetryResult, error) {
	return service.RetryResult{Attempted: 2, Succeeded: 1, Failed: 1}, nil
}

type stubReconciliationService struct {
	gotOverride time.Duration
}

func (s *stubReconciliationService) Run(_ context.Context, override time.Duration) (service.ReconciliationResult, error) {
	s.gotOverride = override
	return service.ReconciliationResult{Reconciled: 4, Threshold: 6 * time.Hour}, nil
}

type stubHealthService struct {
	status string
}

func (s *stubHealthService) GetHealth() *service.HealthStatus {
	return &service.HealthStatus{Status: s.status}
}

func newTestHandler(svc *service.Service) http.Handler {
	return handler.NewHandler(svc, zap.NewNop()).Routes()
}

func TestHandler_SendMessage(t *testing.T) {
	svc := &service.Service{
		Message: &stubMessageService{result: service.SendResult{Success: true, MessageID: 9}},
	}

	body, _ := json.Marshal(map[string]interface{}{
		"recipient": "+254700000001",
		"body":      "hello",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader(body))
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result service.SendResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, int64(9), result.MessageID)
}

func TestHandler_SendMessage_InvalidJSON(t *testing.T) {
	svc := &service.Service{Message: &stubMessageService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SendMessage_InvalidInput(t *testing.T) {
	svc := &service.Service{
		Message: &stubMessageService{result: service.SendResult{
			Success:   false,
			Error:     "message body is empty",
			ErrorCode: apperrors.CodeInvalidInput,
		}},
	}

	body, _ := json.Marshal(map[string]interface{}{"recipient": "+254700000001"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader(body))
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message body is empty")
}

func TestHandler_GetSentMessages(t *testing.T) {
	svc := &service.Service{Message: &stubMessageService{}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages/sent?page=2&limit=5", nil)
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result service.MessageListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Pagination.CurrentPage)
	assert.Equal(t, 5, result.Pagination.ItemsPerPage)
}

func TestHandler_SendBulk(t *testing.T) {
	tests := []struct {
		name       string
		bulk       *stubBulkService
		wantStatus int
	}{
		{
			name:       "success",
			bulk:       &stubBulkService{result: service.BulkResult{Successful: 90, Failed: 10, BulkID: "b-1"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight blocked",
			bulk:       &stubBulkService{err: fmt.Errorf("%w: no network connectivity", apperrors.ErrPreflightBlocked)},
			wantStatus: http.StatusPreconditionFailed,
		},
		{
			name:       "invalid input",
			bulk:       &stubBulkService{err: fmt.Errorf("%w: no recipients", apperrors.ErrInvalidInput)},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &service.Service{Bulk: tt.bulk}

			body, _ := json.Marshal(map[string]interface{}{
				"recipients": []string{"+254700000001"},
				"body":       "hello",
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/bulk", bytes.NewReader(body))
			w := httptest.NewRecorder()
			newTestHandler(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_ScheduleMessage(t *testing.T) {
	svc := &service.Service{Scheduler: &stubSchedulerService{id: 12}}

	body, _ := json.Marshal(map[string]interface{}{
		"recipient":    "+254700000001",
		"body":         "hello",
		"scheduled_at": time.Now().Add(time.Hour).Format(time.RFC3339),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/schedule", bytes.NewReader(body))
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "12")
}

func TestHandler_CancelMessage(t *testing.T) {
	svc := &service.Service{Scheduler: &stubSchedulerService{cancelled: true}}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/messages/schedule/5", nil)
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}

func TestHandler_CancelMessage_BadID(t *testing.T) {
	svc := &service.Service{Scheduler: &stubSchedulerService{}}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/messages/schedule/not-a-number", nil)
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ProcessDueMessages(t *testing.T) {
	svc := &service.Service{Scheduler: &stubSchedulerService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/process", nil)
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "3")
}

func TestHandler_ProcessRetryQueue(t *testing.T) {
	svc := &service.Service{Retry: stubRetryService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/retry/process", nil)
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result service.RetryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Succeeded)
}

func TestHandler_RunReconciliation(t *testing.T) {
	recon := &stubReconciliationService{}
	svc := &service.Service{Reconciliation: recon}

	body, _ := json.Marshal(map[string]int64{"threshold_ms": 7200000})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliation/run", bytes.NewReader(body))
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2*time.Hour, recon.gotOverride)
}

func TestHandler_RunReconciliation_NoBody(t *testing.T) {
	recon := &stubReconciliationService{}
	svc := &service.Service{Reconciliation: recon}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliation/run", nil)
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, recon.gotOverride)
}

func TestHandler_GetCampaignStats(t *testing.T) {
	svc := &service.Service{Bulk: &stubBulkService{stats: &models.CampaignStats{CampaignID: "camp-1", Sent: 10}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/camp-1/stats", nil)
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "camp-1")
}

func TestHandler_GetCampaignStats_NotFound(t *testing.T) {
	svc := &service.Service{Bulk: &stubBulkService{}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/missing/stats", nil)
	w := httptest.NewRecorder()
	newTestHandler(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus int
	}{
		{name: "healthy", status: "healthy", wantStatus: http.StatusOK},
		{name: "degraded still serves", status: "degraded", wantStatus: http.StatusOK},
		{name: "unhealthy", status: "unhealthy", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &service.Service{Health: &stubHealthService{status: tt.status}}

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			newTestHandler(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
