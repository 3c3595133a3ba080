package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/apperrors"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/gateway"
	"github.com/textpesa/smsrelay/internal/models"
	"github.com/textpesa/smsrelay/internal/repository/mocks"
	"github.com/textpesa/smsrelay/internal/service"
)

// testRedis points at a closed port: cache writes fail and must only be
// logged, never surfaced.
func testRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "localhost:9999"})
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-auth-key", r.Header.Get("x-gateway-auth-key"))

		var req gateway.Request
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "+254700000001", req.Recipient)

		w.WriteHeader(http.StatusOK)
		err = json.NewEncoder(w).Encode(map[string]interface{}{
			"accepted":   true,
			"message_id": "gw-1",
		})
		require.NoError(t, err)
	}))
	defer server.Close()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()

	mockMessageRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(msg *models.Message) (int64, error) {
		assert.Equal(t, "+254700000001", msg.Recipient)
		assert.Equal(t, "hello there", msg.Body)
		return 1, nil
	})
	mockMessageRepo.EXPECT().UpdateStatus(int64(1), models.MessageStatusSent, nil).Return(nil)

	cfg := testConfig()
	cfg.Gateway = config.GatewayConfig{
		URL:       server.URL,
		AuthKey:   "test-auth-key",
		TimeoutMs: 5000,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      10,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}

	transport := gateway.NewClient(&cfg.Gateway, zap.NewNop())
	svc := service.NewMessageService(cfg, mockRepo, transport, &fakeFilter{}, testRedis(), zap.NewNop())

	result := svc.SendMessage(context.Background(), "+254700000001", "hello there", 0)

	assert.True(t, result.Success)
	assert.Equal(t, int64(1), result.MessageID)
	assert.Empty(t, result.Error)
}

func TestMessageService_SendMessage_Validation(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		body      string
		wantError string
	}{
		{
			name:      "empty recipient",
			recipient: "   ",
			body:      "hello",
			wantError: "recipient is empty",
		},
		{
			name:      "empty body",
			recipient: "+254700000001",
			body:      "",
			wantError: "message body is empty",
		},
		{
			name:      "body too long",
			recipient: "+254700000001",
			body:      strings.Repeat("a", models.MaxBodyLength+1),
			wantError: "exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repository expectations: invalid input must be rejected
			// before any persistence.
			mockRepo := mocks.NewMockRepository(ctrl)

			svc := service.NewMessageService(testConfig(), mockRepo, &fakeTransport{}, &fakeFilter{}, testRedis(), zap.NewNop())

			result := svc.SendMessage(context.Background(), tt.recipient, tt.body, 0)

			assert.False(t, result.Success)
			assert.Contains(t, result.Error, tt.wantError)
			assert.Equal(t, apperrors.CodeInvalidInput, result.ErrorCode)
			assert.Zero(t, result.MessageID)
		})
	}
}

func TestMessageService_SendMessage_TransportFailureEnqueuesRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockQueueRepo := mocks.NewMockQueueRepository(ctrl)
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()
	mockRepo.EXPECT().Queue().Return(mockQueueRepo).AnyTimes()

	mockMessageRepo.EXPECT().Create(gomock.Any()).Return(int64(7), nil)
	mockMessageRepo.EXPECT().UpdateStatus(int64(7), models.MessageStatusFailed, gomock.Any()).Return(nil)
	mockQueueRepo.EXPECT().Enqueue("+254700000001", "hello", 1).Return(nil)

	transport := &fakeTransport{
		failFor: func(gateway.Request) error {
			return errors.New("gateway unreachable")
		},
	}

	svc := service.NewMessageService(testConfig(), mockRepo, transport, &fakeFilter{}, testRedis(), zap.NewNop())

	result := svc.SendMessage(context.Background(), "+254700000001", "hello", 1)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "gateway unreachable")
	// The write-ahead row exists even though the send failed.
	assert.Equal(t, int64(7), result.MessageID)
}

func TestMessageService_SendMessage_BlockedRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)

	filter := &fakeFilter{blocked: map[string]bool{"+254700000001": true}}
	transport := &fakeTransport{}

	svc := service.NewMessageService(testConfig(), mockRepo, transport, filter, testRedis(), zap.NewNop())

	result := svc.SendMessage(context.Background(), "+254700000001", "hello", 0)

	assert.False(t, result.Success)
	assert.Equal(t, apperrors.CodeComplianceBlocked, result.ErrorCode)
	assert.Zero(t, transport.CallCount())
}

func TestMessageService_GetSentMessages_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()

	messages := []*models.Message{
		{ID: 21, Status: models.MessageStatusSent},
		{ID: 22, Status: models.MessageStatusSent},
	}
	mockMessageRepo.EXPECT().GetSentMessages(20, 10).Return(messages, nil)
	mockMessageRepo.EXPECT().GetTotalSentCount().Return(int64(25), nil)

	svc := service.NewMessageService(testConfig(), mockRepo, &fakeTransport{}, &fakeFilter{}, testRedis(), zap.NewNop())

	result, err := svc.GetSentMessages(3, 10)
	require.NoError(t, err)

	assert.Len(t, result.Messages, 2)
	assert.Equal(t, 3, result.Pagination.CurrentPage)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, 25, result.Pagination.TotalItems)
	assert.Equal(t, 10, result.Pagination.ItemsPerPage)
}
