// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/apperrors"
	"github.com/textpesa/smsrelay/internal/middleware"
	"github.com/textpesa/smsrelay/internal/service"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

// Routes mounts all API routes.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/messages", h.SendMessage)
		r.Post("/messages/bulk", h.SendBulk)
		r.Get("/messages/sent", h.GetSentMessages)
		r.Post("/messages/schedule", h.ScheduleMessage)
		r.Delete("/messages/schedule/{id}", h.CancelMessage)
		r.Post("/scheduler/process", h.ProcessDueMessages)
		r.Post("/retry/process", h.ProcessRetryQueue)
		r.Post("/reconciliation/run", h.RunReconciliation)
		r.Get("/campaigns/{id}/stats", h.GetCampaignStats)
	})

	r.Get("/health", h.HealthCheck)

	return r
}

type sendMessageRequest struct {
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
	SimSlot   int    `json:"sim_slot"`
}

type sendBulkRequest struct {
	Recipients   []string          `json:"recipients"`
	Body         string            `json:"body"`
	SimSlot      int               `json:"sim_slot"`
	CampaignID   string            `json:"campaign_id"`
	Variants     map[string]string `json:"variants"`
	ChunkSize    int               `json:"chunk_size"`
	ChunkDelayMs int               `json:"chunk_delay_ms"`
}

type scheduleMessageRequest struct {
	Recipient   string    `json:"recipient"`
	Body        string    `json:"body"`
	SimSlot     int       `json:"sim_slot"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

type reconciliationRequest struct {
	ThresholdMs int64 `json:"threshold_ms"`
}

type errorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SendMessage handles a single-send request.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, apperrors.CodeInvalidInput, "invalid request body")
		return
	}

	result := h.service.Message.SendMessage(r.Context(), req.Recipient, req.Body, req.SimSlot)

	if !result.Success && result.ErrorCode == apperrors.CodeInvalidInput {
		render.Status(r, http.StatusBadRequest)
	}
	render.JSON(w, r, result)
}

// SendBulk handles a bulk dispatch request. Transport failures are
// reported in the aggregate counts, not as an HTTP error.
func (h *Handler) SendBulk(w http.ResponseWriter, r *http.Request) {
	var req sendBulkRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, apperrors.CodeInvalidInput, "invalid request body")
		return
	}

	result, err := h.service.Bulk.SendBulk(r.Context(), service.BulkRequest{
		Recipients: req.Recipients,
		Body:       req.Body,
		SimSlot:    req.SimSlot,
		CampaignID: req.CampaignID,
		Variants:   req.Variants,
		ChunkSize:  req.ChunkSize,
		ChunkDelay: time.Duration(req.ChunkDelayMs) * time.Millisecond,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			h.sendError(w, r, http.StatusBadRequest, apperrors.CodeInvalidInput, err.Error())
		case errors.Is(err, apperrors.ErrPreflightBlocked):
			h.sendError(w, r, http.StatusPreconditionFailed, apperrors.CodePreflightBlocked, err.Error())
		default:
			requestID := middleware.GetRequestID(r.Context())
			h.logger.Error("Bulk send failed",
				zap.String("request_id", requestID),
				zap.Error(err))
			h.sendError(w, r, http.StatusInternalServerError, apperrors.CodeInternal, "bulk send failed")
		}
		return
	}

	render.JSON(w, r, result)
}

// GetSentMessages lists sent messages with pagination.
func (h *Handler) GetSentMessages(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 20

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 && v <= 100 {
		limit = v
	}

	result, err := h.service.Message.GetSentMessages(page, limit)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		h.logger.Error("Failed to get sent messages",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, apperrors.CodeInternal, "failed to retrieve sent messages")
		return
	}

	render.JSON(w, r, result)
}

// ScheduleMessage stores a future-dated send.
func (h *Handler) ScheduleMessage(w http.ResponseWriter, r *http.Request) {
	var req scheduleMessageRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, apperrors.CodeInvalidInput, "invalid request body")
		return
	}

	id, err := h.service.Scheduler.ScheduleMessage(r.Context(), req.Recipient, req.Body, req.SimSlot, req.ScheduledAt)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			h.sendError(w, r, http.StatusBadRequest, apperrors.CodeInvalidInput, err.Error())
			return
		}
		h.sendError(w, r, http.StatusInternalServerError, apperrors.CodeInternal, "failed to schedule message")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]int64{"id": id})
}

// CancelMessage cancels a scheduled message that is still pending.
func (h *Handler) CancelMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, apperrors.CodeInvalidInput, "invalid message id")
		return
	}

	cancelled, err := h.service.Scheduler.CancelMessage(id)
	if err != nil {
		h.sendError(w, r, http.StatusInternalServerError, apperrors.CodeInternal, "failed to cancel message")
		return
	}

	render.JSON(w, r, map[string]bool{"cancelled": cancelled})
}

// ProcessDueMessages promotes due scheduled messages on demand.
func (h *Handler) ProcessDueMessages(w http.ResponseWriter, r *http.Request) {
	processed, err := h.service.Scheduler.ProcessDueMessages(r.Context())
	if err != nil {
		h.sendError(w, r, http.StatusInternalServerError, apperrors.CodeInternal, "failed to process due messages")
		return
	}

	render.JSON(w, r, map[string]int{"processed": processed})
}

// ProcessRetryQueue triggers a retry queue sweep on demand.
func (h *Handler) ProcessRetryQueue(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Retry.ProcessQueue(r.Context())
	if err != nil {
		h.sendError(w, r, http.StatusInternalServerError, apperrors.CodeInternal, "retry sweep failed")
		return
	}

	render.JSON(w, r, result)
}

// RunReconciliation triggers a stale sweep, optionally with an explicit
// threshold instead of the carrier-derived one.
func (h *Handler) RunReconciliation(w http.ResponseWriter, r *http.Request) {
	var req reconciliationRequest
	if r.ContentLength > 0 {
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			h.sendError(w, r, http.StatusBadRequest, apperrors.CodeInvalidInput, "invalid request body")
			return
		}
	}

	result, err := h.service.Reconciliation.Run(r.Context(), time.Duration(req.ThresholdMs)*time.Millisecond)
	if err != nil {
		h.sendError(w, r, http.StatusInternalServerError, apperrors.CodeInternal, "reconciliation failed")
		return
	}

	render.JSON(w, r, result)
}

// GetCampaignStats returns the aggregate counters for one campaign.
func (h *Handler) GetCampaignStats(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	stats, err := h.service.Bulk.GetCampaignStats(campaignID)
	if err != nil {
		h.sendError(w, r, http.StatusNotFound, apperrors.CodeNotFound, "campaign not found")
		return
	}

	render.JSON(w, r, stats)
}

// HealthCheck reports dependency health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	if health.Status == "unhealthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, health)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, errorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now(),
	})
}
