// Package gateway is the boundary to the device gateway that hands
// messages to the carrier radio. The device only reports whether a
// message was accepted for submission; it cannot confirm carrier-side
// delivery.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/apperrors"
	"github.com/textpesa/smsrelay/internal/config"
)

// ErrRejected means the device answered but declined the message. The
// device gives no structured reason, so callers can only discriminate
// "rejected" from "unreachable".
var ErrRejected = errors.New("gateway rejected message")

// Request is one submission to the device gateway.
type Request struct {
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
	SimSlot   int    `json:"sim_slot"`
}

// Transport submits a single message. A nil error means the device
// accepted the message for submission; ErrRejected or any other error
// means it did not.
type Transport interface {
	Send(ctx context.Context, req Request) error
}

type sendResponse struct {
	Accepted  bool   `json:"accepted"`
	MessageID string `json:"message_id"`
}

// Client is the HTTP implementation of Transport. Every call carries
// its own deadline so a hung device call fails the message instead of
// stalling the chunk it belongs to.
type Client struct {
	cfg        *config.GatewayConfig
	httpClient *http.Client
	breaker    *Breaker
	logger     *zap.Logger
}

func NewClient(cfg *config.GatewayConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
		breaker: NewBreaker(&cfg.CircuitBreaker, logger),
		logger:  logger,
	}
}

// Send submits one message through the circuit breaker.
func (c *Client) Send(ctx context.Context, req Request) error {
	return c.breaker.Execute(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()

		jsonData, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.cfg.URL+"/messages", bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("x-gateway-auth-key", c.cfg.AuthKey)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrTimeout, err)
			}
			return fmt.Errorf("%w: %v", apperrors.ErrNativeFailure, err)
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				c.logger.Warn("Failed to close response body", zap.Error(closeErr))
			}
		}()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
			return fmt.Errorf("%w: unexpected status code %d", apperrors.ErrNativeFailure, resp.StatusCode)
		}

		var sendResp sendResponse
		if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
			// A 2xx with an unreadable body still means the device
			// took the message.
			sendResp.Accepted = true
		}

		if !sendResp.Accepted {
			return ErrRejected
		}

		return nil
	})
}

// BreakerState exposes breaker health for the health endpoint.
func (c *Client) BreakerState() (state string, requests, failures uint32) {
	requests, failures = c.breaker.Counts()
	return c.breaker.State().String(), requests, failures
}
