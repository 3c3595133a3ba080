package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/apperrors"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/gateway"
)

func gatewayConfig(url string) *config.GatewayConfig {
	return &config.GatewayConfig{
		URL:       url,
		AuthKey:   "test-auth-key",
		TimeoutMs: 2000,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      10,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}
}

func TestClient_Send_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-auth-key", r.Header.Get("x-gateway-auth-key"))

		var req gateway.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+254700000001", req.Recipient)
		assert.Equal(t, 1, req.SimSlot)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"accepted":   true,
			"message_id": "gw-42",
		})
	}))
	defer server.Close()

	client := gateway.NewClient(gatewayConfig(server.URL), zap.NewNop())

	err := client.Send(context.Background(), gateway.Request{
		Recipient: "+254700000001",
		Body:      "hello",
		SimSlot:   1,
	})
	assert.NoError(t, err)
}

func TestClient_Send_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"accepted": false})
	}))
	defer server.Close()

	client := gateway.NewClient(gatewayConfig(server.URL), zap.NewNop())

	err := client.Send(context.Background(), gateway.Request{Recipient: "+254700000001", Body: "hello"})
	assert.ErrorIs(t, err, gateway.ErrRejected)
}

func TestClient_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := gateway.NewClient(gatewayConfig(server.URL), zap.NewNop())

	err := client.Send(context.Background(), gateway.Request{Recipient: "+254700000001", Body: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrNativeFailure)
}

func TestClient_Send_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := gatewayConfig(server.URL)
	cfg.TimeoutMs = 50

	client := gateway.NewClient(cfg, zap.NewNop())

	err := client.Send(context.Background(), gateway.Request{Recipient: "+254700000001", Body: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrTimeout)
}

func TestClient_Send_UnreadableBodyStillAccepted(t *testing.T) {
	// A 2xx with a garbage body means the device took the message.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := gateway.NewClient(gatewayConfig(server.URL), zap.NewNop())

	err := client.Send(context.Background(), gateway.Request{Recipient: "+254700000001", Body: "hello"})
	assert.NoError(t, err)
}

func TestClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := gatewayConfig(server.URL)
	cfg.CircuitBreaker.ConsecutiveFails = 3

	client := gateway.NewClient(cfg, zap.NewNop())

	for i := 0; i < 5; i++ {
		_ = client.Send(context.Background(), gateway.Request{Recipient: "+254700000001", Body: "hello"})
	}

	state, requests, failures := client.BreakerState()
	assert.Equal(t, "open", state)
	assert.LessOrEqual(t, failures, requests)
}

func TestClient_BreakerIgnoresRejections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"accepted": false})
	}))
	defer server.Close()

	cfg := gatewayConfig(server.URL)
	cfg.CircuitBreaker.ConsecutiveFails = 3

	client := gateway.NewClient(cfg, zap.NewNop())

	// Rejections are carrier verdicts, not device faults; the breaker
	// must stay closed no matter how many arrive.
	for i := 0; i < 10; i++ {
		err := client.Send(context.Background(), gateway.Request{Recipient: "+254700000001", Body: "hello"})
		assert.ErrorIs(t, err, gateway.ErrRejected)
	}

	state, _, _ := client.BreakerState()
	assert.Equal(t, "closed", state)
}
