package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/config"
)

// ConnectivityStatus is the device's current network state.
type ConnectivityStatus struct {
	Type      string `json:"type"`
	Connected bool   `json:"connected"`
}

// DeviceClient reads device state (connectivity, sender role, battery,
// carrier) from the gateway's status API. Preflight and reconciliation
// consume it read-only.
type DeviceClient struct {
	cfg        *config.GatewayConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewDeviceClient(cfg *config.GatewayConfig, logger *zap.Logger) *DeviceClient {
	return &DeviceClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
		logger: logger,
	}
}

func (d *DeviceClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.cfg.URL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-gateway-auth-key", d.cfg.AuthKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query device: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			d.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Connectivity returns the device's current network state.
func (d *DeviceClient) Connectivity(ctx context.Context) (ConnectivityStatus, error) {
	var status ConnectivityStatus
	if err := d.get(ctx, "/device/connectivity", &status); err != nil {
		return ConnectivityStatus{}, err
	}
	return status, nil
}

// IsDefaultSender reports whether the gateway app holds the default
// SMS role on the device.
func (d *DeviceClient) IsDefaultSender(ctx context.Context) (bool, error) {
	var out struct {
		DefaultSender bool `json:"default_sender"`
	}
	if err := d.get(ctx, "/device/role", &out); err != nil {
		return false, err
	}
	return out.DefaultSender, nil
}

// BatteryLevel returns the device battery percentage.
func (d *DeviceClient) BatteryLevel(ctx context.Context) (int, error) {
	var out struct {
		Level int `json:"level"`
	}
	if err := d.get(ctx, "/device/battery", &out); err != nil {
		return 0, err
	}
	return out.Level, nil
}

// Detect returns the carrier identity serving the device, implementing
// carrier.Detector.
func (d *DeviceClient) Detect(ctx context.Context) (string, error) {
	var out struct {
		Carrier string `json:"carrier"`
	}
	if err := d.get(ctx, "/device/carrier", &out); err != nil {
		return "", err
	}
	return out.Carrier, nil
}
