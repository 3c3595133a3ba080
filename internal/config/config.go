// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Gateway        GatewayConfig        `mapstructure:"gateway"`
	Dispatch       DispatchConfig       `mapstructure:"dispatch"`
	Retry          RetryConfig          `mapstructure:"retry"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Preflight      PreflightConfig      `mapstructure:"preflight"`
	Scheduler      SchedulerConfig      `mapstructure:"scheduler"`
	Middleware     MiddlewareConfig     `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GatewayConfig describes the device gateway that actually hands
// messages to the carrier radio.
type GatewayConfig struct {
	URL            string               `mapstructure:"url"`
	AuthKey        string               `mapstructure:"auth_key"`
	TimeoutMs      int                  `mapstructure:"timeout_ms"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// DispatchConfig holds bulk dispatcher knobs.
type DispatchConfig struct {
	ChunkSize         int `mapstructure:"chunk_size"`
	ChunkDelayMs      int `mapstructure:"chunk_delay_ms"`
	FastPathThreshold int `mapstructure:"fast_path_threshold"`
}

// RetryConfig holds retry queue processor knobs.
type RetryConfig struct {
	MaxRetries          int `mapstructure:"max_retries"`
	BaseBackoffMs       int `mapstructure:"base_backoff_ms"`
	MaxBackoffMs        int `mapstructure:"max_backoff_ms"`
	InterMessageDelayMs int `mapstructure:"inter_message_delay_ms"`
	IntervalMinutes     int `mapstructure:"interval_minutes"`
}

// ReconciliationConfig holds the stale sweep knobs. CarrierThresholds
// maps a detected carrier name to its staleness window in hours.
type ReconciliationConfig struct {
	IntervalMinutes       int            `mapstructure:"interval_minutes"`
	DefaultThresholdHours int            `mapstructure:"default_threshold_hours"`
	CarrierThresholds     map[string]int `mapstructure:"carrier_thresholds"`
}

type PreflightConfig struct {
	RoleWarnBatchSize     int `mapstructure:"role_warn_batch_size"`
	LargeBatchWarnSize    int `mapstructure:"large_batch_warn_size"`
	CellularWarnBatchSize int `mapstructure:"cellular_warn_batch_size"`
	BatteryWarnPercent    int `mapstructure:"battery_warn_percent"`
	BatteryBlockPercent   int `mapstructure:"battery_block_percent"`
}

type SchedulerConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
	BatchSize       int `mapstructure:"batch_size"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("gateway.timeout_ms", 15000)
	viper.SetDefault("gateway.circuit_breaker.max_requests", 3)
	viper.SetDefault("gateway.circuit_breaker.interval", 60)
	viper.SetDefault("gateway.circuit_breaker.timeout", 60)
	viper.SetDefault("gateway.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("gateway.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("dispatch.chunk_size", 50)
	viper.SetDefault("dispatch.chunk_delay_ms", 1000)
	viper.SetDefault("dispatch.fast_path_threshold", 20)
	viper.SetDefault("retry.max_retries", 3)
	viper.SetDefault("retry.base_backoff_ms", 2000)
	viper.SetDefault("retry.max_backoff_ms", 30000)
	viper.SetDefault("retry.inter_message_delay_ms", 1000)
	viper.SetDefault("retry.interval_minutes", 5)
	viper.SetDefault("reconciliation.interval_minutes", 60)
	viper.SetDefault("reconciliation.default_threshold_hours", 3)
	viper.SetDefault("preflight.role_warn_batch_size", 20)
	viper.SetDefault("preflight.large_batch_warn_size", 500)
	viper.SetDefault("preflight.cellular_warn_batch_size", 100)
	viper.SetDefault("preflight.battery_warn_percent", 20)
	viper.SetDefault("preflight.battery_block_percent", 5)
	viper.SetDefault("scheduler.interval_minutes", 1)
	viper.SetDefault("scheduler.batch_size", 100)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ChunkDelay returns the inter-chunk throttling delay.
func (d *DispatchConfig) ChunkDelay() time.Duration {
	return time.Duration(d.ChunkDelayMs) * time.Millisecond
}

// BaseBackoff returns the first retry backoff delay.
func (r *RetryConfig) BaseBackoff() time.Duration {
	return time.Duration(r.BaseBackoffMs) * time.Millisecond
}

// MaxBackoff returns the backoff cap.
func (r *RetryConfig) MaxBackoff() time.Duration {
	return time.Duration(r.MaxBackoffMs) * time.Millisecond
}

// InterMessageDelay returns the fixed delay between consecutive queue
// entries, independent of backoff.
func (r *RetryConfig) InterMessageDelay() time.Duration {
	return time.Duration(r.InterMessageDelayMs) * time.Millisecond
}
