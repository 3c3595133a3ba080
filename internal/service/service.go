package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/carrier"
	"github.com/textpesa/smsrelay/internal/clock"
	"github.com/textpesa/smsrelay/internal/compliance"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/gateway"
	"github.com/textpesa/smsrelay/internal/preflight"
	"github.com/textpesa/smsrelay/internal/repository"
)

// Service is the explicit service object constructed once per process;
// all components share injected dependencies instead of globals.
type Service struct {
	Message        MessageService
	Bulk           BulkService
	Retry          RetryService
	Reconciliation ReconciliationService
	Scheduler      SchedulerService
	Health         HealthService
	Runner         *Runner
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	clk := clock.New()

	gatewayClient := gateway.NewClient(&cfg.Gateway, logger)
	deviceClient := gateway.NewDeviceClient(&cfg.Gateway, logger)
	filter := compliance.NewRedisFilter(redisClient, logger)
	checker := preflight.NewChecker(&cfg.Preflight, deviceClient, deviceClient, deviceClient, logger)

	thresholdsByCarrier := make(map[string]time.Duration, len(cfg.Reconciliation.CarrierThresholds))
	for name, hours := range cfg.Reconciliation.CarrierThresholds {
		thresholdsByCarrier[name] = time.Duration(hours) * time.Hour
	}
	thresholds := carrier.NewThresholds(thresholdsByCarrier,
		time.Duration(cfg.Reconciliation.DefaultThresholdHours)*time.Hour)

	messageService := NewMessageService(cfg, repo, gatewayClient, filter, redisClient, logger)
	bulkService := NewBulkDispatcher(cfg, repo, gatewayClient, filter, checker, clk, logger)
	retryService := NewRetryService(&cfg.Retry, repo, gatewayClient, clk, logger)
	reconciliationService := NewReconciliationService(repo, deviceClient, thresholds, clk, logger)
	schedulerService := NewSchedulerService(&cfg.Scheduler, repo, messageService, clk, logger)

	runner := NewRunner(cfg, retryService, reconciliationService, schedulerService, logger)
	healthService := NewHealthService(repo, redisClient, runner, gatewayClient)

	return &Service{
		Message:        messageService,
		Bulk:           bulkService,
		Retry:          retryService,
		Reconciliation: reconciliationService,
		Scheduler:      schedulerService,
		Health:         healthService,
		Runner:         runner,
	}
}
