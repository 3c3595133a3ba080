package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/textpesa/smsrelay/internal/gateway"
	"github.com/textpesa/smsrelay/internal/repository"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	runner      *Runner
	gateway     *gateway.Client
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	runner *Runner,
	gatewayClient *gateway.Client,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		runner:      runner,
		gateway:     gatewayClient,
	}
}

// GetHealth checks every dependency. A database failure is unhealthy;
// anything else degraded, since dispatch can limp along without the
// cache or with a tripped breaker.
func (s *healthService) GetHealth() *HealthStatus {
	health := &HealthStatus{
		Status:         statusHealthy,
		DatabaseStatus: statusHealthy,
		RedisStatus:    statusHealthy,
	}

	if err := s.repo.Ping(); err != nil {
		health.DatabaseStatus = statusUnhealthy
		health.Status = statusUnhealthy
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		health.RedisStatus = statusUnhealthy
		if health.Status == statusHealthy {
			health.Status = statusDegraded
		}
	}

	health.RunnerStatus = s.runner.Status()
	for _, running := range health.RunnerStatus {
		if !running && health.Status == statusHealthy {
			health.Status = statusDegraded
		}
	}

	if s.gateway != nil {
		state, _, _ := s.gateway.BreakerState()
		health.CircuitBreakerState = state
		if state == "open" && health.Status == statusHealthy {
			health.Status = statusDegraded
		}
	}

	return health
}
