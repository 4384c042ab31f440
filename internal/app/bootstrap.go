package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/falconsystemsai/UOA/config"
	"github.com/falconsystemsai/UOA/internal/domain/repository"
	"github.com/falconsystemsai/UOA/internal/domain/service"
	redisrepo "github.com/falconsystemsai/UOA/internal/infrastructure/cache"
	"github.com/falconsystemsai/UOA/internal/infrastructure/queue"
	"github.com/falconsystemsai/UOA/internal/infrastructure/upstream"
)

// AppContext holds all app dependencies
type AppContext struct {
	Config       *config.Config
	Orchestrator *Orchestrator
	Publisher    repository.ActivityPublisher

	log       *slog.Logger
	redisRepo *redisrepo.RedisRepository
}

// NewApp initializes the app context with all dependencies
func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*AppContext, error) {
	app := &AppContext{Config: cfg, log: log}

	// Initialize cache implementation (Redis), falling back to the
	// in-memory store when Redis is unreachable so the proxy still runs.
	var responseCache repository.ResponseCache
	redisRepo := redisrepo.NewRedisRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisRepo.Ping(pingCtx); err != nil {
		log.Warn("Redis unavailable, using in-memory response cache", "error", err)
		responseCache = redisrepo.NewMemoryRepository()
		redisRepo.Close()
	} else {
		log.Info("Redis response cache initialized")
		responseCache = redisRepo
		app.redisRepo = redisRepo
	}

	// Upstream provider client
	source := upstream.NewClient(
		cfg.UpstreamBaseURL,
		cfg.APIToken,
		cfg.TokenInHeader,
		time.Duration(cfg.UpstreamTimeout)*time.Second,
	)
	log.Info("Upstream client initialized", "base_url", cfg.UpstreamBaseURL)

	// Optional Kafka egress for downstream analytics
	publisher := queue.NewKafkaPublisher(queue.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	if publisher != nil {
		app.Publisher = publisher
		log.Info("Kafka activity publisher initialized", "topic", cfg.KafkaTopic)
	} else {
		log.Info("Kafka not configured, activity publishing disabled")
	}

	normalizer := service.NewNormalizer(service.DefaultAggressionPolicy())

	app.Orchestrator = NewOrchestrator(
		log,
		responseCache,
		source,
		app.Publisher,
		normalizer,
		time.Duration(cfg.CacheTTL)*time.Second,
		cfg.APIToken != "",
	)
	log.Info("Orchestrator initialized", "cache_ttl_seconds", cfg.CacheTTL)

	return app, nil
}

// Cleanup performs graceful shutdown of all components
func (a *AppContext) Cleanup(ctx context.Context) {
	if a.Publisher != nil {
		a.log.Info("Closing Kafka publisher...")
		if err := a.Publisher.Close(); err != nil {
			a.log.Warn("Error closing Kafka publisher", "error", err)
		}
	}
	if a.redisRepo != nil {
		a.log.Info("Closing Redis client...")
		if err := a.redisRepo.Close(); err != nil {
			a.log.Warn("Error closing Redis client", "error", err)
		}
	}
	a.log.Info("All resources cleaned up")
}
