package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/backoffice/server/internal/application/analytics"
	"github.com/backoffice/server/internal/infrastructure/config"
)

// DashboardCacheFactory creates dashboard caches based on configuration
type DashboardCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// DashboardCacheFactoryOption is a functional option for configuring the factory
type DashboardCacheFactoryOption func(*DashboardCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) DashboardCacheFactoryOption {
	return func(f *DashboardCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) DashboardCacheFactoryOption {
	return func(f *DashboardCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewDashboardCacheFactory creates a new factory
func NewDashboardCacheFactory(cfg config.RedisConfig, opts ...DashboardCacheFactoryOption) *DashboardCacheFactory {
	f := &DashboardCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateCache creates a cache for the configured backend. For the redis
// backend it falls back to in-memory when Redis is unreachable and fallback
// is allowed.
func (f *DashboardCacheFactory) CreateCache(backend string) (analytics.DashboardCache, error) {
	switch backend {
	case "memory":
		f.logger.Info("using in-memory dashboard cache")
		return NewInMemoryDashboardCache(), nil

	case "redis":
		cache, err := NewRedisDashboardCache(f.redisConfig)
		if err == nil {
			f.logger.Info("using Redis dashboard cache")
			return cache, nil
		}
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("Redis required for dashboard cache but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory dashboard cache. "+
			"Snapshots will not be shared across instances.",
			zap.Error(err),
		)
		return NewInMemoryDashboardCache(), nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
