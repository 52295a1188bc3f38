package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/code1iners/ce1pers/internal/app/bootstrap"
	"github.com/code1iners/ce1pers/internal/cfg"
	"github.com/code1iners/ce1pers/internal/service/login"
	"github.com/code1iners/ce1pers/pkg/cache"
	"github.com/code1iners/ce1pers/pkg/logger"
	"github.com/code1iners/ce1pers/pkg/oauth2"

	"github.com/prometheus/client_golang/prometheus"
)

// Infrastructure holds the stateful resources that need lifecycle management.
type Infrastructure struct {
	Cache          cache.Cache
	States         oauth2.StateStorage
	Logger         logger.Logger
	Metrics        prometheus.Registerer
	MetricsHandler http.Handler
	shutdownOTel   func(context.Context) error
}

// Close gracefully shuts down all infrastructure resources.
// Resources are closed in reverse order of initialization.
func (i *Infrastructure) Close(ctx context.Context) error {
	var errs []error

	if i.States != nil {
		i.Logger.Info(ctx, "Closing state storage")
		if err := i.States.Close(); err != nil {
			errs = append(errs, fmt.Errorf("state storage shutdown: %w", err))
		}
	}

	if i.Cache != nil {
		i.Logger.Info(ctx, "Closing cache connections")
		if err := i.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cache shutdown: %w", err))
		}
	}

	if i.shutdownOTel != nil {
		i.Logger.Info(ctx, "Shutting down observability")
		if err := i.shutdownOTel(ctx); err != nil {
			errs = append(errs, fmt.Errorf("observability shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("infrastructure shutdown errors: %w", errors.Join(errs...))
	}

	return nil
}

// Services holds the domain services.
type Services struct {
	Login *login.Service
}

// Provider is the composition root that wires Infrastructure and Services together.
type Provider struct {
	Infra    *Infrastructure
	Services *Services
	Config   *cfg.Config
}

// NewProvider creates and initializes all application dependencies.
func NewProvider(ctx context.Context, config *cfg.Config, appLogger logger.Logger) (*Provider, error) {
	appLogger.Info(ctx, "Initializing application provider...")

	shutdownOTel, err := bootstrap.InitOtel(ctx, &config.Observability)
	if err != nil {
		return nil, fmt.Errorf("observability setup: %w", err)
	}

	registry, metricsHandler := bootstrap.InitMetrics()
	infra := &Infrastructure{
		Logger:         appLogger,
		Metrics:        registry,
		MetricsHandler: metricsHandler,
		shutdownOTel:   shutdownOTel,
	}

	infra.Cache, err = bootstrap.InitCache(ctx, config.Redis, appLogger)
	if err != nil {
		_ = infra.Close(ctx)
		return nil, fmt.Errorf("cache initialization: %w", err)
	}
	infra.States = bootstrap.InitStateStorage(infra.Cache)

	p := NewProviderWith(config, infra)
	appLogger.Info(ctx, "Application provider initialized successfully",
		logger.Field{Key: "providers", Value: p.Services.Login.Providers()},
		logger.Field{Key: "redis", Value: infra.Cache != nil},
	)
	return p, nil
}

// NewProviderWith builds the services on top of already initialized infrastructure.
func NewProviderWith(config *cfg.Config, infra *Infrastructure) *Provider {
	loginService := login.NewService(
		oauth2.DefaultRegistry(),
		config.Providers,
		infra.States,
		login.NewMetrics(infra.Metrics),
		infra.Logger,
		config.State.Timeout,
	)

	return &Provider{
		Infra:    infra,
		Services: &Services{Login: loginService},
		Config:   config,
	}
}
