package cfg

import (
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	HTTPServer      HTTPServerConfig
	Redis           *RedisConfig
	Observability   OtelConfig
	State           StateConfig
	Providers       ProvidersConfig
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load() // ignore if .env missing (local only)

	l := NewLoader()

	cfg := &Config{
		AppEnv:          l.requireEnv("APP_ENV"),
		HTTPServer:      l.loadHTTPServer(),
		Redis:           l.loadRedis(),
		Observability:   l.loadOtel(),
		State:           l.loadState(),
		Providers:       l.loadProviders(),
		ShutdownTimeout: l.getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if l.HasErrors() {
		return nil, l.Error()
	}

	return cfg, nil
}
