package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/code1iners/ce1pers/internal/app"
	"github.com/code1iners/ce1pers/internal/cfg"
	"github.com/code1iners/ce1pers/pkg/logger"
)

func main() {
	config, err := cfg.Load()
	if err != nil {
		log.Fatal(err)
	}
	zlog := logger.NewZeroLog(config.AppEnv)

	if err := run(config, zlog); err != nil {
		zlog.Error(context.Background(), "server exited", logger.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
}

func run(config *cfg.Config, zlog logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := app.NewProvider(ctx, config, zlog)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	server := app.NewServer(provider)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		zlog.Info(context.Background(), "shutdown signal received")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	return errors.Join(
		runErr,
		server.Shutdown(shutdownCtx),
		provider.Infra.Close(shutdownCtx),
	)
}
