package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seatflow/seatgate/internal/pkg/config"
	"github.com/seatflow/seatgate/internal/upstream"
	"github.com/seatflow/seatgate/internal/web"
	"github.com/seatflow/seatgate/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, err := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout(),
	}, logger.With("upstream"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build upstream client")
	}

	e, err := web.NewRouter(web.Options{
		Upstream:      client,
		CredentialTTL: cfg.Session.TTL(),
		Log:           logger.With("web"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("gateway stopped")
}
