package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"amelias/api/internal/config"
	"amelias/api/internal/handlers"
	"amelias/api/internal/log"
	"amelias/api/internal/server"
	"amelias/api/internal/store"
	"amelias/api/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	st, err := store.Open(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}

	uploads, err := upload.NewProcessor(cfg.Storage, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init upload processor")
	}

	handlerSet := handlers.NewHandlerSet(logger, cfg, st, uploads)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server exited cleanly")
}
