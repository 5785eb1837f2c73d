package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/catalog-app/catalog/app"
	"github.com/catalog-app/catalog/config"
	"github.com/catalog-app/catalog/database"
	"github.com/catalog-app/catalog/logger"
	"github.com/catalog-app/catalog/models"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	l := logger.Init(cfg.LogLevel, cfg.LogFormat)
	l.Info().Str("env", cfg.Env).Msg("Starting catalog server...")

	db, err := database.Open(cfg, l)
	if err != nil {
		l.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		l.Fatal().Err(err).Msg("Failed to create schema")
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort("", cfg.Port),
		Handler:      app.NewRouter(models.NewCatalogRepository(db)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		l.Info().Str("port", cfg.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	l.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("Error stopping HTTP server")
	}

	l.Info().Msg("Graceful shutdown completed")
}
