package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/catalog-app/catalog/config"
	"github.com/catalog-app/catalog/database"
	"github.com/catalog-app/catalog/logger"
	"github.com/catalog-app/catalog/seed"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	l := logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg, l)
	if err != nil {
		l.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.EnsureSchema(ctx, db); err != nil {
		l.Fatal().Err(err).Msg("Failed to create schema")
	}
	l.Info().Strs("tables", database.Tables).Msg("Schema ready")

	res, err := seed.NewSeeder(db, l).Run(ctx)
	if err != nil {
		l.Fatal().Err(err).Msg("Failed to seed database")
	}

	l.Info().
		Int("categories", len(res.Categories)).
		Int("items", len(res.Items)).
		Int("users", len(res.Users)).
		Msg("Sample data stored")
}
