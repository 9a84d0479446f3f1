package main

import (
	"context"

	"charter/config"
	"charter/di"
	"charter/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	// First load happens before serving; a failure is not fatal, the API
	// answers 503 until a reload succeeds.
	if err := app.Catalog.Reload(context.Background()); err != nil {
		log.Error().Err(err).Msg("initial catalog load failed, serving without a snapshot")
	}

	app.HTTP.Serve()
}
