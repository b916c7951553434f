// Command seed initializes the database schema and populates the
// default identities and sample records. Safe to run repeatedly.
package main

import (
	"context"
	"os"

	"github.com/vidyarth/vidyarth-backend/internal/bootstrap"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/logger"
	"github.com/vidyarth/vidyarth-backend/internal/seed"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := seed.Run(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}

	lgr.Info().Msg("Database seeded.")
}
