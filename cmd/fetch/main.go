package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/config"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/jobs"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := jobs.Fetch(ctx, jobs.FromConfig()); err != nil {
		log.Fatal().Err(err).Msg("fetch failed")
	}
}
