package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/config"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/forecast"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/jobs"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := &cobra.Command{
		Use:           "pipeline",
		Short:         "Global energy services batch jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return config.Load()
		},
	}

	for _, j := range jobs.Jobs {
		rootCmd.AddCommand(jobCmd(j))
	}
	rootCmd.AddCommand(allCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("pipeline failed")
		os.Exit(1)
	}
}

func jobCmd(j jobs.Job) *cobra.Command {
	return &cobra.Command{
		Use:   j.Name,
		Short: j.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return j.Run(cmd.Context(), jobs.FromConfig())
		},
	}
}

func allCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every local job in dependency order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := jobs.FromConfig()
			if method != "" {
				e.ForecastMethod = forecast.Method(method)
			}
			return jobs.All(cmd.Context(), e)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "forecast method (anchor, net_demand, cagr, scurve)")
	return cmd
}
