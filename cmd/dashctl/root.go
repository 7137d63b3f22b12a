package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/analytics-hub/infrastructure/repository"
	"github.com/vfg2006/analytics-hub/internal/dashboard"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
	"github.com/vfg2006/analytics-hub/pkg/log"
)

type rootOptions struct {
	seedFile string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Inspect the analytics dashboard seed data offline",
		Long: `dashctl runs the campaign query engine, the aggregate summaries
and the CSV export over the dashboard seed, without starting the server.

Examples:
  dashctl query --search google --status active
  dashctl summary --json
  dashctl export -o campaign_data.csv`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logrus.WarnLevel
			if opts.verbose {
				level = logrus.DebugLevel
			}
			log.Configure(level.String())
			logrus.SetOutput(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.seedFile, "seed-file", os.Getenv("SEED_FILE"), "YAML file overriding the default seed collections")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newExportCmd(opts),
		newQueryCmd(opts),
		newSummaryCmd(opts),
	)

	return cmd
}

// loadService monta o serviço sobre os dados iniciais, sem ticker
func loadService(opts *rootOptions) (dashboarding.Dashboarder, error) {
	// Sem ruído: o mapa de calor fica determinístico entre execuções
	seed, err := repository.NewSeedRepository(opts.seedFile, time.Now, nil).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	store := dashboard.NewStore(seed, dashboard.Options{})
	return dashboarding.NewService(store, nil, 0), nil
}
