package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sufiyanali07/erp-backend/internal/bootstrap"
	"github.com/Sufiyanali07/erp-backend/internal/seed"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Provision the admin account and demo data",
	Long: `Creates the configured administrator account and a set of demo
students with fee records. Safe to run repeatedly; existing accounts
are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
		if err != nil {
			return err
		}

		provider := bootstrap.SetupDatabase(cfg, lgr)
		deps, err := bootstrap.BuildDependencies(cfg, provider, lgr)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := seed.EnsureAdmin(ctx, deps.UserRepo, cfg); err != nil {
			return fmt.Errorf("admin seed failed: %w", err)
		}
		if err := seed.CreateDemoData(ctx, deps.UserRepo, deps.FeeRepo); err != nil {
			return fmt.Errorf("demo data seed failed: %w", err)
		}

		if err := provider.Close(ctx); err != nil {
			lgr.Error().Err(err).Msg("Database disconnect error")
		}

		lgr.Info().Msg("Seeding complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
