package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudadopt/cloudadopt-backend/internal/app"
	"github.com/cloudadopt/cloudadopt-backend/internal/data/db"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

func newMigrateCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the business_profile table in the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			database, err := db.Open(log, cfg.DB.Driver, cfg.DB.DSN())
			if err != nil {
				return err
			}
			defer database.Close()

			if err := database.AutoMigrateAll(); err != nil {
				return fmt.Errorf("automigrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s database\n", database.Driver())
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")
	return cmd
}
