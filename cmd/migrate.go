package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	root "passgen"
	"passgen/internal/config"
	"passgen/pkg/logger"
	"passgen/pkg/storage/sqlite"
	"passgen/pkg/storage/sqlstore"
)

// migrateCommand constructs the 'migrate' subcommand that applies the history
// migrations of the configured driver to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the history database to the latest version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			var (
				strg *sqlstore.Store
				err  error
			)
			if cfg.History.Driver == config.DriverPostgres {
				strg, err = getPostgres(ctx, cfg)
			} else {
				strg, err = sqlite.New(ctx, sqlite.Options{Path: cfg.History.SQLitePath})
			}
			if err != nil {
				logger.Fatal(ctx, "could not open history storage", zap.Error(err))
			}
			defer func() {
				if err := strg.Close(); err != nil {
					logger.Warn(ctx, "could not close history storage", zap.Error(err))
				}
			}()

			if err := strg.Migrate(ctx, root.Migrations); err != nil {
				logger.Fatal(ctx, "could not migrate history storage", zap.Error(err))
			}
			logger.Info(ctx, "history storage migrated", zap.String("driver", strg.Dialect()))
		},
	}

	return cmd
}
