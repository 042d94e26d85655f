// Package main provides the CLI entrypoint for the password generator.
// It wires subcommands (generate, strength, history, serve, migrate, jwt),
// loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	root "passgen"
	"passgen/internal/config"
	"passgen/internal/generator"
	"passgen/pkg/logger"
	"passgen/pkg/metrics"
	"passgen/pkg/serrors"
	"passgen/pkg/storage/postgres"
	"passgen/pkg/storage/sqlite"
	"passgen/pkg/storage/sqlstore"
)

// getPostgres creates a PostgreSQL backed store using configuration values.
func getPostgres(ctx context.Context, cfg *config.Config) (*sqlstore.Store, error) {
	return postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
}

// getStore opens the configured history backend and returns it along with a
// cleanup function. The local SQLite file is migrated on open; PostgreSQL is
// migrated by the migrate command.
func getStore(ctx context.Context, cfg *config.Config) (*sqlstore.Store, func(), error) {
	var (
		strg *sqlstore.Store
		err  error
	)
	switch cfg.History.Driver {
	case config.DriverPostgres:
		strg, err = getPostgres(ctx, cfg)
	default:
		strg, err = sqlite.New(ctx, sqlite.Options{Path: cfg.History.SQLitePath})
		if err == nil {
			if err = strg.Migrate(ctx, root.Migrations); err != nil {
				_ = strg.Close()
			}
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s history storage: %w", cfg.History.Driver, err)
	}

	return strg, func() {
		logger.Debug(ctx, "closing history storage...")
		if err := strg.Close(); err != nil {
			logger.Warn(ctx, "could not close history storage", zap.Error(err))
		}
	}, nil
}

// newService builds the generator service. History is left out when it is
// disabled in the configuration.
func newService(
	ctx context.Context,
	cfg *config.Config,
	instruments *metrics.Instruments,
) (generator.Service, func(), error) {
	if !cfg.History.Enabled {
		return generator.New(nil, instruments, generator.NewOptions(cfg)), func() {}, nil
	}

	strg, closeStrg, err := getStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return generator.New(strg, instruments, generator.NewOptions(cfg)), closeStrg, nil
}

// configPath extracts the -c/--config flag ahead of cobra so subcommands can
// use configured values as flag defaults.
func configPath(args []string) string {
	fs := pflag.NewFlagSet("passgen", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	path := fs.StringP("config", "c", "config.yml", "")
	_ = fs.Parse(args)

	return *path
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Generates random passwords and scores their strength",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// parsed ahead of cobra by configPath, declared here so cobra accepts it
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		generateCommand(cfg),
		strengthCommand(cfg),
		historyCommand(cfg),
		serveCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
	)

	return rootCmd
}

// userMessage returns the message of request errors without their causes;
// other errors are printed in full.
func userMessage(err error) string {
	switch serrors.KindOf(err, serrors.ErrInternal) {
	case serrors.ErrBadRequest, serrors.ErrUnprocessable, serrors.ErrUnavailable:
		if msg, ok := serrors.MessageOf(err); ok {
			return msg
		}
	}

	return err.Error()
}

// main loads configuration and logging, then executes the CLI.
func main() {
	cfg, err := config.Load(configPath(os.Args[1:]))
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err = newRootCommand(cfg).ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err)) //nolint: forbidigo
		os.Exit(1)                   //nolint: gocritic
	}
}
