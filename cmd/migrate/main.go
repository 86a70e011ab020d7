package main

import (
	"log/slog"
	"os"
	"strconv"

	"seguridad/internal/infra/persistence/migration"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	databaseURL string
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error("Migration command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the seguridad database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is the normal case outside local development.
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				return errors.Wrap(err, "load .env failed")
			}
			if opts.databaseURL == "" {
				opts.databaseURL = os.Getenv("DATABASE_URL")
			}
			if opts.databaseURL == "" {
				return errors.New("a database url is required: pass --database or set DATABASE_URL")
			}

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database", "", "postgres connection url (defaults to DATABASE_URL)")

	withRunner := func(run func(r *migration.Runner, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			runner, err := migration.NewRunner(opts.databaseURL, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := runner.Close(); err != nil {
					logger.Warn("Failed to close migration runner", slog.Any("error", err))
				}
			}()

			return run(runner, args)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withRunner(func(r *migration.Runner, _ []string) error {
				return r.Up()
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			Args:  cobra.NoArgs,
			RunE: withRunner(func(r *migration.Runner, _ []string) error {
				return r.Down()
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withRunner(func(r *migration.Runner, _ []string) error {
				version, dirty, err := r.Version()
				if err != nil {
					return err
				}
				logger.Info("Current schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

				return nil
			}),
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: withRunner(func(r *migration.Runner, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return errors.Wrapf(err, "invalid version %q", args[0])
				}

				return r.Force(version)
			}),
		},
	)

	return cmd
}
