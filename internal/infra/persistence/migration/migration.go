// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"database/sql"
	"log/slog"

	"seguridad/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"github.com/pkg/errors"
)

// Runner drives schema migrations against a single database.
type Runner struct {
	db      *sql.DB
	migrate *migrate.Migrate
	logger  *slog.Logger
}

// NewRunner opens databaseURL and prepares the embedded migration source.
func NewRunner(databaseURL string, logger *slog.Logger) (*Runner, error) {
	if databaseURL == "" {
		return nil, errors.New("database url is required")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return &Runner{db: db, migrate: m, logger: logger}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (r *Runner) Up() error {
	if err := r.migrate.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration up failed")
	}
	r.logger.Info("Migrations applied")

	return nil
}

// Down rolls back every applied migration.
func (r *Runner) Down() error {
	if err := r.migrate.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration down failed")
	}
	r.logger.Info("Migrations rolled back")

	return nil
}

// Version reports the current schema version and whether the last run left it dirty.
// A database without migrations reports version 0.
func (r *Runner) Version() (uint, bool, error) {
	version, dirty, err := r.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read migration version")
	}

	return version, dirty, nil
}

// Force sets the schema version without running migrations, clearing the dirty flag.
func (r *Runner) Force(version int) error {
	if err := r.migrate.Force(version); err != nil {
		return errors.Wrapf(err, "failed to force version %d", version)
	}
	r.logger.Warn("Migration version forced", slog.Int("version", version))

	return nil
}

// Close releases the source and database handles.
func (r *Runner) Close() error {
	srcErr, dbErr := r.migrate.Close()
	if srcErr != nil {
		return errors.Wrap(srcErr, "failed to close migration source")
	}
	if dbErr != nil {
		return errors.Wrap(dbErr, "failed to close migration database")
	}

	return nil
}
