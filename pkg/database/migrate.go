package database

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator applies the SQL migrations embedded in a filesystem.
// It holds its own connection, separate from the System pool.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewMigrator reads migrations from dir within fsys and connects to the
// database described by cfg.
func NewMigrator(cfg *Config, fsys fs.FS, dir string, logger *slog.Logger) (*Migrator, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL("pgx5"))
	if err != nil {
		return nil, fmt.Errorf("migrate init: %w", err)
	}

	return &Migrator{m: m, logger: logger.With("system", "migrate")}, nil
}

// Up applies every pending migration. Being current is not an error.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	m.logVersion("migrations applied")
	return nil
}

// Down rolls back steps migrations.
func (m *Migrator) Down(steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive")
	}
	if err := m.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	m.logVersion("migrations rolled back")
	return nil
}

// Version returns the applied version and whether it is dirty. A database
// with no migrations applied reports version 0.
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close releases the migration source and database connection.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (m *Migrator) logVersion(msg string) {
	v, dirty, err := m.Version()
	if err != nil {
		m.logger.Warn("migration version unavailable", "error", err)
		return
	}
	m.logger.Info(msg, "version", v, "dirty", dirty)
}
