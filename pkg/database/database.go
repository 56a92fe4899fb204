// Package database opens the PostgreSQL connection pool, ties it to the
// process lifecycle, and runs schema migrations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/JaimeStill/market-api/pkg/lifecycle"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotReady is returned by Ping before Start has verified the connection.
var ErrNotReady = errors.New("database not ready")

// System owns the connection pool.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Ping(ctx context.Context) error
}

type database struct {
	db     *sql.DB
	cfg    Config
	logger *slog.Logger
	ready  atomic.Bool
}

// New opens a pool for cfg through the pgx driver. No connection is made
// until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.URL("postgres"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		db:     db,
		cfg:    *cfg,
		logger: logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.db
}

// Start verifies the connection and closes the pool on shutdown.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.ready.Store(true)
	d.logger.Info("database connected", "host", d.cfg.Host, "name", d.cfg.Name)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.ready.Store(false)
		if err := d.db.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}

func (d *database) Ping(ctx context.Context) error {
	if !d.ready.Load() {
		return ErrNotReady
	}
	return d.db.PingContext(ctx)
}
