// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies (logging, database, request ids) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/market-api/internal/config"
	"github.com/JaimeStill/market-api/internal/migrations"
	"github.com/JaimeStill/market-api/pkg/database"
	"github.com/JaimeStill/market-api/pkg/lifecycle"
	"github.com/JaimeStill/market-api/pkg/logging"
	"github.com/JaimeStill/market-api/pkg/requestid"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	RequestID requestid.Generator

	migrate bool
	dbCfg   database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	gen, err := requestid.New(&cfg.RequestID)
	if err != nil {
		return nil, fmt.Errorf("request id init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		RequestID: gen,
		migrate:   cfg.Database.AutoMigrate,
		dbCfg:     cfg.Database,
	}, nil
}

// Start connects the database and, when auto_migrate is set, applies pending
// schema migrations.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	if !i.migrate {
		return nil
	}

	m, err := database.NewMigrator(&i.dbCfg, migrations.FS, migrations.Dir, i.Logger)
	if err != nil {
		return fmt.Errorf("migrator init failed: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
