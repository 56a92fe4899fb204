// Package main applies, rolls back, and reports the marketplace schema
// migrations using the database settings from config.toml.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JaimeStill/market-api/internal/config"
	"github.com/JaimeStill/market-api/internal/migrations"
	"github.com/JaimeStill/market-api/pkg/database"
	"github.com/JaimeStill/market-api/pkg/logging"
)

func main() {
	steps := flag.Int("steps", 1, "Number of migrations to roll back with down")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: migrate [-steps n] <up|down|version>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	logger := logging.New(&cfg.Logging)

	m, err := database.NewMigrator(&cfg.Database, migrations.FS, migrations.Dir, logger)
	if err != nil {
		log.Fatal("migrator init failed:", err)
	}
	defer m.Close()

	if err := run(m, flag.Arg(0), *steps); err != nil {
		m.Close()
		log.Fatal(err)
	}
}

func run(m *database.Migrator, command string, steps int) error {
	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down(steps)
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
