package database_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/JaimeStill/market-api/pkg/database"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &database.Config{Name: "market", User: "market"}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Host", cfg.Host, "localhost"},
		{"Port", cfg.Port, 5432},
		{"SSLMode", cfg.SSLMode, "disable"},
		{"MaxOpenConns", cfg.MaxOpenConns, 25},
		{"MaxIdleConns", cfg.MaxIdleConns, 5},
		{"ConnMaxLifetime", cfg.ConnMaxLifetime, "15m"},
		{"ConnTimeout", cfg.ConnTimeout, "5s"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  database.Config
	}{
		{"missing name", database.Config{User: "u"}},
		{"missing user", database.Config{Name: "n"}},
		{"bad lifetime", database.Config{Name: "n", User: "u", ConnMaxLifetime: "forever"}},
		{"bad port", database.Config{Name: "n", User: "u", Port: 70000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() = nil, want error")
			}
		})
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "6543")
	t.Setenv("TEST_DB_AUTO_MIGRATE", "true")

	cfg := &database.Config{Name: "market", User: "market"}
	env := &database.Env{
		Host:        "TEST_DB_HOST",
		Port:        "TEST_DB_PORT",
		AutoMigrate: "TEST_DB_AUTO_MIGRATE",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "db.internal" || cfg.Port != 6543 {
		t.Errorf("Host:Port = %s:%d, want db.internal:6543", cfg.Host, cfg.Port)
	}

	if !cfg.AutoMigrate {
		t.Error("AutoMigrate = false, want true")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &database.Config{Host: "localhost", Name: "market", User: "market"}
	cfg.Merge(&database.Config{Host: "prod-db", Password: "secret"})

	if cfg.Host != "prod-db" || cfg.Password != "secret" || cfg.Name != "market" {
		t.Errorf("Merge() = %+v", cfg)
	}
}

func TestConfig_URL(t *testing.T) {
	cfg := &database.Config{Name: "market", User: "app", Password: "p@ss word"}
	cfg.Finalize(nil)

	u, err := url.Parse(cfg.URL("pgx5"))
	if err != nil {
		t.Fatalf("url.Parse() error = %v", err)
	}

	if u.Scheme != "pgx5" {
		t.Errorf("Scheme = %q, want pgx5", u.Scheme)
	}

	if u.Host != "localhost:5432" || u.Path != "/market" {
		t.Errorf("Host/Path = %s%s, want localhost:5432/market", u.Host, u.Path)
	}

	if pw, _ := u.User.Password(); pw != "p@ss word" {
		t.Errorf("password = %q, want %q", pw, "p@ss word")
	}

	if u.Query().Get("sslmode") != "disable" || u.Query().Get("connect_timeout") != "5" {
		t.Errorf("query = %s", u.RawQuery)
	}
}

func TestSystem_PingBeforeStart(t *testing.T) {
	cfg := &database.Config{Name: "market", User: "market"}
	cfg.Finalize(nil)

	sys, err := database.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer sys.Connection().Close()

	if err := sys.Ping(context.Background()); !errors.Is(err, database.ErrNotReady) {
		t.Errorf("Ping() = %v, want ErrNotReady", err)
	}

	if database.ErrNotReady.Error() != "database not ready" {
		t.Errorf("ErrNotReady = %q", database.ErrNotReady.Error())
	}
}
