package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/JaimeStill/market-api/pkg/logging"
)

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level    logging.Level
		expected slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("unknown"), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.expected {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("Level.Validate() = nil for invalid level, want error")
	}

	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Format.Validate() = nil for invalid format, want error")
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_SOURCE", "true")

	cfg := &logging.Config{}
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT", Source: "TEST_LOG_SOURCE"}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}

	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}

	if !cfg.Source {
		t.Error("Source = false, want true")
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	cfg := &logging.Config{Format: "yaml"}

	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() = nil, want error")
	}
}

func TestNewHandler_CorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&buf, &logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatJSON,
	})).With("system", "buyers")

	ctx := logging.WithCorrelationID(context.Background(), "cid-123")
	logger.InfoContext(ctx, "buyer found")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}

	if record[logging.KeyCorrelationID] != "cid-123" {
		t.Errorf("%s = %v, want cid-123", logging.KeyCorrelationID, record[logging.KeyCorrelationID])
	}

	if record["system"] != "buyers" {
		t.Errorf("system = %v, want buyers", record["system"])
	}
}

func TestNewHandler_NoCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&buf, &logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatJSON,
	}))

	logger.InfoContext(context.Background(), "startup")

	var record map[string]any
	json.Unmarshal(buf.Bytes(), &record)

	if _, ok := record[logging.KeyCorrelationID]; ok {
		t.Errorf("record has %s without one in context", logging.KeyCorrelationID)
	}
}

func TestCorrelationID_Empty(t *testing.T) {
	if got := logging.CorrelationID(context.Background()); got != "" {
		t.Errorf("CorrelationID() = %q, want empty", got)
	}
}
