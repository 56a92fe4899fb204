package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/market-api/pkg/auth"
	"github.com/JaimeStill/market-api/pkg/failure"
	"github.com/JaimeStill/market-api/pkg/handlers"
)

func testConfig() *auth.Config {
	return &auth.Config{
		Enabled: true,
		Tokens: map[string][]string{
			"reader-token": {auth.ScopeRead},
			"admin-token":  {auth.ScopeRead, auth.ScopeManageSellers},
		},
	}
}

func onError() handlers.ErrorFunc {
	return handlers.Errors(slog.New(slog.NewTextHandler(io.Discard, nil)), false)
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic reader-token", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer reader-token", http.StatusOK},
		{"scheme case-insensitive", "bearer admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := auth.Middleware(testConfig(), onError())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if auth.FromContext(r.Context()) == nil {
					t.Error("principal missing from context")
				}
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/buyers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusUnauthorized {
				want := `{"error":"Unauthenticated.","code":401}`
				if got := strings.TrimSpace(w.Body.String()); got != want {
					t.Errorf("body = %s, want %s", got, want)
				}
			}
		})
	}
}

func TestMiddleware_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false

	handler := auth.Middleware(cfg, onError())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRequire(t *testing.T) {
	reader := auth.WithPrincipal(context.Background(), &auth.Principal{Scopes: []string{auth.ScopeRead}})

	if err := auth.Require(reader, auth.ScopeRead); err != nil {
		t.Errorf("Require(read) = %v, want nil", err)
	}

	err := auth.Require(reader, auth.ScopeManageSellers)

	var ua *failure.Unauthorized
	if !errors.As(err, &ua) {
		t.Fatalf("Require(manage) = %v, want *failure.Unauthorized", err)
	}

	if ua.Message != auth.MessageUnauthorized {
		t.Errorf("Message = %q, want %q", ua.Message, auth.MessageUnauthorized)
	}

	if err := auth.Require(context.Background(), auth.ScopeManageSellers); err != nil {
		t.Errorf("Require() without principal = %v, want nil", err)
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_AUTH_ENABLED", "true")

	cfg := &auth.Config{}
	if err := cfg.Finalize(&auth.Env{Enabled: "TEST_AUTH_ENABLED"}); err == nil {
		t.Error("Finalize() = nil for enabled auth without tokens, want error")
	}

	if err := testConfig().Finalize(nil); err != nil {
		t.Errorf("Finalize() = %v, want nil", err)
	}
}

func TestConfig_Merge(t *testing.T) {
	tests := []struct {
		name        string
		base        *auth.Config
		overlay     *auth.Config
		wantEnabled bool
		wantTokens  int
	}{
		{"empty overlay keeps auth enabled", testConfig(), &auth.Config{}, true, 2},
		{"overlay enables auth", &auth.Config{}, testConfig(), true, 2},
		{
			"overlay replaces tokens",
			testConfig(),
			&auth.Config{Tokens: map[string][]string{"ops-token": {auth.ScopeRead}}},
			true,
			1,
		},
		{"both disabled", &auth.Config{}, &auth.Config{}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.base.Merge(tt.overlay)

			if tt.base.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", tt.base.Enabled, tt.wantEnabled)
			}
			if len(tt.base.Tokens) != tt.wantTokens {
				t.Errorf("len(Tokens) = %d, want %d", len(tt.base.Tokens), tt.wantTokens)
			}
		})
	}
}
