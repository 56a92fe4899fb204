// Package auth authenticates bearer tokens and checks the scopes granted to
// them. Tokens and their scopes come from configuration.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/JaimeStill/market-api/pkg/failure"
	"github.com/JaimeStill/market-api/pkg/handlers"
)

// Scopes granted to tokens.
const (
	ScopeRead          = "read-general"
	ScopeManageBuyers  = "manage-buyers"
	ScopeManageSellers = "manage-sellers"
)

// MessageUnauthorized is the 403 message for a principal missing a scope.
const MessageUnauthorized = "This action is unauthorized."

// Env maps environment variable names for auth configuration.
type Env struct {
	Enabled string
}

// Config enables bearer authentication and maps tokens to their scopes.
type Config struct {
	Enabled bool                `toml:"enabled"`
	Tokens  map[string][]string `toml:"tokens"`
}

// Finalize loads environment overrides and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	if env != nil && env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Enabled = b
			}
		}
	}

	if c.Enabled && len(c.Tokens) == 0 {
		return fmt.Errorf("auth enabled without tokens")
	}
	for token := range c.Tokens {
		if strings.TrimSpace(token) == "" {
			return fmt.Errorf("empty token")
		}
	}
	return nil
}

// Merge applies values from overlay configuration. An overlay can enable
// auth but never disables it.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Tokens != nil {
		c.Tokens = overlay.Tokens
	}
}

// Principal is the authenticated caller.
type Principal struct {
	Scopes []string
}

// Can reports whether the principal holds scope.
func (p *Principal) Can(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, or nil.
func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}

// Middleware authenticates the Authorization bearer token against cfg.
// A missing or unknown token is handed to onError as failure.Unauthenticated.
// When auth is disabled requests pass through without a principal.
func Middleware(cfg *Config, onError handlers.ErrorFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := authenticate(cfg, r.Header.Get("Authorization"))
			if !ok {
				onError(w, r, &failure.Unauthenticated{})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// Require returns failure.Unauthorized when the principal in ctx lacks scope.
// Without a principal, as when auth is disabled, every scope is granted.
func Require(ctx context.Context, scope string) error {
	p := FromContext(ctx)
	if p == nil || p.Can(scope) {
		return nil
	}
	return &failure.Unauthorized{Message: MessageUnauthorized}
}

func authenticate(cfg *Config, header string) (*Principal, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return nil, false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false
	}

	for candidate, scopes := range cfg.Tokens {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(token)) == 1 {
			return &Principal{Scopes: scopes}, true
		}
	}
	return nil, false
}
