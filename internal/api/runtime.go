package api

import (
	"github.com/JaimeStill/market-api/internal/config"
	"github.com/JaimeStill/market-api/internal/infrastructure"
	"github.com/JaimeStill/market-api/pkg/handlers"
	"github.com/JaimeStill/market-api/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	OnError    handlers.ErrorFunc
}

// NewRuntime creates an API runtime with a module-scoped logger. The debug
// flag is read once here and bound into OnError.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			RequestID: infra.RequestID,
		},
		Pagination: cfg.API.Pagination,
		OnError:    handlers.Errors(logger, cfg.Debug),
	}
}
