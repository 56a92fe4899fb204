// Package api assembles the marketplace HTTP surface: domain systems, route
// groups, and the middleware chain every request passes through.
package api

import (
	"net/http"

	"github.com/JaimeStill/market-api/internal/config"
	"github.com/JaimeStill/market-api/internal/infrastructure"
	"github.com/JaimeStill/market-api/internal/routes"
	"github.com/JaimeStill/market-api/pkg/middleware"
)

// NewHandler builds the API handler from cfg and infra. Unknown routes and
// methods are answered with classified JSON errors.
func NewHandler(cfg *config.Config, infra *infrastructure.Infrastructure) http.Handler {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	r := routes.New(runtime.Logger, runtime.OnError)
	registerRoutes(r, runtime, domain, cfg)

	mw := middleware.New()
	mw.Use(middleware.CorrelationID(runtime.RequestID))
	mw.Use(middleware.Logger(runtime.Logger))
	mw.Use(middleware.Recover(runtime.OnError))
	mw.Use(middleware.CORS(&cfg.API.CORS))
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.MaxBytes(cfg.API.MaxBodyBytes()))

	return mw.Apply(r.Build())
}
