package api

import (
	"context"
	"net/http"
	"time"

	"github.com/JaimeStill/market-api/internal/buyers"
	"github.com/JaimeStill/market-api/internal/config"
	"github.com/JaimeStill/market-api/internal/sellers"
	"github.com/JaimeStill/market-api/internal/transactions"
	"github.com/JaimeStill/market-api/pkg/auth"
	"github.com/JaimeStill/market-api/pkg/middleware"
	"github.com/JaimeStill/market-api/pkg/routes"
)

const readinessTimeout = 2 * time.Second

func registerRoutes(r routes.System, runtime *Runtime, domain *Domain, cfg *config.Config) {
	buyersHandler := buyers.NewHandler(domain.Buyers, runtime.Pagination, runtime.OnError)
	sellersHandler := sellers.NewHandler(domain.Sellers, runtime.Pagination, runtime.OnError)
	transactionsHandler := transactions.NewHandler(domain.Transactions, runtime.OnError)

	authenticate := auth.Middleware(&cfg.API.Auth, runtime.OnError)

	r.RegisterGroup(protect(routes.Group{
		Prefix:      cfg.API.BasePath,
		Description: "Marketplace API",
		Children: []routes.Group{
			buyersHandler.Routes(),
			sellersHandler.Routes(),
			transactionsHandler.Routes(),
		},
	}, authenticate))

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			handleReadinessCheck(w, r, runtime)
		},
	})
}

// protect wraps every route handler in group and its children with mw.
func protect(group routes.Group, mw middleware.Middleware) routes.Group {
	wrapped := make([]routes.Route, len(group.Routes))
	for i, route := range group.Routes {
		route.Handler = mw(route.Handler).ServeHTTP
		wrapped[i] = route
	}
	group.Routes = wrapped

	children := make([]routes.Group, len(group.Children))
	for i, child := range group.Children {
		children[i] = protect(child, mw)
	}
	group.Children = children

	return group
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, r *http.Request, runtime *Runtime) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if !runtime.Lifecycle.Ready() || runtime.Database.Ping(ctx) != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
