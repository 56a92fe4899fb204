package transactions

import (
	"net/http"

	"github.com/JaimeStill/market-api/internal/buyers"
	"github.com/JaimeStill/market-api/internal/sellers"
	"github.com/JaimeStill/market-api/pkg/auth"
	"github.com/JaimeStill/market-api/pkg/handlers"
	"github.com/JaimeStill/market-api/pkg/routes"
)

type Handler struct {
	sys     System
	onError handlers.ErrorFunc
}

func NewHandler(sys System, onError handlers.ErrorFunc) *Handler {
	return &Handler{sys: sys, onError: onError}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "Relationships resolved through transactions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/buyers/:id/sellers", Handler: h.SellersOf},
			{Method: "GET", Pattern: "/sellers/:id/buyers", Handler: h.BuyersOf},
		},
	}
}

func (h *Handler) SellersOf(w http.ResponseWriter, r *http.Request) {
	if err := auth.Require(r.Context(), auth.ScopeRead); err != nil {
		h.onError(w, r, err)
		return
	}

	id, err := buyers.ParseID(routes.Param(r, "id"))
	if err != nil {
		h.onError(w, r, err)
		return
	}

	result, err := h.sys.SellersOf(r.Context(), id)
	if err != nil {
		h.onError(w, r, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

func (h *Handler) BuyersOf(w http.ResponseWriter, r *http.Request) {
	if err := auth.Require(r.Context(), auth.ScopeRead); err != nil {
		h.onError(w, r, err)
		return
	}

	id, err := sellers.ParseID(routes.Param(r, "id"))
	if err != nil {
		h.onError(w, r, err)
		return
	}

	result, err := h.sys.BuyersOf(r.Context(), id)
	if err != nil {
		h.onError(w, r, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}
