package buyers

import (
	"net/http"

	"github.com/JaimeStill/market-api/pkg/auth"
	"github.com/JaimeStill/market-api/pkg/handlers"
	"github.com/JaimeStill/market-api/pkg/pagination"
	"github.com/JaimeStill/market-api/pkg/routes"
	"github.com/JaimeStill/market-api/pkg/validation"
	"github.com/google/uuid"
)

type Handler struct {
	sys        System
	pagination pagination.Config
	onError    handlers.ErrorFunc
}

func NewHandler(sys System, pagination pagination.Config, onError handlers.ErrorFunc) *Handler {
	return &Handler{
		sys:        sys,
		pagination: pagination,
		onError:    onError,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/buyers",
		Description: "Marketplace buyers",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "GET", Pattern: "/:id", Handler: h.Find},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if err := auth.Require(r.Context(), auth.ScopeRead); err != nil {
		h.onError(w, r, err)
		return
	}

	page, err := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination, Sortable)
	if err != nil {
		h.onError(w, r, err)
		return
	}

	h.list(w, r, page)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if err := auth.Require(r.Context(), auth.ScopeRead); err != nil {
		h.onError(w, r, err)
		return
	}

	var page pagination.PageRequest
	if err := handlers.DecodeJSON(r, &page); err != nil {
		h.onError(w, r, err)
		return
	}

	if err := page.Validate(h.pagination, Sortable); err != nil {
		h.onError(w, r, err)
		return
	}

	h.list(w, r, page)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, page pagination.PageRequest) {
	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		h.onError(w, r, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	if err := auth.Require(r.Context(), auth.ScopeRead); err != nil {
		h.onError(w, r, err)
		return
	}

	id, err := ParseID(routes.Param(r, "id"))
	if err != nil {
		h.onError(w, r, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.onError(w, r, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := auth.Require(r.Context(), auth.ScopeManageBuyers); err != nil {
		h.onError(w, r, err)
		return
	}

	var cmd CreateBuyerCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		h.onError(w, r, err)
		return
	}

	if err := validation.Struct(cmd); err != nil {
		h.onError(w, r, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		h.onError(w, r, err)
		return
	}

	handlers.RespondData(w, http.StatusCreated, result)
}

// ParseID parses a buyer id from a path segment. Malformed ids name no buyer
// and return ErrNotFound.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	return id, nil
}
