package pagination

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/JaimeStill/market-api/pkg/validation"
)

// Sortable maps the sort keys a client may send onto projected view fields.
type Sortable map[string]string

// Field returns the view field for key, or "" when key is not sortable.
func (s Sortable) Field(key string) string {
	return s[key]
}

func (s Sortable) rule() string {
	return "omitempty,oneof=" + strings.Join(slices.Sorted(maps.Keys(s)), " ")
}

// PageRequest represents a client request for a page of data with optional search and sorting.
type PageRequest struct {
	Page       int     `json:"page" validate:"gte=0,lte=1000000"`
	PageSize   int     `json:"page_size" validate:"gte=0,lte=1000000"`
	Search     *string `json:"search,omitempty" validate:"omitempty,max=255"`
	Sort       string  `json:"sort,omitempty"`
	Descending bool    `json:"desc,omitempty"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
	if r.Search != nil && *r.Search == "" {
		r.Search = nil
	}
}

// Offset calculates the number of records to skip based on page and page size.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Validate checks the request against its rules and the sortable keys, then
// normalizes it. Failures are returned as *failure.ValidationFailed.
func (r *PageRequest) Validate(cfg Config, sortable Sortable) error {
	errs := validation.New()
	errs.Struct(r)
	errs.Var("sort", r.Sort, sortable.rule())

	if err := errs.Err(); err != nil {
		return err
	}

	r.Normalize(cfg)
	return nil
}

// PageRequestFromQuery parses pagination parameters from URL query values.
// Supported parameters: page, page_size, search, sort, desc.
// The result is validated and normalized according to the provided config.
func PageRequestFromQuery(values url.Values, cfg Config, sortable Sortable) (PageRequest, error) {
	errs := validation.New()
	errs.Var("page", values.Get("page"), "omitempty,number")
	errs.Var("page_size", values.Get("page_size"), "omitempty,number")
	errs.Var("desc", values.Get("desc"), "omitempty,boolean")

	if err := errs.Err(); err != nil {
		return PageRequest{}, err
	}

	// Out-of-range values saturate and are rejected by the lte rules below.
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))
	desc, _ := strconv.ParseBool(values.Get("desc"))

	var search *string
	if s := values.Get("search"); s != "" {
		search = &s
	}

	req := PageRequest{
		Page:       page,
		PageSize:   pageSize,
		Search:     search,
		Sort:       values.Get("sort"),
		Descending: desc,
	}

	if err := req.Validate(cfg, sortable); err != nil {
		return PageRequest{}, err
	}
	return req, nil
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResult creates a PageResult with calculated total pages.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := 1
	if pageSize > 0 {
		totalPages = total / pageSize
		if total%pageSize != 0 {
			totalPages++
		}
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
