package buyers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/market-api/internal/buyers"
	"github.com/JaimeStill/market-api/internal/routes"
	"github.com/JaimeStill/market-api/pkg/auth"
	"github.com/JaimeStill/market-api/pkg/handlers"
	"github.com/JaimeStill/market-api/pkg/pagination"
	"github.com/google/uuid"
)

type fakeSystem struct {
	buyers   map[uuid.UUID]buyers.Buyer
	lastPage pagination.PageRequest
	created  []buyers.CreateBuyerCommand
}

func (f *fakeSystem) List(_ context.Context, page pagination.PageRequest) (*pagination.PageResult[buyers.Buyer], error) {
	f.lastPage = page
	data := make([]buyers.Buyer, 0, len(f.buyers))
	for _, b := range f.buyers {
		data = append(data, b)
	}
	result := pagination.NewPageResult(data, len(data), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeSystem) Find(_ context.Context, id uuid.UUID) (*buyers.Buyer, error) {
	b, ok := f.buyers[id]
	if !ok {
		return nil, buyers.ErrNotFound
	}
	return &b, nil
}

func (f *fakeSystem) FindMany(_ context.Context, ids []uuid.UUID) ([]buyers.Buyer, error) {
	out := []buyers.Buyer{}
	for _, id := range ids {
		if b, ok := f.buyers[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeSystem) Create(_ context.Context, cmd buyers.CreateBuyerCommand) (*buyers.Buyer, error) {
	for _, b := range f.buyers {
		if b.Email == cmd.Email {
			return nil, buyers.ErrDuplicate
		}
	}
	f.created = append(f.created, cmd)
	b := buyers.Buyer{ID: uuid.New(), Name: cmd.Name, Email: cmd.Email, CreatedAt: time.Now()}
	return &b, nil
}

var aliceID = uuid.MustParse("0190a7e4-0000-7000-8000-000000000001")

func newServer(t *testing.T) (http.Handler, *fakeSystem) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	onError := handlers.Errors(logger, false)

	sys := &fakeSystem{buyers: map[uuid.UUID]buyers.Buyer{
		aliceID: {ID: aliceID, Name: "Alice", Email: "alice@example.com"},
	}}

	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	h := buyers.NewHandler(sys, cfg, onError)

	r := routes.New(logger, onError)
	r.RegisterGroup(h.Routes())
	return r.Build(), sys
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHandler_Find(t *testing.T) {
	srv, _ := newServer(t)

	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantError  string
	}{
		{"found", aliceID.String(), http.StatusOK, ""},
		{"unknown", uuid.NewString(), http.StatusNotFound, "No buyer instance exists with the specified model id."},
		{"malformed", "not-a-uuid", http.StatusNotFound, "No buyer instance exists with the specified model id."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/buyers/"+tt.id, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			body := decode(t, rec)
			if tt.wantError == "" {
				data, ok := body["data"].(map[string]any)
				if !ok || data["name"] != "Alice" {
					t.Errorf("data = %v, want Alice", body["data"])
				}
				return
			}

			if body["error"] != tt.wantError {
				t.Errorf("error = %v, want %q", body["error"], tt.wantError)
			}
			if body["code"] != float64(tt.wantStatus) {
				t.Errorf("code = %v, want %d", body["code"], tt.wantStatus)
			}
		})
	}
}

func TestHandler_List(t *testing.T) {
	srv, sys := newServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/buyers?page=2&page_size=500&sort=email&desc=true&search=ali", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	if sys.lastPage.Page != 2 || sys.lastPage.PageSize != 100 {
		t.Errorf("page = %d/%d, want 2/100", sys.lastPage.Page, sys.lastPage.PageSize)
	}
	if sys.lastPage.Sort != "email" || !sys.lastPage.Descending {
		t.Errorf("sort = %q desc=%v, want email desc", sys.lastPage.Sort, sys.lastPage.Descending)
	}
	if sys.lastPage.Search == nil || *sys.lastPage.Search != "ali" {
		t.Errorf("search = %v, want ali", sys.lastPage.Search)
	}
}

func TestHandler_List_InvalidQuery(t *testing.T) {
	srv, _ := newServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/buyers?page=abc&sort=password", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	fields, ok := decode(t, rec)["error"].(map[string]any)
	if !ok {
		t.Fatalf("error is not a field map: %s", rec.Body.String())
	}
	if _, ok := fields["page"]; !ok {
		t.Errorf("fields = %v, want page", fields)
	}
}

func TestHandler_Search(t *testing.T) {
	srv, sys := newServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"page":1,"page_size":5,"sort":"name"}`, http.StatusOK},
		{"unknown sort", `{"sort":"password"}`, http.StatusUnprocessableEntity},
		{"negative page", `{"page":-1}`, http.StatusUnprocessableEntity},
		{"malformed", `{"page":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/buyers/search", strings.NewReader(tt.body))
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}

	if sys.lastPage.PageSize != 5 {
		t.Errorf("page size = %d, want 5", sys.lastPage.PageSize)
	}
}

func TestHandler_Create(t *testing.T) {
	srv, sys := newServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
	}{
		{"created", `{"name":"Bob","email":"bob@example.com"}`, http.StatusCreated, ""},
		{"missing name", `{"email":"carol@example.com"}`, http.StatusUnprocessableEntity, "name"},
		{"bad email", `{"name":"Carol","email":"carol"}`, http.StatusUnprocessableEntity, "email"},
		{"taken email", `{"name":"Alice","email":"alice@example.com"}`, http.StatusUnprocessableEntity, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/buyers", strings.NewReader(tt.body))
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantField == "" {
				return
			}

			fields, ok := decode(t, rec)["error"].(map[string]any)
			if !ok {
				t.Fatalf("error is not a field map: %s", rec.Body.String())
			}
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("fields = %v, want %s", fields, tt.wantField)
			}
		})
	}

	if len(sys.created) != 1 {
		t.Errorf("created = %d, want 1", len(sys.created))
	}
}

func TestHandler_Create_RequiresScope(t *testing.T) {
	srv, _ := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/buyers", strings.NewReader(`{"name":"Bob","email":"bob@example.com"}`))
	req = req.WithContext(auth.WithPrincipal(req.Context(), &auth.Principal{Scopes: []string{auth.ScopeRead}}))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if got := decode(t, rec)["error"]; got != auth.MessageUnauthorized {
		t.Errorf("error = %v, want %q", got, auth.MessageUnauthorized)
	}
}

func TestParseID(t *testing.T) {
	if _, err := buyers.ParseID("nope"); err != buyers.ErrNotFound {
		t.Errorf("ParseID(nope) = %v, want ErrNotFound", err)
	}
	if id, err := buyers.ParseID(aliceID.String()); err != nil || id != aliceID {
		t.Errorf("ParseID() = %v, %v", id, err)
	}
}
