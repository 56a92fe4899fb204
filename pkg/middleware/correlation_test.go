package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/JaimeStill/market-api/pkg/logging"
	"github.com/JaimeStill/market-api/pkg/middleware"
)

type fixedGenerator string

func (g fixedGenerator) Generate() string { return string(g) }

func TestCorrelationID(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"generated", nil, "generated-id"},
		{"correlation header", map[string]string{middleware.HeaderCorrelationID: "abc"}, "abc"},
		{"request id fallback", map[string]string{middleware.HeaderRequestID: "req-1"}, "req-1"},
		{"correlation wins", map[string]string{middleware.HeaderCorrelationID: "abc", middleware.HeaderRequestID: "req-1"}, "abc"},
		{"line break rejected", map[string]string{middleware.HeaderCorrelationID: "a\r\nb"}, "generated-id"},
		{"truncated", map[string]string{middleware.HeaderCorrelationID: strings.Repeat("x", 200)}, strings.Repeat("x", 128)},
		{"truncated on rune boundary", map[string]string{middleware.HeaderCorrelationID: strings.Repeat("x", 127) + "éééé"}, strings.Repeat("x", 127)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := middleware.CorrelationID(fixedGenerator("generated-id"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = logging.CorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header[k] = []string{v}
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if seen != tt.want {
				t.Errorf("context id = %q, want %q", seen, tt.want)
			}

			if got := w.Header().Get(middleware.HeaderCorrelationID); got != tt.want {
				t.Errorf("response header = %q, want %q", got, tt.want)
			}

			if !utf8.ValidString(seen) {
				t.Errorf("context id %q is not valid UTF-8", seen)
			}
		})
	}
}
