package middleware

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/JaimeStill/market-api/pkg/logging"
	"github.com/JaimeStill/market-api/pkg/requestid"
)

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some proxies.
	HeaderRequestID = "X-Request-ID"
)

const maxCorrelationIDLen = 128

// CorrelationID reads the request's correlation ID from X-Correlation-ID or
// X-Request-ID, generating one with gen when neither carries a usable value.
// The ID is echoed in the response header and stored in the request context.
func CorrelationID(gen requestid.Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := normalizeCID(r.Header.Get(HeaderCorrelationID))
			if cid == "" {
				cid = normalizeCID(r.Header.Get(HeaderRequestID))
			}
			if cid == "" && gen != nil {
				cid = gen.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(logging.WithCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// normalizeCID rejects values containing line breaks and caps the length in
// bytes without splitting a rune.
func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return ""
	}
	if len(v) > maxCorrelationIDLen {
		n := maxCorrelationIDLen
		for n > 0 && !utf8.RuneStart(v[n]) {
			n--
		}
		v = v[:n]
	}
	return v
}
