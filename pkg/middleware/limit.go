package middleware

import "net/http"

// MaxBytes caps request bodies at limit bytes. Reads past the limit fail with
// *http.MaxBytesError. A non-positive limit disables the cap.
func MaxBytes(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
