package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/JaimeStill/market-api/pkg/failure"
	"github.com/JaimeStill/market-api/pkg/handlers"
)

// Recover converts a panic in next into a failure.Unclassified carrying the
// stack and hands it to onError. http.ErrAbortHandler is re-raised.
func Recover(onError handlers.ErrorFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				err, ok := rvr.(error)
				if !ok {
					err = fmt.Errorf("%v", rvr)
				}

				onError(w, r, &failure.Unclassified{
					Debug: string(debug.Stack()),
					Err:   fmt.Errorf("panic: %w", err),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
