package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/fact-frenzy/pkg/http/errors"
)

// Recover turns a handler panic into the standard error body so one bad request
// never takes the process down.
func Recover(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error().
						Str("class", httperrors.ClassInternal).
						Str("path", r.URL.Path).
						Str("panic", fmt.Sprint(rec)).
						Msg("handler panic recovered")
					httperrors.RespondBadRequest(w, "Internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
