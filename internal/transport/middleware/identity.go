package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/fastslide-backend/pkg/ctxutil"
)

// Identity binds every request to userID. The service runs as a single
// provisioned account; there is no per-request authentication.
func Identity(userID uuid.UUID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}
