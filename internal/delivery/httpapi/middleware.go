package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/metrics"

	"github.com/go-chi/chi/v5"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// RequireAuth rejects requests without a valid Bearer access token and puts
// the token's user id on the request context.
func RequireAuth(tokenManager domain.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, fmt.Errorf("%w: missing authorization header", domain.ErrUnauthorized))
				return
			}
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				writeError(w, fmt.Errorf("%w: malformed authorization header", domain.ErrUnauthorized))
				return
			}

			userID, err := tokenManager.VerifyAccess(tokenString)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id set by RequireAuth.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDContextKey).(string)
	return userID
}

// CountRequests records one observation per request with the matched chi
// route pattern, so path parameters do not explode label cardinality.
func CountRequests(m *metrics.ConversionMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTPRequest(r.Method, route, strconv.Itoa(ww.Status()))
		})
	}
}
