package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type userKey struct{}

// userFrom returns the acting user recorded by authTrail.
func userFrom(ctx context.Context) string {
	if user, ok := ctx.Value(userKey{}).(string); ok {
		return user
	}

	return unknownUser
}

// authTrail records who did what. The user comes from a header set by the
// authenticating proxy in front of the dashboard.
func authTrail(logger *slog.Logger, userHeader string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := unknownUser

			if userHeader != "" {
				if v := r.Header.Get(userHeader); v != "" {
					user = v
				}
			}

			ctx := context.WithValue(r.Context(), userKey{}, user)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			logger.InfoContext(ctx, "request",
				"user", user,
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"traceID", middleware.GetReqID(ctx),
			)
		})
	}
}
