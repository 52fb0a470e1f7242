package middlewares

//go:generate mockgen -source=session.go -destination=session_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// Tokener extracts the session token from a request
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// IdentityResolver maps a session token to the caller identity
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (models.Identity, string, error)
}

// SessionMiddleware resolves the caller of every request and stores the
// identity in the request context. Requests without a usable token pass
// through as Anonymous.
func SessionMiddleware(tokener Tokener, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				token = ""
			}

			identity, sessionID, err := resolver.Resolve(ctx, token)
			if err != nil {
				logger.Log.Errorw("session resolution failed", "request_id", RequestIDFromContext(ctx), "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, identity, sessionID)))
		})
	}
}

// RequireSession rejects anonymous callers with 401. Guests pass.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, anonymous := IdentityFromContext(r.Context()).(models.Anonymous); anonymous {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
