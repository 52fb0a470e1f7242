package middlewares

import (
	"context"

	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	identityKey
	sessionIDKey
)

// RequestIDFromContext returns the id assigned by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// IdentityFromContext returns the identity resolved by SessionMiddleware,
// Anonymous when none was resolved.
func IdentityFromContext(ctx context.Context) models.Identity {
	if id, ok := ctx.Value(identityKey).(models.Identity); ok {
		return id
	}
	return models.Anonymous{}
}

// SessionIDFromContext returns the id of the caller's session, empty for
// anonymous callers.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// WithIdentity stores a resolved identity and its session id in ctx.
func WithIdentity(ctx context.Context, identity models.Identity, sessionID string) context.Context {
	ctx = context.WithValue(ctx, identityKey, identity)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}
