package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
)

// Logouter destroys sessions.
type Logouter interface {
	Logout(ctx context.Context, sessionID string) error
}

// NewLogoutHandler returns an HTTP handler that ends the caller's session.
// @Summary Logout
// @Description Destroy the session and clear the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, cookies SessionCookieWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middlewares.SessionIDFromContext(r.Context())); err != nil {
			writeError(w, r, "logout", err)
			return
		}

		cookies.ClearCookie(w, r)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
