package handlers

//go:generate mockgen -source=guest_login.go -destination=guest_login_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// GuestLoginer opens guest sessions.
type GuestLoginer interface {
	GuestLogin(ctx context.Context, currentSessionID string) (string, error)
}

// NewGuestLoginHandler returns an HTTP handler that enters as guest.
// @Summary Guest login
// @Description Open a guest session without an account
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Guest session opened"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /guest-login [post]
func NewGuestLoginHandler(svc GuestLoginer, cookies SessionCookieWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := svc.GuestLogin(r.Context(), middlewares.SessionIDFromContext(r.Context()))
		if err != nil {
			writeError(w, r, "guest login", err)
			return
		}

		cookies.SetCookie(w, r, token)
		writeJSON(w, http.StatusOK, UserResponse{User: models.GuestUser()})
	}
}
