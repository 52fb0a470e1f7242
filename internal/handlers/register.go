package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string, isParent bool, currentSessionID string) (*models.User, string, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email, unique across accounts
	// required: true
	// default: a@x.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Parent accounts can open the dashboard
	// default: false
	IsParent bool `json:"isParent"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register account
// @Description Create an account and open an authenticated session
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 200 {object} handlers.UserResponse "Registered, session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or email already in use"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, cookies SessionCookieWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, token, err := svc.Register(r.Context(), req.Email, req.Password, req.IsParent, middlewares.SessionIDFromContext(r.Context()))
		if err != nil {
			writeError(w, r, "register", err)
			return
		}

		cookies.SetCookie(w, r, token)
		writeJSON(w, http.StatusOK, UserResponse{User: models.NewCurrentUser(user)})
	}
}
