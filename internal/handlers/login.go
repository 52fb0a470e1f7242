package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password, currentSessionID string) (*models.User, string, error)
}

// SessionCookieWriter sets and clears the session cookie.
type SessionCookieWriter interface {
	SetCookie(w http.ResponseWriter, r *http.Request, token string)
	ClearCookie(w http.ResponseWriter, r *http.Request)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: a@x.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UserResponse wraps the current user
// swagger:model UserResponse
type UserResponse struct {
	User *models.CurrentUser `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verify credentials and open an authenticated session
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.UserResponse "Logged in, session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookies SessionCookieWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password, middlewares.SessionIDFromContext(r.Context()))
		if err != nil {
			writeError(w, r, "login", err)
			return
		}

		cookies.SetCookie(w, r, token)
		writeJSON(w, http.StatusOK, UserResponse{User: models.NewCurrentUser(user)})
	}
}
