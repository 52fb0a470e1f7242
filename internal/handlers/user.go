package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// CurrentUserGetter returns the public view of the caller.
type CurrentUserGetter interface {
	CurrentUser(ctx context.Context, identity models.Identity) (*models.CurrentUser, error)
}

// NewGetUserHandler returns an HTTP handler for the current user.
// @Summary Current user
// @Description Returns the logged in user, or the synthetic guest user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user [get]
func NewGetUserHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.CurrentUser(r.Context(), middlewares.IdentityFromContext(r.Context()))
		if err != nil {
			writeError(w, r, "get user", err)
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}
