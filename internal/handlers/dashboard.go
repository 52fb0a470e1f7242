package handlers

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// DashboardGetter builds the parent dashboard.
type DashboardGetter interface {
	Dashboard(ctx context.Context, identity models.Identity, date string) (*models.Dashboard, error)
}

// NewDashboardHandler returns an HTTP handler for the parent dashboard.
// @Summary Parent dashboard
// @Description Child profile and daily statistics for parent accounts; restricted for guests and non-parents
// @Tags dashboard
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, default today"
// @Success 200 {object} models.Dashboard "Dashboard"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dash, err := svc.Dashboard(r.Context(), middlewares.IdentityFromContext(r.Context()), r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, r, "dashboard", err)
			return
		}
		writeJSON(w, http.StatusOK, dash)
	}
}
