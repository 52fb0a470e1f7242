package handlers

//go:generate mockgen -source=activity.go -destination=activity_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
	"github.com/sbilibin2017/mundo-divertido/internal/services"
)

// ActivityRecorder stores activity time.
type ActivityRecorder interface {
	Record(ctx context.Context, in services.ActivityInput) (*models.Activity, error)
}

// ActivityLister lists the activities of a child on one day.
type ActivityLister interface {
	ListByDay(ctx context.Context, childID int64, date string) ([]models.Activity, error)
}

// DailyStatsGetter aggregates the activities of a child on one day.
type DailyStatsGetter interface {
	DailyStats(ctx context.Context, childID int64, date string) (*models.DailyStats, error)
}

// CreateActivityRequest represents the JSON body for recording activity time
// swagger:model CreateActivityRequest
type CreateActivityRequest struct {
	// required: true
	// default: 1
	ChildID *int64 `json:"childId"`

	// One of music, coloring, photos
	// required: true
	// default: music
	ActivityType string `json:"activityType"`

	// Seconds spent
	// required: true
	// default: 120
	Duration *int `json:"duration"`
}

// NewCreateActivityHandler returns an HTTP handler for recording activity time.
// @Summary Record activity
// @Description Appends an activity record stamped with the server time
// @Tags activity
// @Accept json
// @Produce json
// @Param createActivityRequest body handlers.CreateActivityRequest true "Activity"
// @Success 200 {object} models.Activity "Recorded activity"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /activity [post]
func NewCreateActivityHandler(svc ActivityRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateActivityRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		activity, err := svc.Record(r.Context(), services.ActivityInput{
			ChildID:      req.ChildID,
			ActivityType: req.ActivityType,
			Duration:     req.Duration,
		})
		if err != nil {
			writeError(w, r, "create activity", err)
			return
		}
		writeJSON(w, http.StatusOK, activity)
	}
}

// NewListActivitiesHandler returns an HTTP handler listing a child's activities on a day.
// @Summary List activities
// @Description Activities of a child within one local calendar day, in insertion order
// @Tags activity
// @Produce json
// @Param childId path int true "Child ID"
// @Param date path string true "Day as YYYY-MM-DD"
// @Success 200 {array} models.Activity "Activities"
// @Failure 400 {object} handlers.ErrorResponse "Invalid child id or date"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /activities/{childId}/{date} [get]
func NewListActivitiesHandler(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		childID, err := int64Param(r, "childId")
		if err != nil {
			writeError(w, r, "list activities", err)
			return
		}

		activities, err := svc.ListByDay(r.Context(), childID, chi.URLParam(r, "date"))
		if err != nil {
			writeError(w, r, "list activities", err)
			return
		}
		writeJSON(w, http.StatusOK, activities)
	}
}

// NewDailyStatsHandler returns an HTTP handler aggregating a child's day.
// @Summary Daily statistics
// @Description Seconds spent per activity type within one local calendar day
// @Tags activity
// @Produce json
// @Param childId path int true "Child ID"
// @Param date path string true "Day as YYYY-MM-DD"
// @Success 200 {object} models.DailyStats "Statistics"
// @Failure 400 {object} handlers.ErrorResponse "Invalid child id or date"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /activities/{childId}/{date}/stats [get]
func NewDailyStatsHandler(svc DailyStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		childID, err := int64Param(r, "childId")
		if err != nil {
			writeError(w, r, "daily stats", err)
			return
		}

		date := chi.URLParam(r, "date")
		if date == "" {
			// the service reads an empty date as today
			verr := models.NewValidationError()
			verr.Add("date", "is required")
			writeError(w, r, "daily stats", verr)
			return
		}

		stats, err := svc.DailyStats(r.Context(), childID, date)
		if err != nil {
			writeError(w, r, "daily stats", err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
