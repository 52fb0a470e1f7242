package handlers

//go:generate mockgen -source=child.go -destination=child_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/mundo-divertido/internal/middlewares"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// ChildGetter returns the caller's child profile.
type ChildGetter interface {
	GetChild(ctx context.Context, identity models.Identity) (*models.Child, error)
}

// ChildCreator creates child profiles.
type ChildCreator interface {
	CreateChild(ctx context.Context, identity models.Identity, in models.ChildInput) (*models.Child, error)
}

// ChildUpdater applies partial updates to child profiles.
type ChildUpdater interface {
	UpdateChild(ctx context.Context, identity models.Identity, childID int64, upd models.ChildUpdate) (*models.Child, error)
}

// ChildResponse represents a child profile. The synthetic guest child has
// no parent and no creation time.
// swagger:model ChildResponse
type ChildResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Avatar    string     `json:"avatar"`
	ParentID  *int64     `json:"parentId,omitempty"`
	TimeLimit int        `json:"timeLimit"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func newChildResponse(c *models.Child) ChildResponse {
	resp := ChildResponse{
		ID:        c.ID,
		Name:      c.Name,
		Avatar:    c.Avatar,
		TimeLimit: c.TimeLimit,
	}
	if !c.CreatedAt.IsZero() {
		parentID, createdAt := c.ParentID, c.CreatedAt
		resp.ParentID = &parentID
		resp.CreatedAt = &createdAt
	}
	return resp
}

// CreateChildRequest represents the JSON body for creating a child
// swagger:model CreateChildRequest
type CreateChildRequest struct {
	// required: true
	// default: Ana
	Name string `json:"name"`

	// One of cat, dog, heart
	// default: cat
	Avatar string `json:"avatar"`

	// Daily limit in minutes
	// default: 30
	TimeLimit int `json:"timeLimit"`
}

// UpdateChildRequest represents a partial child update; omitted fields are kept
// swagger:model UpdateChildRequest
type UpdateChildRequest struct {
	Name      *string `json:"name,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	TimeLimit *int    `json:"timeLimit,omitempty"`
}

// NewGetChildHandler returns an HTTP handler for the caller's child.
// @Summary Get child
// @Description Returns the child of the logged in account, or the guest child
// @Tags child
// @Produce json
// @Success 200 {object} handlers.ChildResponse "Child profile"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "No child yet"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /child [get]
func NewGetChildHandler(svc ChildGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		child, err := svc.GetChild(r.Context(), middlewares.IdentityFromContext(r.Context()))
		if err != nil {
			writeError(w, r, "get child", err)
			return
		}
		writeJSON(w, http.StatusOK, newChildResponse(child))
	}
}

// NewCreateChildHandler returns an HTTP handler for creating a child.
// @Summary Create child
// @Description Creates a child profile owned by the logged in account
// @Tags child
// @Accept json
// @Produce json
// @Param createChildRequest body handlers.CreateChildRequest true "Child"
// @Success 200 {object} handlers.ChildResponse "Created child"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /child [post]
func NewCreateChildHandler(svc ChildCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateChildRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		child, err := svc.CreateChild(r.Context(), middlewares.IdentityFromContext(r.Context()), models.ChildInput{
			Name:      req.Name,
			Avatar:    req.Avatar,
			TimeLimit: req.TimeLimit,
		})
		if err != nil {
			writeError(w, r, "create child", err)
			return
		}
		writeJSON(w, http.StatusOK, newChildResponse(child))
	}
}

// NewUpdateChildHandler returns an HTTP handler for updating a child.
// @Summary Update child
// @Description Overwrites the given fields of a child profile
// @Tags child
// @Accept json
// @Produce json
// @Param id path int true "Child ID"
// @Param updateChildRequest body handlers.UpdateChildRequest true "Fields to change"
// @Success 200 {object} handlers.ChildResponse "Updated child"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Unknown child"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /child/{id} [put]
func NewUpdateChildHandler(svc ChildUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		childID, err := int64Param(r, "id")
		if err != nil {
			writeError(w, r, "update child", err)
			return
		}

		var req UpdateChildRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		child, err := svc.UpdateChild(r.Context(), middlewares.IdentityFromContext(r.Context()), childID, models.ChildUpdate{
			Name:      req.Name,
			Avatar:    req.Avatar,
			TimeLimit: req.TimeLimit,
		})
		if err != nil {
			writeError(w, r, "update child", err)
			return
		}
		writeJSON(w, http.StatusOK, newChildResponse(child))
	}
}
