package services

//go:generate mockgen -source=child.go -destination=child_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// Bounds for child profile fields.
const (
	maxChildNameLen = 50
	maxTimeLimit    = 24 * 60
)

// ChildRepository defines the child operations of the store.
type ChildRepository interface {
	CreateChild(ctx context.Context, in models.ChildInput, parentID int64) (*models.Child, error)
	GetChildByParentID(ctx context.Context, parentID int64) (*models.Child, error)
	UpdateChild(ctx context.Context, id int64, upd models.ChildUpdate) (*models.Child, error)
}

// ChildService manages child profiles on behalf of the caller identity.
type ChildService struct {
	repo ChildRepository
}

// NewChildService creates a new ChildService.
func NewChildService(repo ChildRepository) *ChildService {
	return &ChildService{repo: repo}
}

// GetChild returns the caller's child. Guests get the synthetic profile
// without a store lookup.
func (s *ChildService) GetChild(ctx context.Context, identity models.Identity) (*models.Child, error) {
	switch id := identity.(type) {
	case models.Guest:
		child := models.GuestChild()
		return &child, nil
	case models.Authenticated:
		child, err := s.repo.GetChildByParentID(ctx, id.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get child", "parentID", id.UserID, "err", err)
			return nil, err
		}
		if child == nil {
			return nil, models.ErrNotFound
		}
		return child, nil
	}
	return nil, models.ErrUnauthenticated
}

// CreateChild creates a profile owned by the caller. Missing avatar and
// time limit fall back to the defaults.
func (s *ChildService) CreateChild(ctx context.Context, identity models.Identity, in models.ChildInput) (*models.Child, error) {
	parentID, err := requireManager(identity)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Avatar == "" {
		in.Avatar = models.DefaultAvatar
	}
	if in.TimeLimit == 0 {
		in.TimeLimit = models.DefaultTimeLimit
	}

	verr := models.NewValidationError()
	if in.Name == "" {
		verr.Add("name", "is required")
	}
	validateChildFields(verr, &in.Name, &in.Avatar, &in.TimeLimit)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	child, err := s.repo.CreateChild(ctx, in, parentID)
	if err != nil {
		logger.Log.Errorw("failed to create child", "parentID", parentID, "err", err)
		return nil, err
	}
	return child, nil
}

// UpdateChild applies a partial update to the child with the given id.
// Any authenticated account may update any child.
func (s *ChildService) UpdateChild(ctx context.Context, identity models.Identity, childID int64, upd models.ChildUpdate) (*models.Child, error) {
	if _, err := requireManager(identity); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		upd.Name = &name
	}

	verr := models.NewValidationError()
	if upd.Name != nil && *upd.Name == "" {
		verr.Add("name", "must not be empty")
	}
	validateChildFields(verr, upd.Name, upd.Avatar, upd.TimeLimit)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	child, err := s.repo.UpdateChild(ctx, childID, upd)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to update child", "childID", childID, "err", err)
		}
		return nil, err
	}
	return child, nil
}

func requireManager(identity models.Identity) (int64, error) {
	if !models.CanManageChild(identity) {
		return 0, models.ErrUnauthenticated
	}
	return identity.(models.Authenticated).UserID, nil
}

func validateChildFields(verr *models.ValidationError, name, avatar *string, timeLimit *int) {
	if name != nil && utf8.RuneCountInString(*name) > maxChildNameLen {
		verr.Add("name", "must be at most 50 characters")
	}
	if avatar != nil && !models.IsValidAvatar(*avatar) {
		verr.Add("avatar", "must be one of cat, dog, heart")
	}
	if timeLimit != nil && (*timeLimit < 1 || *timeLimit > maxTimeLimit) {
		verr.Add("timeLimit", "must be between 1 and 1440 minutes")
	}
}
