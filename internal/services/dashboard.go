package services

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// ParentChildReader finds the child profile owned by a parent.
type ParentChildReader interface {
	GetChildByParentID(ctx context.Context, parentID int64) (*models.Child, error)
}

// StatsProvider aggregates a child's activity over one day.
type StatsProvider interface {
	DailyStats(ctx context.Context, childID int64, date string) (*models.DailyStats, error)
}

// DashboardService builds the parent-facing summary.
type DashboardService struct {
	children ParentChildReader
	stats    StatsProvider
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(children ParentChildReader, stats StatsProvider) *DashboardService {
	return &DashboardService{children: children, stats: stats}
}

// Dashboard returns the summary for date, or today when date is empty.
// Guests and non-parent accounts get a restricted result rather than an
// error; anonymous callers get ErrUnauthenticated.
func (s *DashboardService) Dashboard(ctx context.Context, identity models.Identity, date string) (*models.Dashboard, error) {
	if _, ok := identity.(models.Anonymous); ok || identity == nil {
		return nil, models.ErrUnauthenticated
	}
	if !models.CanViewSettings(identity) {
		return &models.Dashboard{Restricted: true}, nil
	}

	parentID := identity.(models.Authenticated).UserID
	child, err := s.children.GetChildByParentID(ctx, parentID)
	if err != nil {
		logger.Log.Errorw("failed to get child for dashboard", "parentID", parentID, "error", err)
		return nil, err
	}
	if child == nil {
		return &models.Dashboard{}, nil
	}

	stats, err := s.stats.DailyStats(ctx, child.ID, date)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{Child: child, Stats: stats}, nil
}
