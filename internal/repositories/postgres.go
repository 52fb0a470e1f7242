package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// PostgresStore is the durable counterpart of MemoryStore. It has the
// same method set and the same not-found and conflict semantics.
type PostgresStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPostgresStore creates a store on top of an open connection pool.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

// redacted replaces secret query arguments in logs.
const redacted = "[REDACTED]"

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// CreateUser inserts a user. A duplicate email yields models.ErrConflict;
// the check and the insert are one statement.
func (s *PostgresStore) CreateUser(ctx context.Context, email, passwordHash string, isParent bool) (*models.User, error) {
	const query = `
		INSERT INTO users (email, password_hash, is_parent, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, password_hash, is_parent, created_at
	`
	args := []any{email, passwordHash, isParent, s.now()}

	var user models.User
	err := s.db.GetContext(ctx, &user, query, args...)
	logQuery(query, []any{email, redacted, isParent, args[3]}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser returns the user with id, or nil when absent.
func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, email, password_hash, is_parent, created_at
		FROM users
		WHERE id = $1
	`
	var user models.User
	err := s.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	return optional(&user, err)
}

// GetUserByEmail returns the user with an exactly matching email, or nil.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, email, password_hash, is_parent, created_at
		FROM users
		WHERE email = $1
	`
	var user models.User
	err := s.db.GetContext(ctx, &user, query, email)
	logQuery(query, []any{email}, user.ID, err)

	return optional(&user, err)
}

// CreateChild stores a child for parentID.
func (s *PostgresStore) CreateChild(ctx context.Context, in models.ChildInput, parentID int64) (*models.Child, error) {
	const query = `
		INSERT INTO children (name, avatar, parent_id, time_limit, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, avatar, parent_id, time_limit, created_at
	`
	args := []any{in.Name, in.Avatar, parentID, in.TimeLimit, s.now()}

	var child models.Child
	err := s.db.GetContext(ctx, &child, query, args...)
	logQuery(query, args, child.ID, err)

	if err != nil {
		return nil, err
	}
	return &child, nil
}

// GetChild returns the child with id, or nil when absent.
func (s *PostgresStore) GetChild(ctx context.Context, id int64) (*models.Child, error) {
	const query = `
		SELECT id, name, avatar, parent_id, time_limit, created_at
		FROM children
		WHERE id = $1
	`
	var child models.Child
	err := s.db.GetContext(ctx, &child, query, id)
	logQuery(query, []any{id}, child.ID, err)

	return optional(&child, err)
}

// GetChildByParentID returns the oldest child of parentID, or nil.
func (s *PostgresStore) GetChildByParentID(ctx context.Context, parentID int64) (*models.Child, error) {
	const query = `
		SELECT id, name, avatar, parent_id, time_limit, created_at
		FROM children
		WHERE parent_id = $1
		ORDER BY id
		LIMIT 1
	`
	var child models.Child
	err := s.db.GetContext(ctx, &child, query, parentID)
	logQuery(query, []any{parentID}, child.ID, err)

	return optional(&child, err)
}

// UpdateChild overwrites the non-nil fields of upd. An unknown id yields
// models.ErrNotFound.
func (s *PostgresStore) UpdateChild(ctx context.Context, id int64, upd models.ChildUpdate) (*models.Child, error) {
	const query = `
		UPDATE children
		SET name = COALESCE($2, name),
		    avatar = COALESCE($3, avatar),
		    time_limit = COALESCE($4, time_limit)
		WHERE id = $1
		RETURNING id, name, avatar, parent_id, time_limit, created_at
	`
	args := []any{id, upd.Name, upd.Avatar, upd.TimeLimit}

	var child models.Child
	err := s.db.GetContext(ctx, &child, query, args...)
	logQuery(query, args, child.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// CreateActivity appends an activity dated at the current server time.
func (s *PostgresStore) CreateActivity(ctx context.Context, childID int64, activityType string, duration int) (*models.Activity, error) {
	const query = `
		INSERT INTO activities (child_id, activity_type, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, child_id, activity_type, duration, date
	`
	args := []any{childID, activityType, duration, s.now()}

	var activity models.Activity
	err := s.db.GetContext(ctx, &activity, query, args...)
	logQuery(query, args, activity.ID, err)

	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetActivitiesByChildAndDate returns the activities of childID dated
// within the calendar day of day, in insertion order.
func (s *PostgresStore) GetActivitiesByChildAndDate(ctx context.Context, childID int64, day time.Time) ([]models.Activity, error) {
	const query = `
		SELECT id, child_id, activity_type, duration, date
		FROM activities
		WHERE child_id = $1 AND date >= $2 AND date < $3
		ORDER BY id
	`
	start, end := DayWindow(day)
	args := []any{childID, start, end}

	activities := make([]models.Activity, 0)
	err := s.db.SelectContext(ctx, &activities, query, args...)
	logQuery(query, args, len(activities), err)

	if err != nil {
		return nil, err
	}
	return activities, nil
}

// GetAllPhotos returns the photo catalog sorted by order.
func (s *PostgresStore) GetAllPhotos(ctx context.Context) ([]models.Photo, error) {
	const query = `
		SELECT id, url, title, alt, sort_order
		FROM photos
		ORDER BY sort_order, id
	`
	photos := make([]models.Photo, 0)
	err := s.db.SelectContext(ctx, &photos, query)
	logQuery(query, nil, len(photos), err)

	if err != nil {
		return nil, err
	}
	return photos, nil
}

// GetAllSongs returns the song catalog sorted by order.
func (s *PostgresStore) GetAllSongs(ctx context.Context) ([]models.Song, error) {
	const query = `
		SELECT id, title, icon, color, audio_url, sort_order
		FROM songs
		ORDER BY sort_order, id
	`
	songs := make([]models.Song, 0)
	err := s.db.SelectContext(ctx, &songs, query)
	logQuery(query, nil, len(songs), err)

	if err != nil {
		return nil, err
	}
	return songs, nil
}

// optional turns sql.ErrNoRows into a nil result without error.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
