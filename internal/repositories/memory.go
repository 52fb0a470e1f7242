package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// MemoryStore keeps users, children, activities and the content catalog
// in process memory. Every method holds the lock for its whole body, so
// each call is atomic with respect to the others. Iteration order is
// insertion order.
type MemoryStore struct {
	mu sync.RWMutex

	users      []models.User
	children   []models.Child
	activities []models.Activity
	photos     []models.Photo
	songs      []models.Song

	userIdx  map[int64]int // user id -> position in users
	childIdx map[int64]int // child id -> position in children

	nextUserID     int64
	nextChildID    int64
	nextActivityID int64

	now func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the clock used for createdAt and activity dates.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// WithCatalog replaces the default photo and song catalog.
func WithCatalog(photos []models.Photo, songs []models.Song) MemoryOption {
	return func(s *MemoryStore) {
		s.photos = append([]models.Photo(nil), photos...)
		s.songs = append([]models.Song(nil), songs...)
	}
}

// NewMemoryStore creates a store seeded with the default catalog.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		photos:         DefaultPhotos(),
		songs:          DefaultSongs(),
		userIdx:        make(map[int64]int),
		childIdx:       make(map[int64]int),
		nextUserID:     1,
		nextChildID:    1,
		nextActivityID: 1,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUser inserts a user unless the email is already taken, in which
// case it returns models.ErrConflict and leaves the store untouched.
func (s *MemoryStore) CreateUser(ctx context.Context, email, passwordHash string, isParent bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			logger.Log.Debugw("user already exists", "email", email)
			return nil, models.ErrConflict
		}
	}

	user := models.User{
		ID:           s.nextUserID,
		Email:        email,
		PasswordHash: passwordHash,
		IsParent:     isParent,
		CreatedAt:    s.now(),
	}
	s.nextUserID++
	s.userIdx[user.ID] = len(s.users)
	s.users = append(s.users, user)

	logger.Log.Debugw("user created", "id", user.ID, "email", email)
	return &user, nil
}

// GetUser returns the user with id, or nil when absent.
func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.userIdx[id]
	if !ok {
		return nil, nil
	}
	user := s.users[i]
	return &user, nil
}

// GetUserByEmail returns the user with an exactly matching email, or nil.
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// CreateChild stores a child for parentID. The parent is not checked.
func (s *MemoryStore) CreateChild(ctx context.Context, in models.ChildInput, parentID int64) (*models.Child, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	child := models.Child{
		ID:        s.nextChildID,
		Name:      in.Name,
		Avatar:    in.Avatar,
		ParentID:  parentID,
		TimeLimit: in.TimeLimit,
		CreatedAt: s.now(),
	}
	s.nextChildID++
	s.childIdx[child.ID] = len(s.children)
	s.children = append(s.children, child)

	logger.Log.Debugw("child created", "id", child.ID, "parentID", parentID)
	return &child, nil
}

// GetChild returns the child with id, or nil when absent.
func (s *MemoryStore) GetChild(ctx context.Context, id int64) (*models.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.childIdx[id]
	if !ok {
		return nil, nil
	}
	child := s.children[i]
	return &child, nil
}

// GetChildByParentID returns the first child created for parentID, or nil.
func (s *MemoryStore) GetChildByParentID(ctx context.Context, parentID int64) (*models.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.children {
		if c.ParentID == parentID {
			child := c
			return &child, nil
		}
	}
	return nil, nil
}

// UpdateChild merges the non-nil fields of upd into the child with id.
func (s *MemoryStore) UpdateChild(ctx context.Context, id int64, upd models.ChildUpdate) (*models.Child, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.childIdx[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	child := s.children[i]
	if upd.Name != nil {
		child.Name = *upd.Name
	}
	if upd.Avatar != nil {
		child.Avatar = *upd.Avatar
	}
	if upd.TimeLimit != nil {
		child.TimeLimit = *upd.TimeLimit
	}
	s.children[i] = child

	logger.Log.Debugw("child updated", "id", id)
	return &child, nil
}

// CreateActivity appends an activity dated at the current server time.
func (s *MemoryStore) CreateActivity(ctx context.Context, childID int64, activityType string, duration int) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := models.Activity{
		ID:           s.nextActivityID,
		ChildID:      childID,
		ActivityType: activityType,
		Duration:     duration,
		Date:         s.now(),
	}
	s.nextActivityID++
	s.activities = append(s.activities, activity)

	logger.Log.Debugw("activity created", "id", activity.ID, "childID", childID, "type", activityType)
	return &activity, nil
}

// GetActivitiesByChildAndDate returns the activities of childID dated in
// [midnight of day, midnight + 24h), using day's location. The result is
// in insertion order and never nil.
func (s *MemoryStore) GetActivitiesByChildAndDate(ctx context.Context, childID int64, day time.Time) ([]models.Activity, error) {
	start, end := DayWindow(day)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Activity, 0)
	for _, a := range s.activities {
		if a.ChildID == childID && !a.Date.Before(start) && a.Date.Before(end) {
			result = append(result, a)
		}
	}
	return result, nil
}

// GetAllPhotos returns the photo catalog sorted by Order.
func (s *MemoryStore) GetAllPhotos(ctx context.Context) ([]models.Photo, error) {
	s.mu.RLock()
	photos := make([]models.Photo, len(s.photos))
	copy(photos, s.photos)
	s.mu.RUnlock()

	sort.SliceStable(photos, func(i, j int) bool { return photos[i].Order < photos[j].Order })
	return photos, nil
}

// GetAllSongs returns the song catalog sorted by Order.
func (s *MemoryStore) GetAllSongs(ctx context.Context) ([]models.Song, error) {
	s.mu.RLock()
	songs := make([]models.Song, len(s.songs))
	copy(songs, s.songs)
	s.mu.RUnlock()

	sort.SliceStable(songs, func(i, j int) bool { return songs[i].Order < songs[j].Order })
	return songs, nil
}

// DayWindow returns the local midnight of day and the next local midnight.
// The window is 23 or 25 hours long on DST transition days.
func DayWindow(day time.Time) (start, end time.Time) {
	y, m, d := day.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	end = time.Date(y, m, d+1, 0, 0, 0, 0, day.Location())
	return start, end
}
