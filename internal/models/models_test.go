package models

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	verr := NewValidationError()
	assert.NoError(t, verr.OrNil())

	verr.Add("name", "is required")
	verr.Add("avatar", "must be one of cat, dog, heart")

	err := fmt.Errorf("create child: %w", verr.OrNil())
	var got *ValidationError
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, "validation failed: avatar: must be one of cat, dog, heart, name: is required", got.Error())
}

func TestIdentityPermissions(t *testing.T) {
	tests := []struct {
		name       string
		identity   Identity
		canManage  bool
		canSetting bool
	}{
		{name: "anonymous", identity: Anonymous{}},
		{name: "guest", identity: Guest{}},
		{name: "non-parent", identity: Authenticated{UserID: 2}, canManage: true},
		{name: "parent", identity: Authenticated{UserID: 1, IsParent: true}, canManage: true, canSetting: true},
		{name: "nil", identity: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canManage, CanManageChild(tt.identity))
			assert.Equal(t, tt.canSetting, CanViewSettings(tt.identity))
		})
	}
}

func TestSession(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	s := &Session{ID: "a", Kind: SessionUser, UserID: 3, IsParent: true, ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
	assert.Equal(t, Authenticated{UserID: 3, IsParent: true}, s.Identity())

	assert.Equal(t, Guest{}, (&Session{Kind: SessionGuest}).Identity())
	assert.Equal(t, Anonymous{}, (&Session{Kind: "bogus"}).Identity())
}

func TestNewDailyStats(t *testing.T) {
	stats := NewDailyStats(2, "2024-01-15", []Activity{
		{ActivityType: ActivityMusic, Duration: 60},
		{ActivityType: ActivityMusic, Duration: 30},
		{ActivityType: ActivityColoring, Duration: 15},
	})

	assert.Equal(t, 105, stats.TotalSeconds)
	assert.Equal(t, map[string]int{ActivityMusic: 90, ActivityColoring: 15, ActivityPhotos: 0}, stats.ByType)

	empty := NewDailyStats(2, "2024-01-16", nil)
	assert.Zero(t, empty.TotalSeconds)
	assert.Len(t, empty.ByType, len(ActivityTypes))
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidAvatar(AvatarDog))
	assert.False(t, IsValidAvatar("dragon"))
	assert.True(t, IsValidActivityType(ActivityPhotos))
	assert.False(t, IsValidActivityType("dancing"))

	child := GuestChild()
	assert.Zero(t, child.ID)
	assert.Equal(t, AvatarHeart, child.Avatar)
	assert.True(t, child.CreatedAt.IsZero())
}

func TestCurrentUser(t *testing.T) {
	assert.Equal(t, &CurrentUser{ID: 1, Email: "a@x.com", IsParent: true}, NewCurrentUser(&User{ID: 1, Email: "a@x.com", IsParent: true}))
	assert.Equal(t, &CurrentUser{Email: GuestUserEmail, IsGuest: true}, GuestUser())
}
