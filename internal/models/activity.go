package models

import "time"

// Supported activity types
const (
	ActivityMusic    = "music"
	ActivityColoring = "coloring"
	ActivityPhotos   = "photos"
)

// ActivityTypes lists the supported activity types in display order.
var ActivityTypes = []string{ActivityMusic, ActivityColoring, ActivityPhotos}

// Activity is an append-only record of time spent in one activity
type Activity struct {
	ID           int64     `json:"id" db:"id"`                      // Generated identifier
	ChildID      int64     `json:"childId" db:"child_id"`           // Child the time belongs to, not validated
	ActivityType string    `json:"activityType" db:"activity_type"` // music, coloring or photos
	Duration     int       `json:"duration" db:"duration"`          // Seconds spent
	Date         time.Time `json:"date" db:"date"`                  // Server time at insertion
}

// IsValidActivityType reports whether t is a supported activity type.
func IsValidActivityType(t string) bool {
	for _, at := range ActivityTypes {
		if at == t {
			return true
		}
	}
	return false
}

// ActivityEvent is the message published for every recorded activity.
type ActivityEvent struct {
	EventID      string    `json:"eventId"`
	ActivityID   int64     `json:"activityId"`
	ChildID      int64     `json:"childId"`
	ActivityType string    `json:"activityType"`
	Duration     int       `json:"duration"`
	Date         time.Time `json:"date"`
}
