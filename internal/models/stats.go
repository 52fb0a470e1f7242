package models

// DailyStats aggregates the activity time of one child over one calendar day
type DailyStats struct {
	ChildID      int64          `json:"childId"`
	Date         string         `json:"date"`         // YYYY-MM-DD
	TotalSeconds int            `json:"totalSeconds"` // Sum over all activity types
	ByType       map[string]int `json:"byType"`       // Seconds per activity type, every type present
}

// NewDailyStats sums activities per type. Every supported type is present
// in ByType, zero when nothing was recorded.
func NewDailyStats(childID int64, date string, activities []Activity) DailyStats {
	stats := DailyStats{
		ChildID: childID,
		Date:    date,
		ByType:  make(map[string]int, len(ActivityTypes)),
	}
	for _, t := range ActivityTypes {
		stats.ByType[t] = 0
	}
	for _, a := range activities {
		stats.ByType[a.ActivityType] += a.Duration
		stats.TotalSeconds += a.Duration
	}
	return stats
}
