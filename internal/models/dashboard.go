package models

// Dashboard is the parent-facing summary. Restricted is set for callers
// that may not view parent settings; Child is nil when the parent has not
// created a profile yet.
type Dashboard struct {
	Restricted bool        `json:"restricted"`
	Child      *Child      `json:"child"`
	Stats      *DailyStats `json:"stats,omitempty"`
}
