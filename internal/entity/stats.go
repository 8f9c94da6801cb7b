package entity

import "time"

// Stats is the per-user engagement streak.
type Stats struct {
	UserID        string    `json:"user_id"`
	StreakCurrent int       `json:"streak_current"`
	StreakMax     int       `json:"streak_max"`
	LastDate      time.Time `json:"last_date"`
}
