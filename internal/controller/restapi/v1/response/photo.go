package response

import (
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
)

type Photo struct {
	ID          string `json:"id"`
	StoragePath string `json:"storage_path"`
	TakenAt     string `json:"taken_at"`
}

func NewPhoto(p *entity.Photo) Photo {
	return Photo{
		ID:          p.ID.String(),
		StoragePath: p.StoragePath,
		TakenAt:     p.TakenAt.Format(time.RFC3339),
	}
}

type Stats struct {
	StreakCurrent int     `json:"streak_current"`
	StreakMax     int     `json:"streak_max"`
	LastDate      *string `json:"last_date,omitempty"`
}

func NewStats(s *entity.Stats) Stats {
	return Stats{
		StreakCurrent: s.StreakCurrent,
		StreakMax:     s.StreakMax,
		LastDate:      formatTime(&s.LastDate),
	}
}
