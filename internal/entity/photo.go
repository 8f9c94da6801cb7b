package entity

import (
	"time"

	"github.com/google/uuid"
)

// Photo is immutable once recorded.
type Photo struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	TakenAt     time.Time `json:"taken_at"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
