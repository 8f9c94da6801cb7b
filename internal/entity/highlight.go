package entity

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindPeriodic Kind = "periodic"
	KindCustom   Kind = "custom"
)

func (k Kind) Valid() bool {
	return k == KindPeriodic || k == KindCustom
}

// RenderMode is derived from Kind: periodic highlights carry the branding overlay,
// custom ones (paid tier) do not.
type RenderMode string

const (
	RenderBranded   RenderMode = "branded"
	RenderUnbranded RenderMode = "unbranded"
)

func (k Kind) RenderMode() RenderMode {
	if k == KindCustom {
		return RenderUnbranded
	}
	return RenderBranded
}

type Highlight struct {
	ID     uuid.UUID       `json:"id"`
	UserID string          `json:"user_id"`
	Kind   Kind            `json:"kind"`
	Status HighlightStatus `json:"status"`

	// Period is set for periodic highlights (yyyyMM), StartDate/EndDate for custom ones.
	Period    *string    `json:"period,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	OutputPath    *string `json:"output_path,omitempty"`
	FailureReason *string `json:"failure_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
