package response

import (
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
)

type Highlight struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	Status        string  `json:"status"`
	Period        *string `json:"period,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	OutputPath    *string `json:"output_path,omitempty"`
	FailureReason *string `json:"failure_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
	CompletedAt   *string `json:"completed_at,omitempty"`
}

func NewHighlight(h *entity.Highlight) Highlight {
	return Highlight{
		ID:            h.ID.String(),
		Kind:          string(h.Kind),
		Status:        string(h.Status),
		Period:        h.Period,
		StartDate:     formatTime(h.StartDate),
		EndDate:       formatTime(h.EndDate),
		OutputPath:    h.OutputPath,
		FailureReason: h.FailureReason,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
		CompletedAt:   formatTime(h.CompletedAt),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)

	return &s
}
