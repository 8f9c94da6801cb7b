package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/google/uuid"
)

// PeriodLayout is the yyyyMM layout of periodic highlight ids.
const PeriodLayout = "200601"

// GenerationRequest is what a trigger hands to the Generation Worker, over Kafka
// or the HTTP intake endpoint.
type GenerationRequest struct {
	UserID      string      `json:"user_id"`
	Photos      []string    `json:"photos"`
	HighlightID uuid.UUID   `json:"highlight_id"`
	Kind        entity.Kind `json:"kind"`
	Period      string      `json:"period,omitempty"`
}

func (r GenerationRequest) Validate() error {
	switch {
	case r.UserID == "":
		return fmt.Errorf("%w: user_id is required", errs.ErrInvalidInput)
	case !validPathSegment(r.UserID):
		return fmt.Errorf("%w: user_id %q is not a valid path segment", errs.ErrInvalidInput, r.UserID)
	case r.HighlightID == uuid.Nil:
		return fmt.Errorf("%w: highlight_id is required", errs.ErrInvalidInput)
	case len(r.Photos) == 0:
		return fmt.Errorf("%w: at least one photo is required", errs.ErrInvalidInput)
	case !r.Kind.Valid():
		return fmt.Errorf("%w: unknown kind %q", errs.ErrInvalidInput, r.Kind)
	case r.Kind == entity.KindPeriodic && r.Period == "":
		return fmt.Errorf("%w: period is required for periodic highlights", errs.ErrInvalidInput)
	case r.Kind == entity.KindPeriodic && !validPeriod(r.Period):
		return fmt.Errorf("%w: period %q is not yyyyMM", errs.ErrInvalidInput, r.Period)
	case r.Kind == entity.KindCustom && r.Period != "":
		return fmt.Errorf("%w: period is only valid for periodic highlights", errs.ErrInvalidInput)
	}

	for i, p := range r.Photos {
		if p == "" {
			return fmt.Errorf("%w: photo %d has an empty path", errs.ErrInvalidInput, i)
		}
	}

	return nil
}

// OutputPath is the destination object path. The two kinds live under different
// prefixes so they never collide for one user.
func (r GenerationRequest) OutputPath() string {
	if r.Kind == entity.KindCustom {
		return fmt.Sprintf("highlights_custom/%s/%s.mp4", r.UserID, r.HighlightID)
	}
	return fmt.Sprintf("highlights/%s/%s.mp4", r.UserID, r.Period)
}

// validPathSegment rejects ids that would add or climb object key levels.
func validPathSegment(s string) bool {
	return s != "." && !strings.ContainsAny(s, "/\\") && !strings.Contains(s, "..")
}

func validPeriod(p string) bool {
	if len(p) != len(PeriodLayout) {
		return false
	}
	_, err := time.Parse(PeriodLayout, p)

	return err == nil
}
