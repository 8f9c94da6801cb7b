package highlight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/dto"
	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/google/uuid"
)

// PreviousMonth returns [start, end) of the calendar month before now in loc
// and its period id.
func PreviousMonth(now time.Time, loc *time.Location) (time.Time, time.Time, string) {
	local := now.In(loc)
	end := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	start := end.AddDate(0, -1, 0)

	return start, end, start.Format(dto.PeriodLayout)
}

// RunMonthly dispatches a periodic highlight for every user with enough photos
// in the previous month. One user's failure does not stop the others; all
// failures are returned joined alongside the report.
func (uc *HighlightUseCase) RunMonthly(ctx context.Context, now time.Time) (*dto.MonthlyReport, error) {
	start, end, period := PreviousMonth(now, uc.location)
	report := dto.NewMonthlyReport(period)

	photos, err := uc.photos.ListTakenBetween(ctx, start, end)
	if err != nil {
		return report, fmt.Errorf("HighlightUseCase - RunMonthly - uc.photos.ListTakenBetween: %w", err)
	}

	users, byUser := groupByUser(photos)

	var errList []error
	for _, userID := range users {
		if err := ctx.Err(); err != nil {
			errList = append(errList, err)
			break
		}

		userPhotos := byUser[userID]
		if len(userPhotos) < uc.minPhotos {
			report.Skipped = append(report.Skipped, userID)
			dispatchesTotal.WithLabelValues(string(entity.KindPeriodic), outcomeSkipped).Inc()
			continue
		}

		h := &entity.Highlight{
			ID:        uuid.New(),
			UserID:    userID,
			Kind:      entity.KindPeriodic,
			Status:    entity.HighlightProcessing,
			Period:    &period,
			CreatedAt: uc.clock(),
		}

		created, err := uc.dispatch(ctx, h, userPhotos)
		switch {
		case err != nil:
			report.Failed[userID] = err
			errList = append(errList, fmt.Errorf("user %s: %w", userID, err))
			uc.logger.Error(err, "HighlightUseCase - RunMonthly - uc.dispatch")
			dispatchesTotal.WithLabelValues(string(entity.KindPeriodic), outcomeFailed).Inc()
		case !created:
			report.Existing = append(report.Existing, userID)
			dispatchesTotal.WithLabelValues(string(entity.KindPeriodic), outcomeExisting).Inc()
		default:
			report.Dispatched[userID] = h.ID
			dispatchesTotal.WithLabelValues(string(entity.KindPeriodic), outcomeDispatched).Inc()
		}
	}

	if len(errList) > 0 {
		return report, fmt.Errorf("HighlightUseCase - RunMonthly: %w", errors.Join(errList...))
	}

	return report, nil
}

// groupByUser keeps users in first-seen order and each user's photos in input order.
func groupByUser(photos []*entity.Photo) ([]string, map[string][]*entity.Photo) {
	var users []string
	byUser := make(map[string][]*entity.Photo)

	for _, p := range photos {
		if _, ok := byUser[p.UserID]; !ok {
			users = append(users, p.UserID)
		}
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	return users, byUser
}
