package streak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var updatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streak_updates_total",
	Help: "Streak updates by outcome: started, extended or reset.",
}, []string{"outcome"})

// Window is the longest gap between two photos that still continues a streak.
const Window = 28 * time.Hour

// Advance returns the stats after a photo recorded at now. prev may be nil or a
// zero row for a user without stats.
func Advance(prev *entity.Stats, userID string, now time.Time) *entity.Stats {
	if isFirst(prev) {
		return &entity.Stats{UserID: userID, StreakCurrent: 1, StreakMax: 1, LastDate: now}
	}

	next := &entity.Stats{UserID: userID, StreakMax: prev.StreakMax, LastDate: now}

	if now.Sub(prev.LastDate) <= Window {
		next.StreakCurrent = prev.StreakCurrent + 1
	} else {
		next.StreakCurrent = 1
	}

	next.StreakMax = max(next.StreakMax, next.StreakCurrent)

	return next
}

func outcome(prev, next *entity.Stats) string {
	switch {
	case isFirst(prev):
		return "started"
	case next.StreakCurrent > prev.StreakCurrent:
		return "extended"
	default:
		return "reset"
	}
}

func isFirst(prev *entity.Stats) bool {
	return prev == nil || prev.StreakCurrent == 0
}

type Tracker struct {
	stats repo.StatsRepo
	clock func() time.Time
}

func New(stats repo.StatsRepo, clock func() time.Time) *Tracker {
	if clock == nil {
		clock = time.Now
	}

	return &Tracker{
		stats: stats,
		clock: clock,
	}
}

// Track advances the user's streak. It must run inside the transaction that
// records the photo so the row lock serializes concurrent uploads.
func (t *Tracker) Track(ctx context.Context, userID string) (*entity.Stats, error) {
	prev, err := t.stats.GetForUpdate(ctx, userID)
	if err != nil && !errors.Is(err, errs.ErrRecordNotFound) {
		return nil, fmt.Errorf("Tracker - Track - t.stats.GetForUpdate: %w", err)
	}

	next := Advance(prev, userID, t.clock())
	updatesTotal.WithLabelValues(outcome(prev, next)).Inc()

	err = t.stats.Save(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("Tracker - Track - t.stats.Save: %w", err)
	}

	return next, nil
}

// Get returns zeroed stats for a user who never uploaded.
func (t *Tracker) Get(ctx context.Context, userID string) (*entity.Stats, error) {
	stats, err := t.stats.Get(ctx, userID)
	if errors.Is(err, errs.ErrRecordNotFound) {
		return &entity.Stats{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Tracker - Get - t.stats.Get: %w", err)
	}

	return stats, nil
}
