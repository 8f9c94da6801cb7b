package streak

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name        string
		prev        *entity.Stats
		now         time.Time
		current, mx int
	}{
		{"first photo", nil, t0, 1, 1},
		{"seeded zero row", &entity.Stats{LastDate: t0}, t0.Add(time.Second), 1, 1},
		{"within window", &entity.Stats{StreakCurrent: 1, StreakMax: 1, LastDate: t0}, t0.Add(27 * time.Hour), 2, 2},
		{"exactly 28h continues", &entity.Stats{StreakCurrent: 3, StreakMax: 3, LastDate: t0}, t0.Add(Window), 4, 4},
		{"just past window resets", &entity.Stats{StreakCurrent: 3, StreakMax: 3, LastDate: t0}, t0.Add(Window + time.Second), 1, 3},
		{"gap resets but keeps max", &entity.Stats{StreakCurrent: 2, StreakMax: 5, LastDate: t0}, t0.Add(30 * time.Hour), 1, 5},
		{"continuing below max", &entity.Stats{StreakCurrent: 2, StreakMax: 5, LastDate: t0}, t0.Add(time.Hour), 3, 5},
		{"same instant", &entity.Stats{StreakCurrent: 1, StreakMax: 1, LastDate: t0}, t0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.prev, "u1", tt.now)
			if got.StreakCurrent != tt.current || got.StreakMax != tt.mx {
				t.Errorf("got %d/%d, want %d/%d", got.StreakCurrent, got.StreakMax, tt.current, tt.mx)
			}
			if !got.LastDate.Equal(tt.now) {
				t.Errorf("last date = %v, want %v", got.LastDate, tt.now)
			}
			if got.StreakMax < got.StreakCurrent {
				t.Errorf("max %d below current %d", got.StreakMax, got.StreakCurrent)
			}
		})
	}
}

// memStats seeds a zero row on GetForUpdate like the postgres repo does.
type memStats struct {
	rows  map[string]*entity.Stats
	locks int
}

func (m *memStats) GetForUpdate(_ context.Context, userID string) (*entity.Stats, error) {
	m.locks++
	if _, ok := m.rows[userID]; !ok {
		m.rows[userID] = &entity.Stats{UserID: userID, LastDate: t0}
	}
	cp := *m.rows[userID]

	return &cp, nil
}

func (m *memStats) Get(_ context.Context, userID string) (*entity.Stats, error) {
	s, ok := m.rows[userID]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}
	cp := *s

	return &cp, nil
}

func (m *memStats) Save(_ context.Context, s *entity.Stats) error {
	cp := *s
	m.rows[s.UserID] = &cp

	return nil
}

func TestTrackSequence(t *testing.T) {
	store := &memStats{rows: map[string]*entity.Stats{}}
	now := t0
	tracker := New(store, func() time.Time { return now })

	steps := []struct {
		advance     time.Duration
		current, mx int
	}{
		{0, 1, 1},
		{27 * time.Hour, 2, 2},
		{30 * time.Hour, 1, 2},
		{20 * time.Hour, 2, 2},
		{20 * time.Hour, 3, 3},
	}

	for i, s := range steps {
		now = now.Add(s.advance)
		got, err := tracker.Track(context.Background(), "u1")
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got.StreakCurrent != s.current || got.StreakMax != s.mx {
			t.Errorf("step %d: got %d/%d, want %d/%d", i, got.StreakCurrent, got.StreakMax, s.current, s.mx)
		}
	}

	if !store.rows["u1"].LastDate.Equal(now) {
		t.Errorf("stored last date = %v", store.rows["u1"].LastDate)
	}
}

type brokenStats struct{}

func (brokenStats) GetForUpdate(context.Context, string) (*entity.Stats, error) {
	return nil, errors.New("conn refused")
}

func (brokenStats) Get(context.Context, string) (*entity.Stats, error) {
	return nil, errors.New("conn refused")
}

func (brokenStats) Save(context.Context, *entity.Stats) error { return nil }

func TestTrackPropagatesReadError(t *testing.T) {
	_, err := New(brokenStats{}, nil).Track(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetUnknownUser(t *testing.T) {
	store := &memStats{rows: map[string]*entity.Stats{}}
	got, err := New(store, nil).Get(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if got.StreakCurrent != 0 || got.StreakMax != 0 || got.UserID != "nobody" {
		t.Errorf("got %+v", got)
	}
	if len(store.rows) != 0 {
		t.Errorf("Get created a row: %v", store.rows)
	}
}

func TestGetReadsWithoutLocking(t *testing.T) {
	store := &memStats{rows: map[string]*entity.Stats{
		"u1": {UserID: "u1", StreakCurrent: 4, StreakMax: 6, LastDate: t0},
	}}

	got, err := New(store, nil).Get(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if got.StreakCurrent != 4 || got.StreakMax != 6 {
		t.Errorf("got %+v", got)
	}
	if store.locks != 0 {
		t.Errorf("Get took %d row locks", store.locks)
	}
}

func TestGetPropagatesError(t *testing.T) {
	if _, err := New(brokenStats{}, nil).Get(context.Background(), "u1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestOutcome(t *testing.T) {
	prev := &entity.Stats{UserID: "u", StreakCurrent: 3, StreakMax: 3, LastDate: t0}

	tests := []struct {
		name string
		prev *entity.Stats
		now  time.Time
		want string
	}{
		{"first photo", nil, t0, "started"},
		{"seeded zero row", &entity.Stats{UserID: "u", LastDate: t0}, t0, "started"},
		{"inside window", prev, t0.Add(20 * time.Hour), "extended"},
		{"after window", prev, t0.Add(Window + time.Minute), "reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcome(tt.prev, Advance(tt.prev, "u", tt.now)); got != tt.want {
				t.Errorf("outcome = %q, want %q", got, tt.want)
			}
		})
	}
}
