package persistent

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase/streak"
	"github.com/andreyxaxa/Highlight-Generator/migrations"
	"github.com/andreyxaxa/Highlight-Generator/pkg/postgres"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPG starts a disposable postgres, applies migrations and returns a pool.
// Runs only with TEST_INTEGRATION set.
func setupPG(t *testing.T) *postgres.Postgres {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("set TEST_INTEGRATION=1 to run integration tests")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		tcpostgres.WithDatabase("highlights_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := migrations.Up(ctx, url); err != nil {
		t.Fatalf("migrations.Up: %v", err)
	}

	pg, err := postgres.New(url, postgres.MaxPoolSize(4))
	if err != nil {
		t.Fatalf("postgres.New: %v", err)
	}
	t.Cleanup(pg.Close)

	return pg
}

func TestRepositories_Integration(t *testing.T) {
	pg := setupPG(t)

	t.Run("photos", func(t *testing.T) { testPhotoRepo(t, pg) })
	t.Run("highlights", func(t *testing.T) { testHighlightRepo(t, pg) })
	t.Run("stats", func(t *testing.T) { testStatsRepo(t, pg) })
	t.Run("stats concurrent first uploads", func(t *testing.T) { testStatsConcurrentFirstUploads(t, pg) })
	t.Run("outbox", func(t *testing.T) { testOutboxRepo(t, pg) })
}

func testPhotoRepo(t *testing.T, pg *postgres.Postgres) {
	ctx := context.Background()
	repo := NewPhotoRepo(pg)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	add := func(user string, takenAt time.Time) uuid.UUID {
		id := uuid.New()
		err := repo.Create(ctx, &entity.Photo{
			ID:          id,
			UserID:      user,
			TakenAt:     takenAt,
			StoragePath: "photos/" + user + "/" + id.String() + ".jpg",
			CreatedAt:   time.Now(),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		return id
	}

	// inserted out of order on purpose
	late := add("alice", base.Add(48*time.Hour))
	early := add("alice", base)
	bob := add("bob", base.Add(time.Hour))
	june := add("alice", base.AddDate(0, 1, 0))

	month, err := repo.ListTakenBetween(ctx, base, base.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("ListTakenBetween: %v", err)
	}
	wantMonth := []uuid.UUID{early, bob, late}
	if len(month) != len(wantMonth) {
		t.Fatalf("ListTakenBetween returned %d photos, want %d", len(month), len(wantMonth))
	}
	for i, p := range month {
		if p.ID != wantMonth[i] {
			t.Errorf("ListTakenBetween[%d] = %s, want %s", i, p.ID, wantMonth[i])
		}
	}

	// end bound is inclusive for a single user
	own, err := repo.ListByUserInRange(ctx, "alice", base, base.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("ListByUserInRange: %v", err)
	}
	wantOwn := []uuid.UUID{early, late, june}
	if len(own) != len(wantOwn) {
		t.Fatalf("ListByUserInRange returned %d photos, want %d", len(own), len(wantOwn))
	}
	for i, p := range own {
		if p.ID != wantOwn[i] {
			t.Errorf("ListByUserInRange[%d] = %s, want %s", i, p.ID, wantOwn[i])
		}
		if p.UserID != "alice" {
			t.Errorf("ListByUserInRange leaked photo of %q", p.UserID)
		}
	}
}

func testHighlightRepo(t *testing.T, pg *postgres.Postgres) {
	ctx := context.Background()
	repo := NewHighlightRepo(pg)

	period := "202405"
	first := &entity.Highlight{
		ID:        uuid.New(),
		UserID:    "carol",
		Kind:      entity.KindPeriodic,
		Status:    entity.HighlightProcessing,
		Period:    &period,
		CreatedAt: time.Now(),
	}

	created, err := repo.Create(ctx, first)
	if err != nil || !created {
		t.Fatalf("Create = (%v, %v), want (true, nil)", created, err)
	}

	dup := *first
	dup.ID = uuid.New()
	created, err = repo.Create(ctx, &dup)
	if err != nil {
		t.Fatalf("Create duplicate: %v", err)
	}
	if created {
		t.Error("Create duplicate periodic highlight reported created")
	}

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)
	for i := 0; i < 2; i++ {
		custom := &entity.Highlight{
			ID:        uuid.New(),
			UserID:    "carol",
			Kind:      entity.KindCustom,
			Status:    entity.HighlightProcessing,
			StartDate: &start,
			EndDate:   &end,
			CreatedAt: time.Now(),
		}
		created, err = repo.Create(ctx, custom)
		if err != nil || !created {
			t.Fatalf("Create custom #%d = (%v, %v), want (true, nil)", i, created, err)
		}
	}

	if err := repo.MarkCompleted(ctx, first.ID, "highlights/carol/202405.mp4"); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != entity.HighlightCompleted {
		t.Errorf("status = %s, want %s", got.Status, entity.HighlightCompleted)
	}
	if got.OutputPath == nil || *got.OutputPath != "highlights/carol/202405.mp4" {
		t.Errorf("output path = %v", got.OutputPath)
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not set")
	}
	if got.Period == nil || *got.Period != period {
		t.Errorf("period = %v, want %s", got.Period, period)
	}

	if err := repo.MarkFailed(ctx, first.ID, "encoding failed"); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}
	got, err = repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != entity.HighlightFailed || got.FailureReason == nil || *got.FailureReason != "encoding failed" {
		t.Errorf("after MarkFailed got status %s reason %v", got.Status, got.FailureReason)
	}

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, errs.ErrRecordNotFound) {
		t.Errorf("GetByID unknown = %v, want ErrRecordNotFound", err)
	}
	if err := repo.MarkCompleted(ctx, uuid.New(), "x.mp4"); !errors.Is(err, errs.ErrRecordNotFound) {
		t.Errorf("MarkCompleted unknown = %v, want ErrRecordNotFound", err)
	}
}

func testStatsRepo(t *testing.T, pg *postgres.Postgres) {
	ctx := context.Background()
	repo := NewStatsRepo(pg)

	errRollback := errors.New("rollback")
	err := pg.WithinTransaction(ctx, func(ctx context.Context) error {
		seeded, err := repo.GetForUpdate(ctx, "dave")
		if err != nil {
			return err
		}
		if seeded.StreakCurrent != 0 || seeded.StreakMax != 0 {
			t.Errorf("seeded row = %+v, want zero streak", seeded)
		}
		return errRollback
	})
	if !errors.Is(err, errRollback) {
		t.Fatalf("WithinTransaction = %v", err)
	}

	if _, err := repo.Get(ctx, "dave"); !errors.Is(err, errs.ErrRecordNotFound) {
		t.Fatalf("Get after rollback = %v, want ErrRecordNotFound", err)
	}

	last := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.Save(ctx, &entity.Stats{UserID: "dave", StreakCurrent: 1, StreakMax: 1, LastDate: last}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, &entity.Stats{UserID: "dave", StreakCurrent: 2, StreakMax: 2, LastDate: last.Add(time.Hour)}); err != nil {
		t.Fatalf("Save upsert: %v", err)
	}

	got, err := repo.Get(ctx, "dave")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StreakCurrent != 2 || got.StreakMax != 2 || !got.LastDate.Equal(last.Add(time.Hour)) {
		t.Errorf("stats = %+v", got)
	}
}

func testStatsConcurrentFirstUploads(t *testing.T, pg *postgres.Postgres) {
	ctx := context.Background()
	tracker := streak.New(NewStatsRepo(pg), time.Now)

	var wg sync.WaitGroup
	errCh := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- pg.WithinTransaction(ctx, func(ctx context.Context) error {
				_, err := tracker.Track(ctx, "frank")
				return err
			})
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			t.Fatalf("Track: %v", err)
		}
	}

	got, err := NewStatsRepo(pg).Get(ctx, "frank")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StreakCurrent != 2 || got.StreakMax != 2 {
		t.Errorf("two first uploads gave %d/%d, want 2/2", got.StreakCurrent, got.StreakMax)
	}
}

func testOutboxRepo(t *testing.T, pg *postgres.Postgres) {
	ctx := context.Background()
	highlights := NewHighlightRepo(pg)
	repo := NewOutboxRepo(pg)

	newEvent := func(createdAt time.Time) *entity.OutboxEvent {
		h := &entity.Highlight{
			ID:        uuid.New(),
			UserID:    "erin",
			Kind:      entity.KindCustom,
			Status:    entity.HighlightProcessing,
			CreatedAt: createdAt,
		}
		if _, err := highlights.Create(ctx, h); err != nil {
			t.Fatalf("highlights.Create: %v", err)
		}
		e := &entity.OutboxEvent{
			ID:          uuid.New(),
			AggregateID: h.ID,
			Payload:     []byte(`{"highlight_id":"` + h.ID.String() + `"}`),
			Status:      entity.Pending,
			CreatedAt:   createdAt,
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
		return e
	}

	old := newEvent(time.Now().Add(-240 * time.Hour))
	fresh := newEvent(time.Now())

	var claimed []*entity.OutboxEvent
	err := pg.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		claimed, err = repo.GetPendingEvents(ctx, 10, 3)
		if err != nil {
			return err
		}
		ids := make(uuid.UUIDs, 0, len(claimed))
		for _, e := range claimed {
			ids = append(ids, e.ID)
		}
		return repo.MarkAsProcessingBatch(ctx, ids)
	})
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if len(claimed) != 2 || claimed[0].ID != old.ID || claimed[1].ID != fresh.ID {
		t.Fatalf("claimed %d events in wrong order", len(claimed))
	}

	pending, err := repo.GetPendingEvents(ctx, 10, 3)
	if err != nil {
		t.Fatalf("GetPendingEvents: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("claimed events still pending: %d", len(pending))
	}

	if err := repo.MarkAsProcessedBatch(ctx, uuid.UUIDs{old.ID}); err != nil {
		t.Fatalf("MarkAsProcessedBatch: %v", err)
	}

	// fresh fails until it runs out of retries
	for i := 0; i < 3; i++ {
		if err := repo.IncrementRetryCountBatch(ctx, uuid.UUIDs{fresh.ID}); err != nil {
			t.Fatalf("IncrementRetryCountBatch: %v", err)
		}
	}
	pending, err = repo.GetPendingEvents(ctx, 10, 3)
	if err != nil {
		t.Fatalf("GetPendingEvents: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("exhausted event returned as pending")
	}
	if err := repo.MarkMaxRetriesAsFailed(ctx, 3); err != nil {
		t.Fatalf("MarkMaxRetriesAsFailed: %v", err)
	}

	deleted, err := repo.DeleteOldProcessedAndFailed(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOldProcessedAndFailed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted %d events, want 1 (only the old processed one)", deleted)
	}

	deleted, err = repo.DeleteOldProcessedAndFailed(ctx, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("DeleteOldProcessedAndFailed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted %d events, want the failed one", deleted)
	}

	if err := repo.MarkAsProcessedBatch(ctx, uuid.UUIDs{uuid.New()}); !errors.Is(err, errs.ErrRecordNotFound) {
		t.Errorf("MarkAsProcessedBatch unknown = %v, want ErrRecordNotFound", err)
	}
}
