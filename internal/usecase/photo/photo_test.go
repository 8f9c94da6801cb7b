package photo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo/mocks"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type fakeStreak struct {
	trackErr error
	tracked  []string
}

func (f *fakeStreak) Track(_ context.Context, userID string) (*entity.Stats, error) {
	if f.trackErr != nil {
		return nil, f.trackErr
	}
	f.tracked = append(f.tracked, userID)

	return &entity.Stats{UserID: userID, StreakCurrent: 1, StreakMax: 1}, nil
}

func (f *fakeStreak) Get(_ context.Context, userID string) (*entity.Stats, error) {
	return &entity.Stats{UserID: userID, StreakCurrent: 3, StreakMax: 7}, nil
}

func setup(t *testing.T, streak *fakeStreak) (*PhotoUseCase, *mocks.MockObjectStore, *mocks.MockPhotoRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)
	photos := mocks.NewMockPhotoRepo(ctrl)
	tx := mocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f func(context.Context) error) error {
			return f(ctx)
		}).AnyTimes()

	uc := New(store, photos, streak, tx, logger.New("error", logger.Output(io.Discard)))

	return uc, store, photos
}

func TestStoragePath(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	got := StoragePath("u1", id, time.Date(2024, 2, 9, 23, 0, 0, 0, time.UTC), ".jpg")
	if got != "photos/u1/20240209/00000000-0000-0000-0000-000000000001.jpg" {
		t.Errorf("path = %s", got)
	}
}

func TestUpload(t *testing.T) {
	streak := &fakeStreak{}
	uc, store, photos := setup(t, streak)
	takenAt := time.Date(2024, 2, 9, 10, 0, 0, 0, time.UTC)

	var key string
	store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "image/jpeg", int64(3)).
		DoAndReturn(func(_ context.Context, k string, _ io.Reader, _ string, _ int64) error {
			key = k
			return nil
		})
	photos.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	photo, err := uc.Upload(context.Background(), "u1", bytes.NewReader([]byte("abc")), ".jpg", "image/jpeg", 3, takenAt)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if photo.StoragePath != key || !strings.HasPrefix(key, "photos/u1/20240209/") {
		t.Errorf("key = %s, photo path = %s", key, photo.StoragePath)
	}
	if len(streak.tracked) != 1 || streak.tracked[0] != "u1" {
		t.Errorf("tracked = %v", streak.tracked)
	}
}

func TestUploadRollsBackObject(t *testing.T) {
	streak := &fakeStreak{trackErr: errors.New("lock timeout")}
	uc, store, photos := setup(t, streak)

	var uploaded string
	store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k string, _ io.Reader, _ string, _ int64) error {
			uploaded = k
			return nil
		})
	photos.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k string) error {
			if k != uploaded {
				t.Errorf("deleted %s, uploaded %s", k, uploaded)
			}
			return nil
		})

	_, err := uc.Upload(context.Background(), "u1", bytes.NewReader(nil), ".png", "image/png", 0, time.Now())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestUploadRequiresUser(t *testing.T) {
	uc, _, _ := setup(t, &fakeStreak{})

	_, err := uc.Upload(context.Background(), "", bytes.NewReader(nil), ".jpg", "image/jpeg", 0, time.Now())
	if !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("err = %v", err)
	}
}

func TestStats(t *testing.T) {
	uc, _, _ := setup(t, &fakeStreak{})

	stats, err := uc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.StreakCurrent != 3 || stats.StreakMax != 7 {
		t.Errorf("stats = %+v", stats)
	}
}
