package highlight

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/andreyxaxa/Highlight-Generator/pkg/ratelimit"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/google/uuid"
)

const (
	_defaultMinPhotos = 5
	_defaultMaxPhotos = 50
	_defaultMaxRange  = 90 * 24 * time.Hour
)

// HighlightUseCase decides which highlights to generate and dispatches
// generation requests through the outbox.
type HighlightUseCase struct {
	photos     repo.PhotoRepo
	highlights repo.HighlightRepo
	outbox     repo.OutboxRepo
	transactor repo.Transactor
	store      repo.ObjectStore
	logger     logger.Interface

	location  *time.Location
	minPhotos int
	maxPhotos int
	maxRange  time.Duration
	limiter   ratelimit.Limiter
	clock     func() time.Time
}

func New(
	photos repo.PhotoRepo,
	highlights repo.HighlightRepo,
	outbox repo.OutboxRepo,
	transactor repo.Transactor,
	store repo.ObjectStore,
	l logger.Interface,
	opts ...Option,
) *HighlightUseCase {
	uc := &HighlightUseCase{
		photos:     photos,
		highlights: highlights,
		outbox:     outbox,
		transactor: transactor,
		store:      store,
		logger:     l,
		location:   time.UTC,
		minPhotos:  _defaultMinPhotos,
		maxPhotos:  _defaultMaxPhotos,
		maxRange:   _defaultMaxRange,
		limiter:    ratelimit.NewInMemoryLimiter(0, time.Hour, 1),
		clock:      time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Get returns a highlight owned by userID.
func (uc *HighlightUseCase) Get(ctx context.Context, userID string, id uuid.UUID) (*entity.Highlight, error) {
	if userID == "" {
		return nil, fmt.Errorf("HighlightUseCase - Get: %w", errs.ErrUnauthenticated)
	}

	h, err := uc.highlights.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("HighlightUseCase - Get - uc.highlights.GetByID: %w", err)
	}

	if h.UserID != userID {
		return nil, fmt.Errorf("HighlightUseCase - Get: %w", errs.ErrForbidden)
	}

	return h, nil
}

// OpenVideo streams the published video of a completed highlight.
func (uc *HighlightUseCase) OpenVideo(ctx context.Context, userID string, id uuid.UUID) (io.ReadCloser, error) {
	h, err := uc.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("HighlightUseCase - OpenVideo: %w", err)
	}

	if h.Status != entity.HighlightCompleted || h.OutputPath == nil {
		return nil, fmt.Errorf("HighlightUseCase - OpenVideo - %s is %s: %w", id, h.Status, errs.ErrHighlightNotReady)
	}

	body, err := uc.store.Download(ctx, *h.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("HighlightUseCase - OpenVideo - uc.store.Download: %w", err)
	}

	return body, nil
}
