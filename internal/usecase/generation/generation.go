package generation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/dto"
	"github.com/andreyxaxa/Highlight-Generator/internal/entity"
	"github.com/andreyxaxa/Highlight-Generator/internal/infrastructure"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	_defaultFetchParallelism = 4
	_videoContentType        = "video/mp4"
	_outputName              = "output.mp4"
)

// Worker renders one highlight video per request. Requests for different
// highlights run concurrently; each owns its scratch directory.
type Worker struct {
	transfer   usecase.AssetTransfer
	composer   infrastructure.MediaComposer
	processor  infrastructure.PhotoProcessor
	highlights repo.HighlightRepo
	logger     logger.Interface

	scratchRoot      string
	fetchParallelism int
	normalize        bool

	inflight sync.Map
}

func New(
	transfer usecase.AssetTransfer,
	composer infrastructure.MediaComposer,
	processor infrastructure.PhotoProcessor,
	highlights repo.HighlightRepo,
	l logger.Interface,
	opts ...Option,
) *Worker {
	w := &Worker{
		transfer:         transfer,
		composer:         composer,
		processor:        processor,
		highlights:       highlights,
		logger:           l,
		scratchRoot:      os.TempDir(),
		fetchParallelism: _defaultFetchParallelism,
		normalize:        true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Generate fetches the photos, composes the video, publishes it and records the
// outcome on the highlight. It returns the published object path.
func (w *Worker) Generate(ctx context.Context, req dto.GenerationRequest) (string, error) {
	err := req.Validate()
	if err != nil {
		return "", fmt.Errorf("Worker - Generate - req.Validate: %w", err)
	}

	tracked := true
	h, err := w.highlights.GetByID(ctx, req.HighlightID)
	switch {
	case errors.Is(err, errs.ErrRecordNotFound):
		// direct intake calls may reference highlights this store never saw
		tracked = false
		w.logger.Warn("highlight %s has no record, status will not be updated", req.HighlightID)
	case err != nil:
		return "", fmt.Errorf("Worker - Generate - w.highlights.GetByID: %w", err)
	case h.Status == entity.HighlightCompleted && h.OutputPath != nil:
		return *h.OutputPath, nil
	}

	if _, busy := w.inflight.LoadOrStore(req.HighlightID, struct{}{}); busy {
		return "", fmt.Errorf("Worker - Generate - %s: %w", req.HighlightID, errs.ErrGenerationInProgress)
	}
	defer w.inflight.Delete(req.HighlightID)

	started := time.Now()
	path, err := w.generate(ctx, req)

	result := resultSuccess
	if err != nil {
		result = resultFailure
	}
	generationsTotal.WithLabelValues(string(req.Kind), result).Inc()
	generationDuration.WithLabelValues(string(req.Kind)).Observe(time.Since(started).Seconds())

	if tracked {
		w.record(ctx, req.HighlightID, path, err)
	}

	if err != nil {
		return "", fmt.Errorf("Worker - Generate: %w", err)
	}

	w.logger.Info("highlight %s generated: %s (%d photos, %s)", req.HighlightID, path, len(req.Photos),
		time.Since(started).Round(time.Millisecond))

	return path, nil
}

func (w *Worker) generate(ctx context.Context, req dto.GenerationRequest) (string, error) {
	scratch := filepath.Join(w.scratchRoot, req.HighlightID.String())

	// a crashed run may have left files behind
	err := os.RemoveAll(scratch)
	if err != nil {
		return "", fmt.Errorf("os.RemoveAll: %w", err)
	}
	err = os.MkdirAll(scratch, 0o755)
	if err != nil {
		return "", fmt.Errorf("os.MkdirAll: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			w.logger.Error(err, "Worker - generate - os.RemoveAll")
		}
	}()

	inputs, err := w.fetchAll(ctx, scratch, req.Photos)
	if err != nil {
		return "", err
	}

	output := filepath.Join(scratch, _outputName)
	err = w.composer.Compose(ctx, inputs, output, req.Kind.RenderMode())
	if err != nil {
		return "", fmt.Errorf("w.composer.Compose: %w", err)
	}

	dst := req.OutputPath()
	err = w.transfer.Publish(ctx, output, dst, _videoContentType)
	if err != nil {
		return "", fmt.Errorf("w.transfer.Publish: %w", err)
	}

	return dst, nil
}

// fetchAll downloads photos into <scratch>/<i>.jpg. The returned slice keeps
// the request order regardless of completion order.
func (w *Worker) fetchAll(ctx context.Context, scratch string, photos []string) ([]string, error) {
	inputs := make([]string, len(photos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.fetchParallelism)

	for i, photo := range photos {
		local := filepath.Join(scratch, strconv.Itoa(i)+".jpg")
		inputs[i] = local

		g.Go(func() error {
			err := w.transfer.Fetch(gctx, photo, local)
			if err != nil {
				return fmt.Errorf("w.transfer.Fetch: %w", err)
			}

			if !w.normalize {
				return nil
			}

			err = w.processor.Normalize(gctx, local)
			if err != nil {
				return fmt.Errorf("w.processor.Normalize %s: %w", photo, err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return inputs, nil
}

func (w *Worker) record(ctx context.Context, id uuid.UUID, path string, genErr error) {
	ctx = context.WithoutCancel(ctx)

	if genErr == nil {
		err := w.highlights.MarkCompleted(ctx, id, path)
		if err != nil {
			w.logger.Error(err, "Worker - record - w.highlights.MarkCompleted")
		}

		return
	}

	err := w.highlights.MarkFailed(ctx, id, genErr.Error())
	if err != nil {
		w.logger.Error(err, "Worker - record - w.highlights.MarkFailed")
	}
}
