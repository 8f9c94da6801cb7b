package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andreyxaxa/Highlight-Generator/internal/repo"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/andreyxaxa/Highlight-Generator/pkg/retry"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
)

// Transfer moves assets between the object store and local scratch space.
type Transfer struct {
	store  repo.ObjectStore
	logger logger.Interface
	retry  retry.Config
}

func New(store repo.ObjectStore, l logger.Interface, cfg retry.Config) *Transfer {
	return &Transfer{
		store:  store,
		logger: l,
		retry:  cfg,
	}
}

// Fetch downloads objectPath to localPath. A missing object is reported at once
// with errs.ErrAssetNotFound, everything else is retried.
func (t *Transfer) Fetch(ctx context.Context, objectPath, localPath string) error {
	err := os.MkdirAll(filepath.Dir(localPath), 0o755)
	if err != nil {
		return fmt.Errorf("Transfer - Fetch - os.MkdirAll: %w", err)
	}

	err = retry.Do(ctx, t.logger, "fetch "+objectPath, func() error {
		err := t.download(ctx, objectPath, localPath)
		if errors.Is(err, errs.ErrAssetNotFound) {
			return retry.Permanent(err)
		}

		return err
	}, t.retry)
	if err != nil {
		if errors.Is(err, errs.ErrAssetNotFound) {
			return fmt.Errorf("Transfer - Fetch - %s: %w", objectPath, err)
		}

		return fmt.Errorf("Transfer - Fetch - %s: %w: %w", objectPath, errs.ErrTransferFailed, err)
	}

	return nil
}

func (t *Transfer) download(ctx context.Context, objectPath, localPath string) error {
	body, err := t.store.Download(ctx, objectPath)
	if err != nil {
		return err
	}
	defer body.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}

	_, err = io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("io.Copy: %w", err)
	}

	return nil
}

// Publish uploads localPath to objectPath, overwriting any existing object.
func (t *Transfer) Publish(ctx context.Context, localPath, objectPath, contentType string) error {
	err := retry.Do(ctx, t.logger, "publish "+objectPath, func() error {
		f, err := os.Open(localPath)
		if err != nil {
			return retry.Permanent(fmt.Errorf("os.Open: %w", err))
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return retry.Permanent(fmt.Errorf("f.Stat: %w", err))
		}

		return t.store.Upload(ctx, objectPath, f, contentType, info.Size())
	}, t.retry)
	if err != nil {
		return fmt.Errorf("Transfer - Publish - %s: %w: %w", objectPath, errs.ErrTransferFailed, err)
	}

	return nil
}
