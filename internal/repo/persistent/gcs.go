package persistent

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/andreyxaxa/Highlight-Generator/pkg/gcsclient"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
)

type GCSObjectStore struct {
	*gcsclient.GCSClient
}

func NewGCSObjectStore(c *gcsclient.GCSClient) *GCSObjectStore {
	return &GCSObjectStore{c}
}

func (r *GCSObjectStore) Upload(ctx context.Context, key string, data io.Reader, contentType string, _ int64) error {
	w := r.Client.Bucket(r.Bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, data); err != nil {
		_ = w.Close()
		return fmt.Errorf("GCSObjectStore - Upload - io.Copy: %w", err)
	}

	// the object is committed on Close
	if err := w.Close(); err != nil {
		return fmt.Errorf("GCSObjectStore - Upload - w.Close: %w", err)
	}

	return nil
}

func (r *GCSObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := r.Client.Bucket(r.Bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("GCSObjectStore - Download - %s: %w", key, errs.ErrAssetNotFound)
		}
		return nil, fmt.Errorf("GCSObjectStore - Download - NewReader: %w", err)
	}

	return rc, nil
}

func (r *GCSObjectStore) Delete(ctx context.Context, key string) error {
	err := r.Client.Bucket(r.Bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("GCSObjectStore - Delete: %w", err)
	}

	return nil
}
