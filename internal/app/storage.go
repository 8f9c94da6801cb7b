package app

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Highlight-Generator/config"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo/persistent"
	"github.com/andreyxaxa/Highlight-Generator/pkg/gcsclient"
	"github.com/andreyxaxa/Highlight-Generator/pkg/s3client"
)

// newObjectStore connects the configured backend. The returned func releases it.
func newObjectStore(ctx context.Context, cfg *config.Config) (repo.ObjectStore, func(), error) {
	switch cfg.Storage.Backend {
	case "gcs":
		var opts []gcsclient.Option
		if cfg.GCS.Endpoint != "" {
			opts = append(opts, gcsclient.Endpoint(cfg.GCS.Endpoint))
		}
		if cfg.GCS.CredentialsFile != "" {
			opts = append(opts, gcsclient.CredentialsFile(cfg.GCS.CredentialsFile))
		}

		c, err := gcsclient.New(ctx, cfg.Storage.Bucket, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("gcsclient.New: %w", err)
		}

		return persistent.NewGCSObjectStore(c), func() { _ = c.Close() }, nil
	default:
		s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
		defer s3Cancel()

		c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.Storage.Bucket,
			s3client.Region(cfg.S3.Region),
			s3client.UsePathStyle(cfg.S3.UsePathStyle),
			s3client.SkipBucketCheck(cfg.S3.SkipBucketCheck),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("s3client.New: %w", err)
		}

		return persistent.NewS3ObjectStore(c), func() {}, nil
	}
}
