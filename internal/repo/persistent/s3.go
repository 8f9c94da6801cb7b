package persistent

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andreyxaxa/Highlight-Generator/pkg/s3client"
	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3ObjectStore struct {
	*s3client.S3Client
}

func NewS3ObjectStore(s3c *s3client.S3Client) *S3ObjectStore {
	return &S3ObjectStore{s3c}
}

func (r *S3ObjectStore) Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.Bucket),
		Key:           aws.String(key),
		Body:          data,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("S3ObjectStore - Upload - r.Client.PutObject: %w", err)
	}

	return nil
}

func (r *S3ObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("S3ObjectStore - Download - %s: %w", key, errs.ErrAssetNotFound)
		}
		return nil, fmt.Errorf("S3ObjectStore - Download - r.Client.GetObject: %w", err)
	}

	return result.Body, nil
}

func (r *S3ObjectStore) Delete(ctx context.Context, key string) error {
	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("S3ObjectStore - Delete - r.Client.DeleteObject: %w", err)
	}

	return nil
}
