package s3client

import "time"

type Option func(c *S3Client)

func ConnAttempts(attempts int) Option {
	return func(c *S3Client) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *S3Client) {
		c.connTimeout = timeout
	}
}

func Region(region string) Option {
	return func(c *S3Client) {
		c.region = region
	}
}

// UsePathStyle is required by MinIO and most S3-compatible stores. Defaults to true.
func UsePathStyle(use bool) Option {
	return func(c *S3Client) {
		c.usePathStyle = use
	}
}

// SkipBucketCheck disables the HeadBucket check on connect, for credentials
// that may read and write objects but not inspect the bucket.
func SkipBucketCheck(skip bool) Option {
	return func(c *S3Client) {
		c.skipBucketCheck = skip
	}
}
