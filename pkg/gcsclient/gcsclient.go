package gcsclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const (
	_defaultConnAttempts = 5
	_defaultConnTimeout  = time.Second
)

type GCSClient struct {
	connAttempts    int
	connTimeout     time.Duration
	endpoint        string
	credentialsFile string

	Bucket string
	Client *storage.Client
}

// New creates a storage client and checks that bucket exists. With an endpoint set
// (emulator), authentication is disabled.
func New(ctx context.Context, bucket string, opts ...Option) (*GCSClient, error) {
	c := &GCSClient{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		Bucket:       bucket,
	}

	for _, opt := range opts {
		opt(c)
	}

	var clientOpts []option.ClientOption
	switch {
	case c.endpoint != "":
		clientOpts = append(clientOpts, option.WithEndpoint(c.endpoint), option.WithoutAuthentication())
	case c.credentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(c.credentialsFile))
	}
	clientOpts = append(clientOpts, option.WithScopes(storage.ScopeReadWrite))

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("GCSClient - New - storage.NewClient: %w", err)
	}
	c.Client = client

	for c.connAttempts > 0 {
		_, err = c.Client.Bucket(c.Bucket).Attrs(ctx)
		if err == nil {
			break
		}

		log.Printf("GCS is trying to connect, attempts left: %d", c.connAttempts)

		time.Sleep(c.connTimeout)

		c.connAttempts--
	}

	if err != nil {
		_ = c.Client.Close()

		return nil, fmt.Errorf("GCSClient - New - connAttempts == 0: %w", err)
	}

	return c, nil
}

func (c *GCSClient) Close() error {
	return c.Client.Close()
}
