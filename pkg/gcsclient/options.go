package gcsclient

import "time"

type Option func(c *GCSClient)

func ConnAttempts(attempts int) Option {
	return func(c *GCSClient) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *GCSClient) {
		c.connTimeout = timeout
	}
}

// Endpoint points the client at an emulator such as fake-gcs-server.
func Endpoint(endpoint string) Option {
	return func(c *GCSClient) {
		c.endpoint = endpoint
	}
}

func CredentialsFile(path string) Option {
	return func(c *GCSClient) {
		c.credentialsFile = path
	}
}
