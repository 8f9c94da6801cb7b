package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles actions per key.
type Limiter interface {
	Allow(key string) bool
}

// InMemoryLimiter keeps one token bucket per key.
type InMemoryLimiter struct {
	mu    sync.Mutex
	users map[string]*rate.Limiter
	r     rate.Limit
	b     int
}

// NewInMemoryLimiter allows requests per period with the given burst.
// NewInMemoryLimiter(3, time.Hour, 2) -> one request every 20 minutes, two in a row.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	limit := rate.Inf
	if requests > 0 {
		limit = rate.Every(per / time.Duration(requests))
	}

	return &InMemoryLimiter{
		users: make(map[string]*rate.Limiter),
		r:     limit,
		b:     burst,
	}
}

func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.users[key]
	if !ok {
		limiter = rate.NewLimiter(l.r, l.b)
		l.users[key] = limiter
	}

	return limiter.Allow()
}
