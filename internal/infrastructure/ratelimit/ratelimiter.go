// Package ratelimit throttles login attempts so credential stuffing
// gets expensive without leaking which usernames exist.
package ratelimit

import "context"

type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// DefaultLoginConfig caps failed and successful login attempts alike.
var DefaultLoginConfig = Config{
	RequestsPerMinute: 10,
	RequestsPerHour:   60,
}

type Limiter interface {
	Allow(ctx context.Context, key string, config Config) (bool, error)
	Reset(ctx context.Context, key string) error
}

// NoopLimiter is used when redis is disabled in the configuration.
type NoopLimiter struct{}

func NewNoopLimiter() *NoopLimiter {
	return &NoopLimiter{}
}

func (l *NoopLimiter) Allow(ctx context.Context, key string, config Config) (bool, error) {
	return true, nil
}

func (l *NoopLimiter) Reset(ctx context.Context, key string) error {
	return nil
}
