package ratelimit

import "time"

// Limits bounds request rates per key. A zero limit disables that window.
// The turnstile endpoint keys by device ID so one misbehaving gateway
// cannot starve the decision engine.
type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(key string, limits Limits) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
