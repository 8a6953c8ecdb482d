package guard

import (
	"sync"
	"time"
)

// DefaultWindow is the fixed rate-limit window shared by every intake
// endpoint.
const DefaultWindow = 60 * time.Second

type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window, per-identifier request counter. It is purely
// in-process: counts reset on restart and are not shared across instances,
// so this is abuse deterrence, not a correctness guarantee. A shared
// TTL-backed counter store is the upgrade path when that stops being enough.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]bucket
	max     int
	window  time.Duration
	now     func() time.Time

	sweepEvery int
	sinceSweep int
}

// LimiterOption customises a Limiter.
type LimiterOption func(*Limiter)

// WithWindow overrides the fixed window length.
func WithWindow(d time.Duration) LimiterOption {
	return func(l *Limiter) {
		if d > 0 {
			l.window = d
		}
	}
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) LimiterOption {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLimiter returns a limiter allowing max requests per identifier per
// window. A non-positive max disables limiting.
func NewLimiter(max int, opts ...LimiterOption) *Limiter {
	l := &Limiter{
		buckets:    make(map[string]bucket),
		max:        max,
		window:     DefaultWindow,
		now:        time.Now,
		sweepEvery: 256,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Allow records one request for id. It returns (0, true) when the request is
// within budget, or (retryAfter, false) when the window maximum is exceeded.
// retryAfter is the whole seconds remaining until the window resets, never
// below 1.
func (l *Limiter) Allow(id string) (retryAfter int, ok bool) {
	if l == nil || l.max <= 0 {
		return 0, true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, exists := l.buckets[id]
	if !exists || now.After(b.resetAt) {
		l.buckets[id] = bucket{count: 1, resetAt: now.Add(l.window)}
		l.maybeSweep(now)
		return 0, true
	}

	b.count++
	l.buckets[id] = b
	if b.count > l.max {
		secs := int(b.resetAt.Sub(now).Seconds())
		// Round up so callers never retry inside the same window.
		if b.resetAt.Sub(now)%time.Second != 0 {
			secs++
		}
		if secs < 1 {
			secs = 1
		}
		return secs, false
	}
	return 0, true
}

// maybeSweep drops expired buckets every sweepEvery inserts so the map stays
// bounded by active identifiers rather than process lifetime. Caller holds mu.
func (l *Limiter) maybeSweep(now time.Time) {
	l.sinceSweep++
	if l.sinceSweep < l.sweepEvery {
		return
	}
	l.sinceSweep = 0
	for id, b := range l.buckets {
		if now.After(b.resetAt) {
			delete(l.buckets, id)
		}
	}
}

// Len reports the number of tracked identifiers.
func (l *Limiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
