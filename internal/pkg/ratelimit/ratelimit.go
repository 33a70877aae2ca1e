package ratelimit

import (
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

// Limiter is an in-memory sliding-window rate limiter keyed by caller
// identifier. It is constructed and injected rather than kept as package
// state, so tests and multi-instance deployments can swap it out.
type Limiter struct {
	mu          sync.Mutex
	window      time.Duration
	max         int
	hits        map[string][]time.Time
	lastCleanup time.Time
	now         func() time.Time
}

// New creates a limiter allowing max calls per identifier within window.
func New(window time.Duration, max int) *Limiter {
	return &Limiter{
		window:      window,
		max:         max,
		hits:        make(map[string][]time.Time),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

// Allow records one call for identifier and reports whether it is within
// quota. Calls outside the window are discarded as a side effect.
func (l *Limiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) > cleanupInterval {
		l.cleanupLocked(now)
		l.lastCleanup = now
	}

	valid := l.trim(l.hits[identifier], now)
	if len(valid) >= l.max {
		l.hits[identifier] = valid
		return false
	}

	l.hits[identifier] = append(valid, now)
	return true
}

func (l *Limiter) trim(times []time.Time, now time.Time) []time.Time {
	valid := times[:0]
	for _, t := range times {
		if now.Sub(t) < l.window {
			valid = append(valid, t)
		}
	}
	return valid
}

// cleanupLocked drops identifiers whose entries all expired, bounding memory
// for one-shot callers.
func (l *Limiter) cleanupLocked(now time.Time) {
	for id, times := range l.hits {
		valid := l.trim(times, now)
		if len(valid) == 0 {
			delete(l.hits, id)
		} else {
			l.hits[id] = valid
		}
	}
}
