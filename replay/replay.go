// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package replay

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrMissingNonce   = errors.New("missing_nonce_or_ts")
	ErrStaleTimestamp = errors.New("stale_ts")
	ErrReplayDetected = errors.New("replay_detected")
)

// Guard rejects resubmission of a nonce within the same local calendar day.
// The timestamp bound keeps the acceptance window short; the day-scoped key
// keeps the nonce set bounded without a background sweeper.
type Guard struct {
	mu     sync.Mutex
	window time.Duration
	loc    *time.Location
	seen   map[string]time.Time // "<day>:<nonce>" -> expiry
}

func NewGuard(window time.Duration, loc *time.Location) *Guard {
	return &Guard{
		window: window,
		loc:    loc,
		seen:   make(map[string]time.Time),
	}
}

// Check admits a (nonce, timestamp) pair or reports why not. tsMillis is the
// client-declared submission time in epoch milliseconds. Steps run in a
// fixed order: missing input, timestamp freshness, amortized sweep,
// duplicate lookup, record.
func (g *Guard) Check(nonce string, tsMillis int64, now time.Time) error {
	if nonce == "" || tsMillis == 0 {
		return ErrMissingNonce
	}

	delta := now.Sub(time.UnixMilli(tsMillis))
	if delta < 0 {
		delta = -delta
	}
	if delta > g.window {
		return ErrStaleTimestamp
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Lazy purge of entries from finished days
	for k, exp := range g.seen {
		if !exp.After(now) {
			delete(g.seen, k)
		}
	}

	local := now.In(g.loc)
	key := local.Format("2006-01-02") + ":" + nonce
	if _, ok := g.seen[key]; ok {
		return ErrReplayDetected
	}

	// A nonce stays burned for the rest of its local day, not just the
	// acceptance window: a replay with a refreshed timestamp must still hit
	// the recorded entry.
	y, m, d := local.Date()
	g.seen[key] = time.Date(y, m, d+1, 0, 0, 0, 0, g.loc)
	return nil
}

// Size reports the number of tracked nonce entries.
func (g *Guard) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}
