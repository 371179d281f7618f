// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratelimit

import (
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	ErrIPBurst      = errors.New("rate_limited_ip")
	ErrIPDaily      = errors.New("daily_quota_ip")
	ErrTooSoon      = errors.New("vote_too_soon")
	ErrSessionDaily = errors.New("daily_quota_session")
)

const (
	ipWindow = 10 * time.Minute

	// Buckets for addresses and sessions idle past this are evictable; the
	// longest-lived counter in a bucket is the calendar-day one.
	bucketTTL  = 24 * time.Hour
	maxBuckets = 1 << 16
)

// Limits holds the four admission caps. Zero values are not usable; build
// one from configuration.
type Limits struct {
	IPMax10Min         int
	IPMaxDay           int
	SessionMinInterval time.Duration
	SessionMaxDay      int
}

type ipBucket struct {
	windowStart time.Time
	count10m    int
	day         string
	countDay    int
}

type sessionBucket struct {
	lastVote time.Time
	day      string
	countDay int
}

// Limiter enforces per-IP and per-session vote quotas. Buckets live in
// size- and TTL-bounded caches rather than a bare map so that one-off
// addresses do not accumulate forever. A single mutex covers every check:
// two concurrent requests from the same key must observe each other's
// counter updates, or the caps can be bypassed.
type Limiter struct {
	mu       sync.Mutex
	limits   Limits
	loc      *time.Location
	ips      *expirable.LRU[string, *ipBucket]
	sessions *expirable.LRU[string, *sessionBucket]
}

func New(limits Limits, loc *time.Location) *Limiter {
	return newLimiter(limits, loc, bucketTTL)
}

func newLimiter(limits Limits, loc *time.Location, ttl time.Duration) *Limiter {
	return &Limiter{
		limits:   limits,
		loc:      loc,
		ips:      expirable.NewLRU[string, *ipBucket](maxBuckets, nil, ttl),
		sessions: expirable.NewLRU[string, *sessionBucket](maxBuckets, nil, ttl),
	}
}

// Admit checks all four quotas in a fixed order and reports the first
// violated one: IP burst window, IP daily cap, session spacing, session
// daily cap.
//
// The 10-minute window is reset-on-expiry, not sliding: a burst straddling
// the boundary can admit up to twice the nominal cap. That semantic is
// deliberate and pinned by tests.
func (l *Limiter) Admit(ip, sessionID string, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := now.In(l.loc).Format("2006-01-02")

	// IP counters advance on every attempt, including rejected ones, so a
	// client cannot probe the limit for free.
	b, ok := l.ips.Get(ip)
	if !ok {
		b = &ipBucket{windowStart: now, day: day}
		l.ips.Add(ip, b)
	}
	if now.Sub(b.windowStart) > ipWindow {
		b.windowStart = now
		b.count10m = 0
	}
	if b.day != day {
		b.day = day
		b.countDay = 0
	}
	b.count10m++
	b.countDay++
	// Re-Add to refresh the cache expiry: the TTL stamps at insert time and
	// Get does not renew it, so without this an active bucket would be
	// evicted bucketTTL after its first request and come back zeroed.
	l.ips.Add(ip, b)

	if b.count10m > l.limits.IPMax10Min {
		return ErrIPBurst
	}
	if b.countDay > l.limits.IPMaxDay {
		return ErrIPDaily
	}

	// The session bucket only advances once its own checks pass, so a
	// rejected attempt does not push the next allowed vote further out.
	s, ok := l.sessions.Get(sessionID)
	if !ok {
		s = &sessionBucket{day: day}
		l.sessions.Add(sessionID, s)
	}
	if s.day != day {
		s.day = day
		s.countDay = 0
	}
	// Same expiry refresh as the IP bucket, and on rejection paths too: a
	// session being turned away is still active and must keep its state.
	l.sessions.Add(sessionID, s)
	if !s.lastVote.IsZero() && now.Sub(s.lastVote) < l.limits.SessionMinInterval {
		return ErrTooSoon
	}
	if s.countDay >= l.limits.SessionMaxDay {
		return ErrSessionDaily
	}
	s.lastVote = now
	s.countDay++

	return nil
}
