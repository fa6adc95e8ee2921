// Package ratelimit provides rate limiting for login attempts.
package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds rate limit configuration.
type Config struct {
	MaxAttempts    int           // Max failed attempts per username before lockout (default: 5)
	Lockout        time.Duration // Lockout duration after max attempts (default: 5m)
	MaxIPPerWindow int           // Max attempts per IP per window (default: 30)
	Window         time.Duration // Counting window (default: 1h)

	// Clock for testing (nil uses real time)
	Clock Clock
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxAttempts:    5,
		Lockout:        5 * time.Minute,
		MaxIPPerWindow: 30,
		Window:         time.Hour,
	}
}

// LimitResult contains the result of a rate limit check.
type LimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     string // For logging
}

// entry tracks request counts and timestamps.
type entry struct {
	count    int
	firstAt  time.Time // First attempt in window
	lockedAt time.Time // When lockout started (zero if not locked)
}

// Limiter tracks failed login attempts per username and per source IP.
type Limiter struct {
	config *Config
	clock  Clock
	mu     sync.Mutex
	// Keyed by hash of username or IP
	byUser map[string]*entry
	byIP   map[string]*entry
}

// New creates a Limiter with the given config; nil gets DefaultConfig.
func New(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	clock := config.Clock
	if clock == nil {
		clock = realClock{}
	}
	return &Limiter{
		config: config,
		clock:  clock,
		byUser: make(map[string]*entry),
		byIP:   make(map[string]*entry),
	}
}

// CheckLogin reports whether a login attempt for username from ip may
// proceed. Usernames are compared case-insensitively so a lockout cannot be
// dodged by changing case.
func (l *Limiter) CheckLogin(username, ip string) LimitResult {
	now := l.clock.Now()
	userKey := hashKey(strings.ToLower(username))
	ipKey := hashKey(ip)

	l.mu.Lock()
	defer l.mu.Unlock()

	if e := l.byUser[userKey]; e != nil {
		if !e.lockedAt.IsZero() {
			if remaining := e.lockedAt.Add(l.config.Lockout).Sub(now); remaining > 0 {
				return LimitResult{Allowed: false, RetryAfter: remaining, Reason: "username locked out"}
			}
			// Lockout expired
			delete(l.byUser, userKey)
		}
	}

	if e := l.byIP[ipKey]; e != nil {
		if now.Sub(e.firstAt) >= l.config.Window {
			delete(l.byIP, ipKey)
		} else if e.count >= l.config.MaxIPPerWindow {
			retry := e.firstAt.Add(l.config.Window).Sub(now)
			return LimitResult{Allowed: false, RetryAfter: retry, Reason: "ip over attempt limit"}
		}
	}

	return LimitResult{Allowed: true}
}

// RecordFailure counts a failed login attempt and starts a lockout once the
// username reaches the attempt limit.
func (l *Limiter) RecordFailure(username, ip string) {
	now := l.clock.Now()
	userKey := hashKey(strings.ToLower(username))
	ipKey := hashKey(ip)

	l.mu.Lock()
	defer l.mu.Unlock()

	ue := l.byUser[userKey]
	if ue == nil || now.Sub(ue.firstAt) >= l.config.Window {
		ue = &entry{firstAt: now}
		l.byUser[userKey] = ue
	}
	ue.count++
	if ue.count >= l.config.MaxAttempts && ue.lockedAt.IsZero() {
		ue.lockedAt = now
	}

	ie := l.byIP[ipKey]
	if ie == nil || now.Sub(ie.firstAt) >= l.config.Window {
		ie = &entry{firstAt: now}
		l.byIP[ipKey] = ie
	}
	ie.count++
}

// RecordSuccess clears the failure count for username.
func (l *Limiter) RecordSuccess(username string) {
	userKey := hashKey(strings.ToLower(username))

	l.mu.Lock()
	delete(l.byUser, userKey)
	l.mu.Unlock()
}

// Prune drops entries whose window and lockout have both passed.
func (l *Limiter) Prune() {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, e := range l.byUser {
		if now.Sub(e.firstAt) >= l.config.Window && (e.lockedAt.IsZero() || now.Sub(e.lockedAt) >= l.config.Lockout) {
			delete(l.byUser, key)
		}
	}
	for key, e := range l.byIP {
		if now.Sub(e.firstAt) >= l.config.Window {
			delete(l.byIP, key)
		}
	}
}

// ClientIP extracts the caller's IP from a request, honoring the first
// X-Forwarded-For hop when present.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx != -1 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
