package domain

import "time"

// AdminSession is an authenticated admin panel session
// It travels through the request context instead of living in global state
type AdminSession struct {
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NewAdminSession opens a session at now that lasts for ttl
func NewAdminSession(id string, now time.Time, ttl time.Duration) AdminSession {
	return AdminSession{
		ID:        id,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsValid reports whether the session is active at now
func (s AdminSession) IsValid(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.IssuedAt) && now.Before(s.ExpiresAt)
}

// Remaining returns the time left until expiry, zero when expired
func (s AdminSession) Remaining(now time.Time) time.Duration {
	if !s.IsValid(now) {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}
