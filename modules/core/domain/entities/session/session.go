package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the long-lived authenticated session. Marker is the separate,
// short-lived tag identifying a platform (multi-tenant) session kind; it is
// set at a dev/demo entry point and consumed once by the shell composer.
type Session struct {
	Token     string
	UserID    uuid.UUID
	Marker    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
