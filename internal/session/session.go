// internal/session/session.go
package session

import (
	"context"
	"errors"
	"time"
)

// ============================================
// Admin Session
// ============================================

// Session is the server-side record referenced by the signed cookie. Only the
// opaque ID travels to the client; the payload stays in the store.
type Session struct {
	ID         string    `json:"-"`
	IsAdmin    bool      `json:"isAdmin"`
	AdminEmail string    `json:"adminEmail"`
	LoginTime  time.Time `json:"loginTime"`
}

var ErrNotFound = errors.New("session not found")

// Store persists sessions with a TTL. Expiry is enforced by the store itself,
// so expired sessions simply come back as ErrNotFound.
type Store interface {
	Save(ctx context.Context, sess *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context, id string, ttl time.Duration) error
}
