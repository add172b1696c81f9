// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/session"
)

// ============================================
// Auth Service
// ============================================

// emailRegex mirrors the classic local@domain.tld shape check; anything
// stricter belongs to the mail provider.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	cfg        *config.Config
	sessions   session.Store
	sessionTTL time.Duration
}

func NewAuthService(cfg *config.Config, sessions session.Store, sessionTTL time.Duration) AuthService {
	return &authService{cfg: cfg, sessions: sessions, sessionTTL: sessionTTL}
}

// Login validates the credential pair against the configured admin account and
// creates a session. The session is durably saved before Login returns, so a
// follow-up request can never race an unsaved session.
func (s *authService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("Email and password are required")
	}
	if !emailRegex.MatchString(email) {
		return nil, NewValidationError("Invalid email format")
	}

	if email != s.cfg.AdminEmail || password != s.cfg.AdminPassword {
		return nil, ErrInvalidCredentials
	}

	sess := &session.Session{
		ID:         uuid.NewString(),
		IsAdmin:    true,
		AdminEmail: email,
		LoginTime:  time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, sess, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return sess, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
