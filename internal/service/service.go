// internal/service/service.go
package service

import (
	"errors"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("resource not found")
)

// ValidationError reports which input constraint was violated. Unlike the
// generic 500 path, its message is safe to echo back to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth    AuthService
	Project ProjectService
	Message MessageService
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config     *config.Config
	Repos      *repository.Repositories
	Sessions   session.Store
	SessionTTL time.Duration
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Auth:    NewAuthService(deps.Config, deps.Sessions, deps.SessionTTL),
		Project: NewProjectService(deps.Repos.ProjectRepo),
		Message: NewMessageService(deps.Repos.MessageRepo),
	}
}
