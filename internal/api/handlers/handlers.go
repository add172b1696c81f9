// internal/api/handlers/handlers.go
package handlers

import (
	"time"

	"portfolio-backend/internal/service"
	"portfolio-backend/internal/session"
)

// ============================================
// Handlers Container
// ============================================

type Handlers struct {
	Auth    *AuthHandler
	Project *ProjectHandler
	Message *MessageHandler
	Pages   *PageHandler
}

type HandlerDeps struct {
	Services   *service.Services
	Cookies    *session.CookieManager
	SessionTTL time.Duration
	WebDir     string
}

func NewHandlers(deps *HandlerDeps) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(deps.Services.Auth, deps.Cookies, deps.SessionTTL),
		Project: NewProjectHandler(deps.Services.Project),
		Message: NewMessageHandler(deps.Services.Message),
		Pages:   NewPageHandler(deps.WebDir),
	}
}
