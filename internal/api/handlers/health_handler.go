// internal/api/handlers/health_handler.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ============================================
// Health Handler
// ============================================

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	database Pinger
	sessions Pinger
}

func NewHealthHandler(database, sessions Pinger) *HealthHandler {
	return &HealthHandler{database: database, sessions: sessions}
}

// Check - Report document-store and session-store connectivity
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "connected"
	sessions := "connected"

	if err := h.database.Ping(ctx); err != nil {
		log.Printf("[Health] MongoDB ping failed: %v", err)
		database = "disconnected"
	}
	if err := h.sessions.Ping(ctx); err != nil {
		log.Printf("[Health] Redis ping failed: %v", err)
		sessions = "disconnected"
	}

	status := "healthy"
	code := http.StatusOK
	if database != "connected" || sessions != "connected" {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now(),
		"database":  database,
		"sessions":  sessions,
	})
}
