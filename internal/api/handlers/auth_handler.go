// internal/api/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/api/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/service"
	"portfolio-backend/internal/session"
)

// ============================================
// Auth Handler
// ============================================

type AuthHandler struct {
	authService service.AuthService
	cookies     *session.CookieManager
	sessionTTL  time.Duration
}

func NewAuthHandler(authService service.AuthService, cookies *session.CookieManager, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		sessionTTL:  sessionTTL,
	}
}

// Login - Authenticate the admin and issue a session cookie
// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Message})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		default:
			log.Printf("[Auth] Session save error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Session error. Please try again."})
		}
		return
	}

	h.cookies.Set(c, sess.ID, h.sessionTTL)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    gin.H{"email": sess.AdminEmail},
	})
}

// Logout - Destroy the session and clear the cookie
// POST /api/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess != nil {
		if err := h.authService.Logout(c.Request.Context(), sess.ID); err != nil {
			log.Printf("[Auth] Logout error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error logging out"})
			return
		}
	}

	h.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Check - Report whether the caller holds an admin session
// GET /api/admin/check
func (h *AuthHandler) Check(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess != nil && sess.IsAdmin {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "email": sess.AdminEmail})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
}

// CheckAuth - Same status check, used by the public pages for redirects
// GET /api/check-auth
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess != nil && sess.IsAdmin {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "email": sess.AdminEmail})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAuthenticated": false, "email": nil})
}
