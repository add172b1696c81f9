// internal/api/middleware/session.go
package middleware

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/session"
)

const sessionContextKey = "session"

// LoadSession reads the signed session cookie, loads the session from the
// store, and puts it on the Gin context. Requests without a valid session pass
// through untouched; the admin guard decides what to do about that.
// A successfully loaded session has its TTL slid forward on every request.
func LoadSession(store session.Store, cookies *session.CookieManager, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(session.CookieName)
		if err != nil {
			c.Next()
			return
		}

		id, err := cookies.Decode(value)
		if err != nil {
			// Tampered or stale cookie: drop it so the client stops sending it.
			cookies.Clear(c)
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if errors.Is(err, session.ErrNotFound) {
			// Expired or logged out elsewhere: the cookie references nothing.
			cookies.Clear(c)
			c.Next()
			return
		}
		if err != nil {
			// Store outage. The session may still be valid, so keep the cookie
			// and fail the request instead of silently downgrading it.
			log.Printf("[Session] Failed to load session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		if err := store.Refresh(c.Request.Context(), id, ttl); err != nil {
			log.Printf("[Session] Failed to refresh session TTL: %v", err)
		}
		cookies.Set(c, id, ttl)

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireAdmin rejects requests without an admin session. It runs before any
// handler work, so unauthorized requests never touch the document store.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.IsAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized. Please login first."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession extracts the session from the gin context, nil if absent.
func GetSession(c *gin.Context) *session.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, _ := value.(*session.Session)
	return sess
}
