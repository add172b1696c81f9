// internal/session/cookie.go
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const CookieName = "portfolio_sid"

var ErrInvalidCookie = errors.New("invalid session cookie")

// CookieManager signs the opaque session ID into the cookie value and verifies
// it on the way back in. The cookie carries "id.signature"; the session payload
// itself never leaves the server.
type CookieManager struct {
	secret []byte
	secure bool
}

func NewCookieManager(secret string, secure bool) *CookieManager {
	return &CookieManager{secret: []byte(secret), secure: secure}
}

func (m *CookieManager) Encode(id string) string {
	return id + "." + m.sign(id)
}

func (m *CookieManager) Decode(value string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", ErrInvalidCookie
	}
	if !hmac.Equal([]byte(sig), []byte(m.sign(id))) {
		return "", ErrInvalidCookie
	}
	return id, nil
}

func (m *CookieManager) Set(c *gin.Context, id string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, m.Encode(id), int(ttl.Seconds()), "/", "", m.secure, true)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

func (m *CookieManager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
