// internal/api/handlers/page_handler.go
package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/api/middleware"
)

// ============================================
// Page Handler
// ============================================

// PageHandler serves the pre-built frontend pages. The pages themselves are
// plain static files; only the admin routes look at the session to decide
// between the dashboard and the login page.
type PageHandler struct {
	webDir string
}

func NewPageHandler(webDir string) *PageHandler {
	return &PageHandler{webDir: webDir}
}

// Index - Landing page
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.File(filepath.Join(h.webDir, "index.html"))
}

// Projects - Public gallery page
// GET /projects
func (h *PageHandler) Projects(c *gin.Context) {
	c.File(filepath.Join(h.webDir, "projects.html"))
}

// Admin - Dashboard for admins, login page for everyone else
// GET /admin
func (h *PageHandler) Admin(c *gin.Context) {
	if sess := middleware.GetSession(c); sess != nil && sess.IsAdmin {
		c.File(filepath.Join(h.webDir, "admin-dashboard.html"))
		return
	}
	c.File(filepath.Join(h.webDir, "admin-login.html"))
}

// AdminDashboard - Dashboard, redirecting unauthenticated visitors to /admin
// GET /admin/dashboard
func (h *PageHandler) AdminDashboard(c *gin.Context) {
	if sess := middleware.GetSession(c); sess != nil && sess.IsAdmin {
		c.File(filepath.Join(h.webDir, "admin-dashboard.html"))
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}
