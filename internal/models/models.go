// internal/models/models.go
package models

// ============================================
// Auth DTOs
// ============================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ============================================
// Project DTOs
// ============================================

type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Tags         []string `json:"tags"`
	Technologies []string `json:"technologies"`
	ProjectURL   string   `json:"projectUrl"`
	GithubURL    string   `json:"githubUrl"`
	CaseStudy    string   `json:"caseStudy"`
	Featured     bool     `json:"featured"`
}

// UpdateProjectRequest carries partial updates: nil means "leave unchanged".
type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
	Tags         *[]string `json:"tags"`
	Technologies *[]string `json:"technologies"`
	ProjectURL   *string   `json:"projectUrl"`
	GithubURL    *string   `json:"githubUrl"`
	CaseStudy    *string   `json:"caseStudy"`
	Featured     *bool     `json:"featured"`
}

// ============================================
// Message DTOs
// ============================================

type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
