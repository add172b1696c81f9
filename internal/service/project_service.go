// internal/service/project_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

// ============================================
// Project Service
// ============================================

type ProjectService interface {
	List(ctx context.Context) ([]*repository.Project, error)
	Get(ctx context.Context, id string) (*repository.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (*repository.Project, error)
	Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*repository.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) List(ctx context.Context) ([]*repository.Project, error) {
	return s.projectRepo.FindAll(ctx)
}

func (s *projectService) Get(ctx context.Context, id string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*repository.Project, error) {
	now := time.Now().UTC()
	project := &repository.Project{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		Tags:         trimAll(req.Tags),
		Technologies: trimAll(req.Technologies),
		ProjectURL:   strings.TrimSpace(req.ProjectURL),
		GithubURL:    strings.TrimSpace(req.GithubURL),
		CaseStudy:    req.CaseStudy,
		Featured:     req.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := validateProject(project); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Insert(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update merges the supplied fields into the stored project; fields the client
// did not send keep their prior values.
func (s *projectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		project.Description = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		project.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.Tags != nil {
		project.Tags = trimAll(*req.Tags)
	}
	if req.Technologies != nil {
		project.Technologies = trimAll(*req.Technologies)
	}
	if req.ProjectURL != nil {
		project.ProjectURL = strings.TrimSpace(*req.ProjectURL)
	}
	if req.GithubURL != nil {
		project.GithubURL = strings.TrimSpace(*req.GithubURL)
	}
	if req.CaseStudy != nil {
		project.CaseStudy = *req.CaseStudy
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	project.UpdatedAt = time.Now().UTC()

	if err := validateProject(project); err != nil {
		return nil, err
	}
	if err := s.projectRepo.UpdateByID(ctx, id, project); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	err := s.projectRepo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func validateProject(project *repository.Project) error {
	if project.Title == "" {
		return NewValidationError("Title is required")
	}
	if project.Description == "" {
		return NewValidationError("Description is required")
	}
	if project.ImageURL == "" {
		return NewValidationError("Image URL is required")
	}
	return nil
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		trimmed = append(trimmed, strings.TrimSpace(v))
	}
	return trimmed
}
