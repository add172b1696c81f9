package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

// MockProjectRepository is a mock implementation of repository.ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]*repository.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id string) (*repository.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Project), args.Error(1)
}

func (m *MockProjectRepository) Insert(ctx context.Context, project *repository.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateByID(ctx context.Context, id string, project *repository.Project) error {
	args := m.Called(ctx, id, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProjectService_Create(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*repository.Project")).Return(nil)

	svc := NewProjectService(repo)
	project, err := svc.Create(context.Background(), &models.CreateProjectRequest{
		Title:       "  My Project  ",
		Description: "Something I built",
		ImageURL:    "/images/p.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, "My Project", project.Title)
	assert.False(t, project.Featured)
	assert.NotNil(t, project.Tags)
	assert.Empty(t, project.Tags)
	assert.NotNil(t, project.Technologies)
	assert.Empty(t, project.Technologies)
	assert.Equal(t, project.CreatedAt, project.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestProjectService_Create_TrimsTags(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	svc := NewProjectService(repo)
	project, err := svc.Create(context.Background(), &models.CreateProjectRequest{
		Title:        "X",
		Description:  "Y",
		ImageURL:     "Z",
		Tags:         []string{" go ", "web"},
		Technologies: []string{" Gin "},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, project.Tags)
	assert.Equal(t, []string{"Gin"}, project.Technologies)
}

func TestProjectService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateProjectRequest
		want string
	}{
		{"missing title", models.CreateProjectRequest{Description: "d", ImageURL: "i"}, "Title is required"},
		{"whitespace title", models.CreateProjectRequest{Title: "   ", Description: "d", ImageURL: "i"}, "Title is required"},
		{"missing description", models.CreateProjectRequest{Title: "t", ImageURL: "i"}, "Description is required"},
		{"missing image", models.CreateProjectRequest{Title: "t", Description: "d"}, "Image URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProjectRepository)
			svc := NewProjectService(repo)

			project, err := svc.Create(context.Background(), &tt.req)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.want, vErr.Message)
			assert.Nil(t, project)
			repo.AssertNotCalled(t, "Insert")
		})
	}
}

func TestProjectService_Update_PartialMerge(t *testing.T) {
	id := bson.NewObjectID()
	created := time.Now().UTC().Add(-time.Hour)
	existing := &repository.Project{
		ID:           id,
		Title:        "Old title",
		Description:  "Old description",
		ImageURL:     "/old.png",
		Tags:         []string{"go"},
		Technologies: []string{"Gin"},
		Featured:     true,
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	repo := new(MockProjectRepository)
	repo.On("FindByID", mock.Anything, id.Hex()).Return(existing, nil)
	repo.On("UpdateByID", mock.Anything, id.Hex(), mock.Anything).Return(nil)

	svc := NewProjectService(repo)
	newTitle := "  New title  "
	project, err := svc.Update(context.Background(), id.Hex(), &models.UpdateProjectRequest{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, "New title", project.Title)
	assert.Equal(t, "Old description", project.Description)
	assert.Equal(t, "/old.png", project.ImageURL)
	assert.Equal(t, []string{"go"}, project.Tags)
	assert.True(t, project.Featured)
	assert.Equal(t, created, project.CreatedAt)
	assert.True(t, project.UpdatedAt.After(created))
	repo.AssertExpectations(t)
}

func TestProjectService_Update_Revalidates(t *testing.T) {
	id := bson.NewObjectID()
	existing := &repository.Project{ID: id, Title: "t", Description: "d", ImageURL: "i"}

	repo := new(MockProjectRepository)
	repo.On("FindByID", mock.Anything, id.Hex()).Return(existing, nil)

	svc := NewProjectService(repo)
	empty := "   "
	project, err := svc.Update(context.Background(), id.Hex(), &models.UpdateProjectRequest{Title: &empty})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Nil(t, project)
	repo.AssertNotCalled(t, "UpdateByID")
}

func TestProjectService_Update_NotFound(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	svc := NewProjectService(repo)
	project, err := svc.Update(context.Background(), "missing", &models.UpdateProjectRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, project)
}

func TestProjectService_Get_NotFound(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	svc := NewProjectService(repo)
	project, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, project)
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("DeleteByID", mock.Anything, "missing").Return(repository.ErrNotFound)

	svc := NewProjectService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrNotFound)
}
