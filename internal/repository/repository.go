// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ============================================
// Models / Entities
// ============================================

type Project struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	ImageURL     string        `bson:"imageUrl" json:"imageUrl"`
	Tags         []string      `bson:"tags" json:"tags"`
	Technologies []string      `bson:"technologies" json:"technologies"`
	ProjectURL   string        `bson:"projectUrl,omitempty" json:"projectUrl,omitempty"`
	GithubURL    string        `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	CaseStudy    string        `bson:"caseStudy,omitempty" json:"caseStudy,omitempty"`
	Featured     bool          `bson:"featured" json:"featured"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

type Message struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Subject   string        `bson:"subject" json:"subject"`
	Message   string        `bson:"message" json:"message"`
	Read      bool          `bson:"read" json:"read"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// ErrNotFound is returned when an ID does not resolve to a stored document.
// Malformed IDs map to the same error so callers see one "missing" case.
var ErrNotFound = errors.New("document not found")

// ============================================
// Repository Interfaces
// ============================================

type ProjectRepository interface {
	FindAll(ctx context.Context) ([]*Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Insert(ctx context.Context, project *Project) error
	UpdateByID(ctx context.Context, id string, project *Project) error
	DeleteByID(ctx context.Context, id string) error
}

type MessageRepository interface {
	FindAll(ctx context.Context) ([]*Message, error)
	FindByID(ctx context.Context, id string) (*Message, error)
	Insert(ctx context.Context, message *Message) error
	UpdateByID(ctx context.Context, id string, message *Message) error
	DeleteByID(ctx context.Context, id string) error
}
