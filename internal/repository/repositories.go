// internal/repository/repositories.go
package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ============================================
// Repositories Container
// ============================================

type Repositories struct {
	ProjectRepo ProjectRepository
	MessageRepo MessageRepository
}

func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		ProjectRepo: NewProjectRepository(database),
		MessageRepo: NewMessageRepository(database),
	}
}
