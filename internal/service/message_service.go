// internal/service/message_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

// ============================================
// Message Service
// ============================================

// Field bounds for contact submissions. The contact form is the one endpoint
// open to the whole internet, so oversized payloads are rejected outright.
const (
	maxNameLength    = 100
	maxEmailLength   = 254
	maxSubjectLength = 200
	maxMessageLength = 5000
)

type MessageService interface {
	Create(ctx context.Context, req *models.CreateMessageRequest) (*repository.Message, error)
	List(ctx context.Context) ([]*repository.Message, error)
	MarkRead(ctx context.Context, id string) (*repository.Message, error)
	Delete(ctx context.Context, id string) error
}

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) Create(ctx context.Context, req *models.CreateMessageRequest) (*repository.Message, error) {
	message := &repository.Message{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := validateMessage(message); err != nil {
		return nil, err
	}
	if err := s.messageRepo.Insert(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) List(ctx context.Context) ([]*repository.Message, error) {
	return s.messageRepo.FindAll(ctx)
}

// MarkRead flips the read flag. It is idempotent: marking an already-read
// message succeeds without another store write.
func (s *messageService) MarkRead(ctx context.Context, id string) (*repository.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if message.Read {
		return message, nil
	}

	message.Read = true
	if err := s.messageRepo.UpdateByID(ctx, id, message); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return message, nil
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	err := s.messageRepo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func validateMessage(message *repository.Message) error {
	if message.Name == "" {
		return NewValidationError("Name is required")
	}
	if utf8.RuneCountInString(message.Name) > maxNameLength {
		return NewValidationError("Name is too long")
	}
	if message.Email == "" {
		return NewValidationError("Email is required")
	}
	if len(message.Email) > maxEmailLength || !emailRegex.MatchString(message.Email) {
		return NewValidationError("Invalid email format")
	}
	if message.Subject == "" {
		return NewValidationError("Subject is required")
	}
	if utf8.RuneCountInString(message.Subject) > maxSubjectLength {
		return NewValidationError("Subject is too long")
	}
	if message.Message == "" {
		return NewValidationError("Message is required")
	}
	if utf8.RuneCountInString(message.Message) > maxMessageLength {
		return NewValidationError("Message is too long")
	}
	return nil
}
