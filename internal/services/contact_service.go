package services

import (
	"github.com/google/uuid"
	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
)

type ContactService struct {
	messageRepo *repositories.ContactMessageRepository
}

func NewContactService(messageRepo *repositories.ContactMessageRepository) *ContactService {
	return &ContactService{
		messageRepo: messageRepo,
	}
}

// SubmitMessage validates and stores a contact form submission
func (s *ContactService) SubmitMessage(name, email, text string) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		ID:      uuid.New(),
		Name:    name,
		Email:   email,
		Message: text,
	}
	if err := message.Validate(); err != nil {
		return nil, err
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	return message, nil
}

// ListMessages retrieves stored contact messages, newest first
func (s *ContactService) ListMessages() ([]*models.ContactMessage, error) {
	return s.messageRepo.List()
}
