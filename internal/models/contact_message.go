package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *ContactMessage) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "name", Message: "Name is required"}
	}
	if m.Email == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if m.Message == "" {
		return &ValidationError{Field: "message", Message: "Message is required"}
	}
	return nil
}
