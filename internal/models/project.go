package models

import (
	"encoding/json"
	"time"
)

// Project represents one portfolio entry.
type Project struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription *string   `json:"longDescription,omitempty"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	Technologies    []string  `json:"technologies"`
	Link            *string   `json:"link,omitempty"`
	GitHub          *string   `json:"github,omitempty"`
	Type            string    `json:"type"`
	Featured        bool      `json:"featured"`
	Year            string    `json:"year"`
	Status          string    `json:"status"`
	Stars           int       `json:"stars"`
	Forks           int       `json:"forks"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrProjectTitleRequired
	}
	if p.Description == "" {
		return ErrProjectDescriptionRequired
	}
	return nil
}

// EncodeTechnologies serializes the technologies list to its storage form.
// A nil list is stored as an empty JSON array.
func EncodeTechnologies(technologies []string) string {
	if technologies == nil {
		technologies = []string{}
	}
	data, err := json.Marshal(technologies)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeTechnologies deserializes a stored technologies value. Malformed or
// legacy data degrades to an empty list rather than failing the caller.
func DecodeTechnologies(stored string) []string {
	if stored == "" {
		return []string{}
	}
	var technologies []string
	if err := json.Unmarshal([]byte(stored), &technologies); err != nil {
		return []string{}
	}
	if technologies == nil {
		return []string{}
	}
	return technologies
}

// Common errors
var (
	ErrProjectTitleRequired       = &ValidationError{Field: "title", Message: "Title is required"}
	ErrProjectDescriptionRequired = &ValidationError{Field: "description", Message: "Description is required"}
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
