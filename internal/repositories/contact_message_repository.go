package repositories

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/ruanfv/portfolio/internal/models"
)

type ContactMessageRepository struct {
	db *sql.DB
}

func NewContactMessageRepository(db *sql.DB) *ContactMessageRepository {
	return &ContactMessageRepository{
		db: db,
	}
}

// Create inserts a new contact message
func (r *ContactMessageRepository) Create(message *models.ContactMessage) error {
	query := `INSERT INTO contact_messages (id, name, email, message) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, message.ID.String(), message.Name, message.Email, message.Message)
	return err
}

// List retrieves all contact messages, newest first
func (r *ContactMessageRepository) List() ([]*models.ContactMessage, error) {
	query := `SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		message := &models.ContactMessage{}
		var id string
		if err := rows.Scan(&id, &message.Name, &message.Email, &message.Message, &message.CreatedAt); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		message.ID = parsed
		messages = append(messages, message)
	}

	return messages, rows.Err()
}
