package repositories

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/ruanfv/portfolio/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	query := `INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, user.ID.String(), user.Name, user.Email, user.Password)
	return err
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT id, name, email, password, created_at FROM users WHERE email = $1`

	user := &models.User{}
	var id string
	err := r.db.QueryRow(query, email).Scan(&id, &user.Name, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	user.ID = parsed

	return user, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := `SELECT id, name, email, password, created_at FROM users WHERE id = $1`

	user := &models.User{}
	var rawID string
	err := r.db.QueryRow(query, id).Scan(&rawID, &user.Name, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	user.ID = parsed

	return user, nil
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(id string, hash string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`

	result, err := r.db.Exec(query, hash, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
