package repositories

import (
	"database/sql"

	"github.com/ruanfv/portfolio/internal/models"
)

type ProjectStatusRepository struct {
	db *sql.DB
}

func NewProjectStatusRepository(db *sql.DB) *ProjectStatusRepository {
	return &ProjectStatusRepository{
		db: db,
	}
}

// Create inserts a new status and fills in its generated id
func (r *ProjectStatusRepository) Create(status *models.ProjectStatus) error {
	query := `INSERT INTO project_statuses (key, label) VALUES ($1, $2)`

	result, err := r.db.Exec(query, status.Key, status.Label)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	status.ID = int(id)

	return nil
}

// GetByID retrieves a single status
func (r *ProjectStatusRepository) GetByID(id int) (*models.ProjectStatus, error) {
	query := `SELECT id, key, label FROM project_statuses WHERE id = $1`

	status := &models.ProjectStatus{}
	err := r.db.QueryRow(query, id).Scan(&status.ID, &status.Key, &status.Label)
	if err != nil {
		return nil, err
	}

	return status, nil
}

// List retrieves all statuses ordered by label ascending
func (r *ProjectStatusRepository) List() ([]*models.ProjectStatus, error) {
	query := `SELECT id, key, label FROM project_statuses ORDER BY label ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := []*models.ProjectStatus{}
	for rows.Next() {
		status := &models.ProjectStatus{}
		if err := rows.Scan(&status.ID, &status.Key, &status.Label); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, rows.Err()
}

// Update replaces the key and label of a status
func (r *ProjectStatusRepository) Update(status *models.ProjectStatus) error {
	query := `UPDATE project_statuses SET key = $1, label = $2 WHERE id = $3`

	result, err := r.db.Exec(query, status.Key, status.Label, status.ID)
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

// Delete removes a status
func (r *ProjectStatusRepository) Delete(id int) error {
	query := `DELETE FROM project_statuses WHERE id = $1`

	result, err := r.db.Exec(query, id)
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
