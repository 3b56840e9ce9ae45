package repositories

import (
	"database/sql"

	"github.com/ruanfv/portfolio/internal/models"
)

type ProjectTypeRepository struct {
	db *sql.DB
}

func NewProjectTypeRepository(db *sql.DB) *ProjectTypeRepository {
	return &ProjectTypeRepository{
		db: db,
	}
}

// Create inserts a new type and fills in its generated id
func (r *ProjectTypeRepository) Create(projectType *models.ProjectType) error {
	query := `INSERT INTO project_types (key, label) VALUES ($1, $2)`

	result, err := r.db.Exec(query, projectType.Key, projectType.Label)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	projectType.ID = int(id)

	return nil
}

// GetByID retrieves a single type
func (r *ProjectTypeRepository) GetByID(id int) (*models.ProjectType, error) {
	query := `SELECT id, key, label FROM project_types WHERE id = $1`

	projectType := &models.ProjectType{}
	err := r.db.QueryRow(query, id).Scan(&projectType.ID, &projectType.Key, &projectType.Label)
	if err != nil {
		return nil, err
	}

	return projectType, nil
}

// List retrieves all types ordered by label ascending
func (r *ProjectTypeRepository) List() ([]*models.ProjectType, error) {
	query := `SELECT id, key, label FROM project_types ORDER BY label ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []*models.ProjectType{}
	for rows.Next() {
		projectType := &models.ProjectType{}
		if err := rows.Scan(&projectType.ID, &projectType.Key, &projectType.Label); err != nil {
			return nil, err
		}
		types = append(types, projectType)
	}

	return types, rows.Err()
}

// Update replaces the key and label of a type
func (r *ProjectTypeRepository) Update(projectType *models.ProjectType) error {
	query := `UPDATE project_types SET key = $1, label = $2 WHERE id = $3`

	result, err := r.db.Exec(query, projectType.Key, projectType.Label, projectType.ID)
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

// Delete removes a type
func (r *ProjectTypeRepository) Delete(id int) error {
	query := `DELETE FROM project_types WHERE id = $1`

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
