package repositories

import (
	"database/sql"
	"strconv"

	"github.com/ruanfv/portfolio/internal/models"
)

// ProjectFilter narrows a project listing. Zero values mean "no filter";
// Featured is only applied when set.
type ProjectFilter struct {
	Type     string
	Status   string
	Featured *bool
}

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

const projectColumns = `id, title, description, long_description, image_url, technologies, link, github, type, featured, year, status, stars, forks, created_at, updated_at`

// Create inserts a new project and fills in its generated id
func (r *ProjectRepository) Create(project *models.Project) error {
	query := `
		INSERT INTO projects (title, description, long_description, image_url, technologies, link, github, type, featured, year, status, stars, forks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	result, err := r.db.Exec(query,
		project.Title,
		project.Description,
		project.LongDescription,
		project.ImageURL,
		models.EncodeTechnologies(project.Technologies),
		project.Link,
		project.GitHub,
		project.Type,
		project.Featured,
		project.Year,
		project.Status,
		project.Stars,
		project.Forks,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	project.ID = int(id)

	return nil
}

// GetByID retrieves a single project
func (r *ProjectRepository) GetByID(id int) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	row := r.db.QueryRow(query, id)
	return scanProject(row)
}

// List retrieves projects matching the filter, ordered by featured
// descending, then year descending, then creation time descending.
// Year is stored as text, so the year ordering is lexicographic.
func (r *ProjectRepository) List(filter ProjectFilter) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	args := []interface{}{}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` AND type = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		query += ` AND featured = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY featured DESC, year DESC, created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// Update replaces all mutable fields of a project
func (r *ProjectRepository) Update(project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, long_description = $3, image_url = $4, technologies = $5, link = $6, github = $7, type = $8, featured = $9, year = $10, status = $11, stars = $12, forks = $13, updated_at = CURRENT_TIMESTAMP
		WHERE id = $14
	`

	result, err := r.db.Exec(query,
		project.Title,
		project.Description,
		project.LongDescription,
		project.ImageURL,
		models.EncodeTechnologies(project.Technologies),
		project.Link,
		project.GitHub,
		project.Type,
		project.Featured,
		project.Year,
		project.Status,
		project.Stars,
		project.Forks,
		project.ID,
	)
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

// UpdateStats updates only the decorative stars/forks counters
func (r *ProjectRepository) UpdateStats(id, stars, forks int) error {
	query := `UPDATE projects SET stars = $1, forks = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`

	_, err := r.db.Exec(query, stars, forks, id)
	return err
}

// Delete removes a project unconditionally
func (r *ProjectRepository) Delete(id int) error {
	query := `DELETE FROM projects WHERE id = $1`

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

// CountByStatusKey counts projects referencing a status key
func (r *ProjectRepository) CountByStatusKey(key string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM projects WHERE status = $1`, key).Scan(&count)
	return count, err
}

// CountByTypeKey counts projects referencing a type key
func (r *ProjectRepository) CountByTypeKey(key string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM projects WHERE type = $1`, key).Scan(&count)
	return count, err
}

// ListWithGitHub retrieves projects that carry a GitHub URL
func (r *ProjectRepository) ListWithGitHub() ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE github IS NOT NULL AND github != ''`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProject reads one project row. The stored technologies value is
// decoded defensively: malformed data yields an empty list for that row.
func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var technologies string

	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.LongDescription,
		&project.ImageURL,
		&technologies,
		&project.Link,
		&project.GitHub,
		&project.Type,
		&project.Featured,
		&project.Year,
		&project.Status,
		&project.Stars,
		&project.Forks,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.Technologies = models.DecodeTechnologies(technologies)

	return project, nil
}
