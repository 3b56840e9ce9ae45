package repositories

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway SQLite database with the real schema
// applied. The foreign keys on projects.type and projects.status are
// live, so lookup rows must exist before any project insert.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunSQLScripts(db, filepath.Join("..", "..", "migrations")))

	return db
}

// seedLookups inserts the statuses and types referenced by test projects.
func seedLookups(t *testing.T, db *sql.DB) {
	t.Helper()

	statusRepo := NewProjectStatusRepository(db)
	for _, s := range []models.ProjectStatus{
		{Key: "shipped", Label: "SHIPPED"},
		{Key: "in-progress", Label: "IN PROGRESS"},
		{Key: "archived", Label: "ARCHIVED"},
	} {
		status := s
		require.NoError(t, statusRepo.Create(&status))
	}

	typeRepo := NewProjectTypeRepository(db)
	for _, ty := range []models.ProjectType{
		{Key: "Web", Label: "WEB"},
		{Key: "Saas", Label: "SAAS"},
		{Key: "Mobile", Label: "MOBILE"},
	} {
		projectType := ty
		require.NoError(t, typeRepo.Create(&projectType))
	}
}
