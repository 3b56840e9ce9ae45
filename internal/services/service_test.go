package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/ruanfv/portfolio/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway SQLite database with the schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunSQLScripts(db, filepath.Join("..", "..", "migrations")))

	return db
}

// seedLookups inserts the statuses and types test projects reference.
func seedLookups(t *testing.T, db *sql.DB) {
	t.Helper()

	statusRepo := repositories.NewProjectStatusRepository(db)
	for _, s := range []models.ProjectStatus{
		{Key: "shipped", Label: "SHIPPED"},
		{Key: "in-progress", Label: "IN PROGRESS"},
	} {
		status := s
		require.NoError(t, statusRepo.Create(&status))
	}

	typeRepo := repositories.NewProjectTypeRepository(db)
	for _, ty := range []models.ProjectType{
		{Key: "Web", Label: "WEB"},
		{Key: "Saas", Label: "SAAS"},
	} {
		projectType := ty
		require.NoError(t, typeRepo.Create(&projectType))
	}
}
