package repositories

import (
	"database/sql"
	"testing"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testProject(title, year string) *models.Project {
	return &models.Project{
		Title:        title,
		Description:  "A test project",
		Technologies: []string{"Go"},
		Type:         "Web",
		Year:         year,
		Status:       "shipped",
	}
}

func TestProjectCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	project := &models.Project{
		Title:           "Portfolio",
		Description:     "Personal portfolio site",
		LongDescription: strPtr("A longer writeup"),
		ImageURL:        strPtr("/static/uploads/projects/1-cover.png"),
		Technologies:    []string{"Go", "Gin", "SQLite"},
		Link:            strPtr("https://example.com"),
		GitHub:          strPtr("https://github.com/example/portfolio"),
		Type:            "Web",
		Featured:        true,
		Year:            "2025",
		Status:          "shipped",
	}

	require.NoError(t, repo.Create(project))
	assert.NotZero(t, project.ID)

	stored, err := repo.GetByID(project.ID)
	require.NoError(t, err)

	assert.Equal(t, project.Title, stored.Title)
	assert.Equal(t, project.Description, stored.Description)
	assert.Equal(t, "A longer writeup", *stored.LongDescription)
	assert.Equal(t, []string{"Go", "Gin", "SQLite"}, stored.Technologies)
	assert.Equal(t, "Web", stored.Type)
	assert.True(t, stored.Featured)
	assert.Equal(t, "shipped", stored.Status)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestProjectGetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProjectListFilters(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	web := testProject("Web project", "2024")
	require.NoError(t, repo.Create(web))

	saas := testProject("Saas project", "2024")
	saas.Type = "Saas"
	saas.Status = "in-progress"
	require.NoError(t, repo.Create(saas))

	featured := testProject("Featured web project", "2024")
	featured.Featured = true
	require.NoError(t, repo.Create(featured))

	t.Run("No filter returns everything", func(t *testing.T) {
		projects, err := repo.List(ProjectFilter{})
		require.NoError(t, err)
		assert.Len(t, projects, 3)
	})

	t.Run("Type filter", func(t *testing.T) {
		projects, err := repo.List(ProjectFilter{Type: "Saas"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Saas project", projects[0].Title)
	})

	t.Run("Status filter", func(t *testing.T) {
		projects, err := repo.List(ProjectFilter{Status: "shipped"})
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})

	t.Run("Featured filter", func(t *testing.T) {
		isFeatured := true
		projects, err := repo.List(ProjectFilter{Featured: &isFeatured})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Featured web project", projects[0].Title)
	})

	t.Run("Filters combine conjunctively", func(t *testing.T) {
		isFeatured := true
		projects, err := repo.List(ProjectFilter{Type: "Web", Status: "shipped", Featured: &isFeatured})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Featured web project", projects[0].Title)

		projects, err = repo.List(ProjectFilter{Type: "Saas", Status: "shipped"})
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}

func TestProjectListOrdering(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	older := testProject("Older", "2019")
	require.NoError(t, repo.Create(older))

	newest := testProject("Newest", "2025")
	require.NoError(t, repo.Create(newest))

	middle := testProject("Middle", "2023")
	require.NoError(t, repo.Create(middle))

	featured := testProject("Featured but oldest", "2015")
	featured.Featured = true
	require.NoError(t, repo.Create(featured))

	projects, err := repo.List(ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 4)

	titles := []string{projects[0].Title, projects[1].Title, projects[2].Title, projects[3].Title}
	assert.Equal(t, []string{"Featured but oldest", "Newest", "Middle", "Older"}, titles)
}

func TestProjectListYearOrderingIsLexicographic(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	fiveDigit := testProject("Five digit year", "10000")
	require.NoError(t, repo.Create(fiveDigit))

	fourDigit := testProject("Four digit year", "9999")
	require.NoError(t, repo.Create(fourDigit))

	projects, err := repo.List(ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Year is TEXT, so "9999" sorts above "10000".
	assert.Equal(t, "Four digit year", projects[0].Title)
	assert.Equal(t, "Five digit year", projects[1].Title)
}

func TestProjectListTiesBreakOnCreatedAt(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	first := testProject("First", "2024")
	require.NoError(t, repo.Create(first))

	second := testProject("Second", "2024")
	require.NoError(t, repo.Create(second))

	// CURRENT_TIMESTAMP has second resolution; force distinct times.
	_, err := db.Exec(`UPDATE projects SET created_at = '2024-01-01 10:00:00' WHERE id = $1`, first.ID)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE projects SET created_at = '2024-06-01 10:00:00' WHERE id = $1`, second.ID)
	require.NoError(t, err)

	projects, err := repo.List(ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "Second", projects[0].Title)
	assert.Equal(t, "First", projects[1].Title)
}

func TestProjectUpdate(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	project := testProject("Before", "2023")
	require.NoError(t, repo.Create(project))

	project.Title = "After"
	project.Status = "archived"
	project.Technologies = []string{"Go", "HTMX"}
	require.NoError(t, repo.Update(project))

	stored, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", stored.Title)
	assert.Equal(t, "archived", stored.Status)
	assert.Equal(t, []string{"Go", "HTMX"}, stored.Technologies)

	t.Run("Missing project", func(t *testing.T) {
		missing := testProject("Ghost", "2023")
		missing.ID = 9999
		assert.ErrorIs(t, repo.Update(missing), sql.ErrNoRows)
	})
}

func TestProjectDelete(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	project := testProject("Doomed", "2022")
	require.NoError(t, repo.Create(project))

	require.NoError(t, repo.Delete(project.ID))

	_, err := repo.GetByID(project.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, repo.Delete(project.ID), sql.ErrNoRows)
}

func TestProjectUpdateStats(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	project := testProject("Starred", "2024")
	require.NoError(t, repo.Create(project))

	require.NoError(t, repo.UpdateStats(project.ID, 120, 14))

	stored, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, stored.Stars)
	assert.Equal(t, 14, stored.Forks)
}

func TestProjectCountByKeys(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	require.NoError(t, repo.Create(testProject("One", "2024")))
	require.NoError(t, repo.Create(testProject("Two", "2024")))

	count, err := repo.CountByStatusKey("shipped")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountByStatusKey("archived")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = repo.CountByTypeKey("Web")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestProjectListWithGitHub(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	plain := testProject("No repo", "2024")
	require.NoError(t, repo.Create(plain))

	linked := testProject("Linked", "2024")
	linked.GitHub = strPtr("https://github.com/example/linked")
	require.NoError(t, repo.Create(linked))

	empty := testProject("Empty URL", "2024")
	empty.GitHub = strPtr("")
	require.NoError(t, repo.Create(empty))

	projects, err := repo.ListWithGitHub()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Linked", projects[0].Title)
}

func TestProjectMalformedTechnologiesDegrade(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	project := testProject("Legacy row", "2020")
	require.NoError(t, repo.Create(project))

	_, err := db.Exec(`UPDATE projects SET technologies = 'not json' WHERE id = $1`, project.ID)
	require.NoError(t, err)

	stored, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, stored.Technologies)
}

func TestProjectForeignKeysRestrict(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	t.Run("Unknown status key is rejected", func(t *testing.T) {
		project := testProject("Dangling", "2024")
		project.Status = "no-such-status"
		assert.Error(t, repo.Create(project))
	})

	t.Run("Referenced status cannot be deleted at the store level", func(t *testing.T) {
		require.NoError(t, repo.Create(testProject("Holder", "2024")))

		_, err := db.Exec(`DELETE FROM project_statuses WHERE key = 'shipped'`)
		assert.Error(t, err)
	})
}
