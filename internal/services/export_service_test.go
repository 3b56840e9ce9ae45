package services

import (
	"testing"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProjectsWorkbook(t *testing.T) {
	service := NewExportService()

	link := "https://example.com"
	projects := []*models.Project{
		{
			ID:           1,
			Title:        "Portfolio",
			Description:  "Personal site",
			Technologies: []string{"Go", "SQLite"},
			Type:         "Web",
			Status:       "shipped",
			Year:         "2025",
			Link:         &link,
			Stars:        42,
		},
		{
			ID:          2,
			Title:       "Second",
			Description: "Another one",
			Type:        "Saas",
			Status:      "in-progress",
			Year:        "2024",
		},
	}

	workbook, err := service.BuildProjectsWorkbook(projects)
	require.NoError(t, err)

	assert.Equal(t, []string{"Projects"}, workbook.GetSheetList())

	title, err := workbook.GetCellValue("Projects", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Title", title)

	firstTitle, err := workbook.GetCellValue("Projects", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", firstTitle)

	technologies, err := workbook.GetCellValue("Projects", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Go, SQLite", technologies)

	// Nil pointers render as empty cells, not "nil".
	secondLink, err := workbook.GetCellValue("Projects", "I3")
	require.NoError(t, err)
	assert.Equal(t, "", secondLink)
}
