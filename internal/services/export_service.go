package services

import (
	"fmt"
	"strings"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/xuri/excelize/v2"
)

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildProjectsWorkbook renders all projects into a single-sheet xlsx
// workbook, one row per project.
func (s *ExportService) BuildProjectsWorkbook(projects []*models.Project) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Projects"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Title", "Description", "Technologies", "Type", "Status", "Featured", "Year", "Link", "GitHub", "Stars", "Forks"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, project := range projects {
		values := []interface{}{
			project.ID,
			project.Title,
			project.Description,
			strings.Join(project.Technologies, ", "),
			project.Type,
			project.Status,
			project.Featured,
			project.Year,
			deref(project.Link),
			deref(project.GitHub),
			project.Stars,
			project.Forks,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+2, err)
			}
		}
	}

	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
