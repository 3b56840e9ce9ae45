package services

import (
	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
)

// Fallback keys applied when a create payload omits type or status.
const (
	DefaultProjectType   = "Web"
	DefaultProjectStatus = "in-progress"
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProject validates the payload, applies defaults and persists it.
// The returned project carries its generated id.
func (s *ProjectService) CreateProject(project *models.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	if project.Type == "" {
		project.Type = DefaultProjectType
	}
	if project.Status == "" {
		project.Status = DefaultProjectStatus
	}

	return s.projectRepo.Create(project)
}

// ListProjects retrieves projects matching the filter
func (s *ProjectService) ListProjects(filter repositories.ProjectFilter) ([]*models.Project, error) {
	return s.projectRepo.List(filter)
}

// GetProject retrieves a single project
func (s *ProjectService) GetProject(id int) (*models.Project, error) {
	return s.projectRepo.GetByID(id)
}

// UpdateProject replaces all mutable fields. Partial update is not
// supported; callers resend every field.
func (s *ProjectService) UpdateProject(project *models.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	return s.projectRepo.Update(project)
}

// DeleteProject removes a project unconditionally. Nothing references a
// project by id, so no cross-reference check is needed.
func (s *ProjectService) DeleteProject(id int) error {
	return s.projectRepo.Delete(id)
}
