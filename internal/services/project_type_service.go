package services

import (
	"database/sql"
	"errors"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
)

var (
	ErrTypeNotFound = errors.New("type not found")
	ErrTypeInUse    = errors.New("cannot delete type that is being used by projects")
)

type ProjectTypeService struct {
	typeRepo    *repositories.ProjectTypeRepository
	projectRepo *repositories.ProjectRepository
}

func NewProjectTypeService(typeRepo *repositories.ProjectTypeRepository, projectRepo *repositories.ProjectRepository) *ProjectTypeService {
	return &ProjectTypeService{
		typeRepo:    typeRepo,
		projectRepo: projectRepo,
	}
}

// ListTypes retrieves all types ordered by label
func (s *ProjectTypeService) ListTypes() ([]*models.ProjectType, error) {
	return s.typeRepo.List()
}

// CreateType persists a new type. Type keys are stored verbatim; only
// the label is normalized to upper case.
func (s *ProjectTypeService) CreateType(key, label string) (*models.ProjectType, error) {
	projectType := &models.ProjectType{
		Key:   key,
		Label: label,
	}
	if err := projectType.Validate(); err != nil {
		return nil, err
	}

	projectType.Label = models.NormalizeLabel(projectType.Label)

	if err := s.typeRepo.Create(projectType); err != nil {
		return nil, err
	}

	return projectType, nil
}

// UpdateType applies a partial update: empty key or label keeps the
// stored value.
func (s *ProjectTypeService) UpdateType(id int, key, label string) (*models.ProjectType, error) {
	projectType, err := s.typeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}

	if key != "" {
		projectType.Key = key
	}
	if label != "" {
		projectType.Label = models.NormalizeLabel(label)
	}

	if err := s.typeRepo.Update(projectType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}

	return projectType, nil
}

// DeleteType removes a type unless a project still references its key.
func (s *ProjectTypeService) DeleteType(id int) error {
	projectType, err := s.typeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTypeNotFound
		}
		return err
	}

	count, err := s.projectRepo.CountByTypeKey(projectType.Key)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTypeInUse
	}

	if err := s.typeRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTypeNotFound
		}
		return err
	}

	return nil
}
