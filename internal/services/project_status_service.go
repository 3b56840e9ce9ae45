package services

import (
	"database/sql"
	"errors"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
)

var (
	ErrStatusNotFound = errors.New("status not found")
	ErrStatusInUse    = errors.New("cannot delete status that is being used by projects")
)

type ProjectStatusService struct {
	statusRepo  *repositories.ProjectStatusRepository
	projectRepo *repositories.ProjectRepository
}

func NewProjectStatusService(statusRepo *repositories.ProjectStatusRepository, projectRepo *repositories.ProjectRepository) *ProjectStatusService {
	return &ProjectStatusService{
		statusRepo:  statusRepo,
		projectRepo: projectRepo,
	}
}

// ListStatuses retrieves all statuses ordered by label
func (s *ProjectStatusService) ListStatuses() ([]*models.ProjectStatus, error) {
	return s.statusRepo.List()
}

// CreateStatus normalizes and persists a new status. Status keys are
// lower-cased and hyphenated, labels always upper-cased.
func (s *ProjectStatusService) CreateStatus(key, label string) (*models.ProjectStatus, error) {
	status := &models.ProjectStatus{
		Key:   key,
		Label: label,
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	status.Key = models.NormalizeStatusKey(status.Key)
	status.Label = models.NormalizeLabel(status.Label)

	if err := s.statusRepo.Create(status); err != nil {
		return nil, err
	}

	return status, nil
}

// UpdateStatus applies a partial update: empty key or label keeps the
// stored value. Normalization matches CreateStatus.
func (s *ProjectStatusService) UpdateStatus(id int, key, label string) (*models.ProjectStatus, error) {
	status, err := s.statusRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}

	if key != "" {
		status.Key = models.NormalizeStatusKey(key)
	}
	if label != "" {
		status.Label = models.NormalizeLabel(label)
	}

	if err := s.statusRepo.Update(status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}

	return status, nil
}

// DeleteStatus removes a status unless a project still references its
// key. The reference count runs before the delete; there is no cascade
// to rely on.
func (s *ProjectStatusService) DeleteStatus(id int) error {
	status, err := s.statusRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStatusNotFound
		}
		return err
	}

	count, err := s.projectRepo.CountByStatusKey(status.Key)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrStatusInUse
	}

	if err := s.statusRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStatusNotFound
		}
		return err
	}

	return nil
}
