package department

import (
	"errors"
	"fmt"
	"log/slog"

	"pacs/internal"
	departmentDatamodel "pacs/internal/core/datamodel/department"
	"pacs/internal/repository"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(dto CreateDepartmentDTO) (*departmentDatamodel.Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	dept := &departmentDatamodel.Department{Name: dto.Name}
	if err := s.repo.Create(dept); err != nil {
		if se, ok := repository.AsStoreError(err); ok && se.Kind == repository.KindUnique {
			return nil, internal.NewConflictError(
				fmt.Sprintf("Department with name:%s already exist.", dto.Name),
				internal.ErrCodeDuplicateName)
		}
		s.logger.Error("failed to create department", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create department", err)
	}

	s.logger.Info("department created", "department_id", dept.ID, "name", dept.Name)
	return dept, nil
}

func (s *Service) Get(id int64) (*departmentDatamodel.Department, error) {
	dept, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, internal.NewNotFoundError(
				"Department with supplied ID does not exist.",
				internal.ErrCodeDepartmentNotFound)
		}
		s.logger.Error("failed to get department", "department_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get department", err)
	}
	return dept, nil
}

func (s *Service) List(pageSize, startIndex int) ([]departmentDatamodel.Department, error) {
	depts, err := s.repo.List(pageSize, startIndex)
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("failed to list departments", err)
	}
	return depts, nil
}

func (s *Service) Update(id int64, dto UpdateDepartmentDTO) (*departmentDatamodel.Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	dept, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		dept.Name = *dto.Name
	}

	if err := s.repo.Update(dept); err != nil {
		if se, ok := repository.AsStoreError(err); ok && se.Kind == repository.KindUnique {
			return nil, internal.NewConflictError(
				fmt.Sprintf("Department with name:%s already exist.", dept.Name),
				internal.ErrCodeDuplicateName)
		}
		s.logger.Error("failed to update department", "department_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update department", err)
	}

	return dept, nil
}

// Delete refuses to remove a department that employees or devices still
// reference; the store raises the foreign key violation.
func (s *Service) Delete(id int64) error {
	dept, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(dept); err != nil {
		if se, ok := repository.AsStoreError(err); ok && se.Kind == repository.KindReferential {
			return internal.NewConflictError(
				"This department cannot be deleted because either employees or devices belong to it",
				internal.ErrCodeStillReferred)
		}
		s.logger.Error("failed to delete department", "department_id", id, "error", err)
		return internal.NewInternalError("failed to delete department", err)
	}

	s.logger.Info("department deleted", "department_id", id)
	return nil
}
