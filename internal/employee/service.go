package employee

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pacs/internal"
	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
	"pacs/internal/repository"
)

type Service struct {
	repo        RepositoryAPI
	departments DepartmentRepositoryAPI
	grants      GrantRepositoryAPI
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, departments DepartmentRepositoryAPI, grants GrantRepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		departments: departments,
		grants:      grants,
		logger:      logger,
	}
}

func (s *Service) Create(dto CreateEmployeeDTO) (*employeeDatamodel.Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if err := s.checkDepartment(dto.DepartmentID); err != nil {
		return nil, err
	}

	start, finish := dto.Dates(time.Now())
	emp := &employeeDatamodel.Employee{
		Name:           dto.Name,
		Surname:        dto.Surname,
		DepartmentID:   dto.DepartmentID,
		CardID:         dto.CardID,
		CardStartDate:  start,
		CardFinishDate: finish,
	}

	if err := s.repo.Create(emp); err != nil {
		return nil, s.classifyWriteError(err, dto.CardID)
	}

	s.logger.Info("employee created", "employee_id", emp.ID, "card_id", emp.CardID)
	return emp, nil
}

func (s *Service) Get(id int64) (*employeeDatamodel.Employee, error) {
	emp, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, internal.NewNotFoundError(
				"Employee with supplied ID does not exist.",
				internal.ErrCodeEmployeeNotFound)
		}
		s.logger.Error("failed to get employee", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	return emp, nil
}

func (s *Service) List(pageSize, startIndex int) ([]employeeDatamodel.Employee, error) {
	emps, err := s.repo.List(pageSize, startIndex)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return emps, nil
}

func (s *Service) Update(id int64, dto UpdateEmployeeDTO) (*employeeDatamodel.Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	emp, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	// Department existence is only re-checked when the reference changes.
	if dto.DepartmentID != nil {
		if err := s.checkDepartment(*dto.DepartmentID); err != nil {
			return nil, err
		}
		emp.DepartmentID = *dto.DepartmentID
	}
	if dto.Name != nil {
		emp.Name = *dto.Name
	}
	if dto.Surname != nil {
		emp.Surname = *dto.Surname
	}
	if dto.CardID != nil {
		emp.CardID = *dto.CardID
	}
	if dto.CardStartDate != nil {
		emp.CardStartDate, _ = time.Parse(dateLayout, *dto.CardStartDate)
	}
	if dto.CardFinishDate != nil {
		emp.CardFinishDate, _ = time.Parse(dateLayout, *dto.CardFinishDate)
	}

	if err := s.repo.Update(emp); err != nil {
		return nil, s.classifyWriteError(err, emp.CardID)
	}

	return emp, nil
}

// Delete empties the employee's grant set before removing the row, so a
// store without cascading delete cannot be left with dangling grants.
// The two writes commit separately.
func (s *Service) Delete(id int64) error {
	emp, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.grants.ClearByEmployee(id); err != nil {
		s.logger.Error("failed to clear employee grants", "employee_id", id, "error", err)
		return internal.NewInternalError("failed to clear employee access grants", err)
	}

	if err := s.repo.Delete(emp); err != nil {
		s.logger.Error("failed to delete employee", "employee_id", id, "error", err)
		return internal.NewInternalError("failed to delete employee", err)
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

// GetDevices lists the devices this employee is granted access to.
func (s *Service) GetDevices(id int64) ([]deviceDatamodel.Device, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	devices, err := s.grants.DevicesForEmployee(id)
	if err != nil {
		s.logger.Error("failed to list employee devices", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("failed to list employee devices", err)
	}
	return devices, nil
}

func (s *Service) checkDepartment(departmentID int64) error {
	if _, err := s.departments.Get(departmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return internal.NewValidationError(
				"Incorrect department_id. Department with supplied ID does not exist.",
				internal.ErrCodeInvalidReference)
		}
		return internal.NewInternalError("failed to check department", err)
	}
	return nil
}

// classifyWriteError disambiguates store constraint violations: the date
// check maps to the validity-window invariant, unique to the card id.
func (s *Service) classifyWriteError(err error, cardID int64) error {
	if se, ok := repository.AsStoreError(err); ok {
		switch se.Kind {
		case repository.KindCheck:
			return internal.NewValidationError(
				"Card_finish_date must be bigger or equal card_start_date.",
				internal.ErrCodeDateInvariant)
		case repository.KindUnique:
			return internal.NewConflictError(
				fmt.Sprintf("Employee with card_id:%d already exist.", cardID),
				internal.ErrCodeDuplicateCard)
		default:
			return internal.NewValidationError(se.Detail, internal.ErrCodeValidationFailed)
		}
	}
	s.logger.Error("failed to write employee", "error", err)
	return internal.NewInternalError("failed to write employee", err)
}
