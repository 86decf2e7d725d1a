package device

import (
	"errors"
	"fmt"
	"log/slog"

	"pacs/internal"
	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
	"pacs/internal/repository"
)

type Service struct {
	repo        RepositoryAPI
	departments DepartmentRepositoryAPI
	employees   EmployeeRepositoryAPI
	grants      GrantRepositoryAPI
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, departments DepartmentRepositoryAPI, employees EmployeeRepositoryAPI, grants GrantRepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		departments: departments,
		employees:   employees,
		grants:      grants,
		logger:      logger,
	}
}

func (s *Service) Create(dto CreateDeviceDTO) (*deviceDatamodel.Device, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if err := s.checkDepartment(dto.DepartmentID); err != nil {
		return nil, err
	}

	dev := &deviceDatamodel.Device{
		Name:         dto.Name,
		Imei:         dto.Imei,
		Route:        deviceDatamodel.Route(dto.Route),
		DepartmentID: dto.DepartmentID,
		Opened:       dto.Opened,
	}

	if err := s.repo.Create(dev); err != nil {
		if se, ok := repository.AsStoreError(err); ok && se.Kind == repository.KindUnique {
			return nil, internal.NewConflictError(
				fmt.Sprintf("Device with imei:%s already exist.", dto.Imei),
				internal.ErrCodeDuplicateImei)
		}
		s.logger.Error("failed to create device", "imei", dto.Imei, "error", err)
		return nil, internal.NewInternalError("failed to create device", err)
	}

	s.logger.Info("device created", "device_id", dev.ID, "imei", dev.Imei)
	return dev, nil
}

func (s *Service) Get(id int64) (*deviceDatamodel.Device, error) {
	dev, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, internal.NewNotFoundError(
				"Device with supplied ID does not exist.",
				internal.ErrCodeDeviceNotFound)
		}
		s.logger.Error("failed to get device", "device_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get device", err)
	}
	return dev, nil
}

func (s *Service) List(pageSize, startIndex int) ([]deviceDatamodel.Device, error) {
	devs, err := s.repo.List(pageSize, startIndex)
	if err != nil {
		s.logger.Error("failed to list devices", "error", err)
		return nil, internal.NewInternalError("failed to list devices", err)
	}
	return devs, nil
}

func (s *Service) Update(id int64, dto UpdateDeviceDTO) (*deviceDatamodel.Device, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	dev, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if dto.DepartmentID != nil {
		if err := s.checkDepartment(*dto.DepartmentID); err != nil {
			return nil, err
		}
		dev.DepartmentID = *dto.DepartmentID
	}
	if dto.Name != nil {
		dev.Name = *dto.Name
	}
	if dto.Imei != nil {
		dev.Imei = *dto.Imei
	}
	if dto.Route != nil {
		dev.Route = deviceDatamodel.Route(*dto.Route)
	}
	if dto.Opened != nil {
		dev.Opened = *dto.Opened
	}

	if err := s.repo.Update(dev); err != nil {
		if se, ok := repository.AsStoreError(err); ok && se.Kind == repository.KindUnique {
			return nil, internal.NewConflictError(
				fmt.Sprintf("Device with imei:%s already exist.", dev.Imei),
				internal.ErrCodeDuplicateImei)
		}
		s.logger.Error("failed to update device", "device_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update device", err)
	}

	return dev, nil
}

// Delete empties the device's grant set before removing the row. The two
// writes commit separately.
func (s *Service) Delete(id int64) error {
	dev, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.grants.ClearByDevice(id); err != nil {
		s.logger.Error("failed to clear device grants", "device_id", id, "error", err)
		return internal.NewInternalError("failed to clear device access grants", err)
	}

	if err := s.repo.Delete(dev); err != nil {
		s.logger.Error("failed to delete device", "device_id", id, "error", err)
		return internal.NewInternalError("failed to delete device", err)
	}

	s.logger.Info("device deleted", "device_id", id)
	return nil
}

// GetEmployees lists the employees granted access through this device.
func (s *Service) GetEmployees(id int64) ([]employeeDatamodel.Employee, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	employees, err := s.grants.EmployeesForDevice(id)
	if err != nil {
		s.logger.Error("failed to list device employees", "device_id", id, "error", err)
		return nil, internal.NewInternalError("failed to list device employees", err)
	}
	return employees, nil
}

// AddEmployee grants an employee access to a device. Both endpoints must
// exist; granting the same pair twice is a conflict.
func (s *Service) AddEmployee(dto GrantAccessDTO) error {
	if err := dto.Validate(); err != nil {
		return internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if err := s.checkPairExists(dto.DeviceID, dto.EmployeeID); err != nil {
		return err
	}

	if err := s.grants.Create(dto.EmployeeID, dto.DeviceID); err != nil {
		if se, ok := repository.AsStoreError(err); ok && se.Kind == repository.KindUnique {
			return internal.NewConflictError(
				"Employee already has access to this device!",
				internal.ErrCodeDuplicateGrant)
		}
		s.logger.Error("failed to grant access",
			"device_id", dto.DeviceID, "employee_id", dto.EmployeeID, "error", err)
		return internal.NewInternalError("failed to grant access", err)
	}

	s.logger.Info("access granted", "device_id", dto.DeviceID, "employee_id", dto.EmployeeID)
	return nil
}

// RemoveEmployee revokes a grant. Revoking an absent grant is a no-op.
func (s *Service) RemoveEmployee(deviceID, employeeID int64) error {
	if err := s.checkPairExists(deviceID, employeeID); err != nil {
		return err
	}

	if err := s.grants.Delete(employeeID, deviceID); err != nil {
		s.logger.Error("failed to revoke access",
			"device_id", deviceID, "employee_id", employeeID, "error", err)
		return internal.NewInternalError("failed to revoke access", err)
	}

	s.logger.Info("access revoked", "device_id", deviceID, "employee_id", employeeID)
	return nil
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

func (s *Service) checkPairExists(deviceID, employeeID int64) error {
	_, devErr := s.repo.Get(deviceID)
	_, empErr := s.employees.Get(employeeID)
	if errors.Is(devErr, repository.ErrNotFound) || errors.Is(empErr, repository.ErrNotFound) {
		return internal.NewValidationError(
			"Incorrect employee_id or device_id",
			internal.ErrCodeInvalidReference)
	}
	if devErr != nil {
		return internal.NewInternalError("failed to check device", devErr)
	}
	if empErr != nil {
		return internal.NewInternalError("failed to check employee", empErr)
	}
	return nil
}
