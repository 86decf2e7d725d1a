package postgres

import (
	"gorm.io/gorm"

	"pacs/internal/accessgrant"
	accessgrantDatamodel "pacs/internal/core/datamodel/accessgrant"
	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
	"pacs/internal/repository"
)

type AccessGrantRepository struct {
	db *gorm.DB
}

func NewAccessGrantRepository(db *gorm.DB) accessgrant.RepositoryAPI {
	return &AccessGrantRepository{db: db}
}

func (r *AccessGrantRepository) Create(employeeID, deviceID int64) error {
	grant := accessgrantDatamodel.AccessGrant{
		EmployeeID: employeeID,
		DeviceID:   deviceID,
	}
	return repository.Classify(r.db.Create(&grant).Error)
}

// Delete is idempotent: removing an absent pair affects zero rows and is
// not an error.
func (r *AccessGrantRepository) Delete(employeeID, deviceID int64) error {
	return repository.Classify(r.db.
		Where("employee_id = ? AND device_id = ?", employeeID, deviceID).
		Delete(&accessgrantDatamodel.AccessGrant{}).Error)
}

func (r *AccessGrantRepository) Exists(employeeID, deviceID int64) (bool, error) {
	var count int64
	err := r.db.Model(&accessgrantDatamodel.AccessGrant{}).
		Where("employee_id = ? AND device_id = ?", employeeID, deviceID).
		Count(&count).Error
	return count > 0, err
}

func (r *AccessGrantRepository) DevicesForEmployee(employeeID int64) ([]deviceDatamodel.Device, error) {
	devices := make([]deviceDatamodel.Device, 0)
	err := r.db.
		Joins("JOIN access_grants ON access_grants.device_id = devices.id").
		Where("access_grants.employee_id = ?", employeeID).
		Order("devices.id ASC").
		Find(&devices).Error
	return devices, err
}

func (r *AccessGrantRepository) EmployeesForDevice(deviceID int64) ([]employeeDatamodel.Employee, error) {
	employees := make([]employeeDatamodel.Employee, 0)
	err := r.db.
		Joins("JOIN access_grants ON access_grants.employee_id = employees.id").
		Where("access_grants.device_id = ?", deviceID).
		Order("employees.id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *AccessGrantRepository) ClearByEmployee(employeeID int64) error {
	return repository.Classify(r.db.
		Where("employee_id = ?", employeeID).
		Delete(&accessgrantDatamodel.AccessGrant{}).Error)
}

func (r *AccessGrantRepository) ClearByDevice(deviceID int64) error {
	return repository.Classify(r.db.
		Where("device_id = ?", deviceID).
		Delete(&accessgrantDatamodel.AccessGrant{}).Error)
}
