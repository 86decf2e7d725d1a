package accessgrant

import (
	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
)

// RepositoryAPI is the join-table contract between employees and devices.
// The relation is symmetric: a grant created from either side is the same
// row, and clearing either endpoint removes the same rows.
type RepositoryAPI interface {
	Create(employeeID, deviceID int64) error
	Delete(employeeID, deviceID int64) error
	Exists(employeeID, deviceID int64) (bool, error)
	DevicesForEmployee(employeeID int64) ([]deviceDatamodel.Device, error)
	EmployeesForDevice(deviceID int64) ([]employeeDatamodel.Employee, error)
	ClearByEmployee(employeeID int64) error
	ClearByDevice(deviceID int64) error
}
