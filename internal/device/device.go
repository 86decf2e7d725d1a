package device

import (
	departmentDatamodel "pacs/internal/core/datamodel/department"
	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	Create(dev *deviceDatamodel.Device) error
	Get(id int64) (*deviceDatamodel.Device, error)
	// GetByImei returns (nil, nil) when no device carries the identifier.
	GetByImei(imei string) (*deviceDatamodel.Device, error)
	List(pageSize, startIndex int) ([]deviceDatamodel.Device, error)
	Update(dev *deviceDatamodel.Device) error
	Delete(dev *deviceDatamodel.Device) error
}

type DepartmentRepositoryAPI interface {
	Get(id int64) (*departmentDatamodel.Department, error)
}

type EmployeeRepositoryAPI interface {
	Get(id int64) (*employeeDatamodel.Employee, error)
}

// GrantRepositoryAPI covers the device side of the access-grant relation.
type GrantRepositoryAPI interface {
	Create(employeeID, deviceID int64) error
	Delete(employeeID, deviceID int64) error
	EmployeesForDevice(deviceID int64) ([]employeeDatamodel.Employee, error)
	ClearByDevice(deviceID int64) error
}
