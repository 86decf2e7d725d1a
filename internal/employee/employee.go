package employee

import (
	departmentDatamodel "pacs/internal/core/datamodel/department"
	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	Create(emp *employeeDatamodel.Employee) error
	Get(id int64) (*employeeDatamodel.Employee, error)
	// GetByCardID returns (nil, nil) when no employee holds the card.
	GetByCardID(cardID int64) (*employeeDatamodel.Employee, error)
	List(pageSize, startIndex int) ([]employeeDatamodel.Employee, error)
	Update(emp *employeeDatamodel.Employee) error
	Delete(emp *employeeDatamodel.Employee) error
}

// DepartmentRepositoryAPI is the slice of the department store this
// service needs for reference checks.
type DepartmentRepositoryAPI interface {
	Get(id int64) (*departmentDatamodel.Department, error)
}

// GrantRepositoryAPI covers the employee side of the access-grant relation.
type GrantRepositoryAPI interface {
	DevicesForEmployee(employeeID int64) ([]deviceDatamodel.Device, error)
	ClearByEmployee(employeeID int64) error
}
