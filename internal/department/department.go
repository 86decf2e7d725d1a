package department

import (
	departmentDatamodel "pacs/internal/core/datamodel/department"
)

type RepositoryAPI interface {
	Create(dept *departmentDatamodel.Department) error
	Get(id int64) (*departmentDatamodel.Department, error)
	List(pageSize, startIndex int) ([]departmentDatamodel.Department, error)
	Update(dept *departmentDatamodel.Department) error
	Delete(dept *departmentDatamodel.Department) error
}
