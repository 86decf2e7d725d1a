package postgres

import (
	"gorm.io/gorm"

	departmentDatamodel "pacs/internal/core/datamodel/department"
	"pacs/internal/department"
	"pacs/internal/repository"
)

type DepartmentRepository struct {
	*repository.Repository[departmentDatamodel.Department]
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{
		Repository: repository.New[departmentDatamodel.Department](db),
	}
}
