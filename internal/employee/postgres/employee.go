package postgres

import (
	"errors"

	"gorm.io/gorm"

	employeeDatamodel "pacs/internal/core/datamodel/employee"
	"pacs/internal/employee"
	"pacs/internal/repository"
)

type EmployeeRepository struct {
	*repository.Repository[employeeDatamodel.Employee]
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{
		Repository: repository.New[employeeDatamodel.Employee](db),
	}
}

// GetByCardID looks up the holder of a card for the entry decision path.
// A missing holder is not an error here.
func (r *EmployeeRepository) GetByCardID(cardID int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.DB().Where("card_id = ?", cardID).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}
