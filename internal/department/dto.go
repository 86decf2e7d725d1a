package department

import "errors"

type CreateDepartmentDTO struct {
	Name string `json:"name"`
}

func (dto CreateDepartmentDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if len(dto.Name) > 30 {
		return errors.New("name must be at most 30 characters")
	}
	return nil
}

// UpdateDepartmentDTO carries partial updates; nil means "leave as is".
type UpdateDepartmentDTO struct {
	Name *string `json:"name,omitempty"`
}

func (dto UpdateDepartmentDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return errors.New("name cannot be empty")
	}
	if dto.Name != nil && len(*dto.Name) > 30 {
		return errors.New("name must be at most 30 characters")
	}
	return nil
}
