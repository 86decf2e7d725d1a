package user

import (
	"errors"
	"strings"
)

type CreateUserDTO struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsSuperuser bool   `json:"is_superuser"`
}

func (dto CreateUserDTO) Validate() error {
	if dto.Email == "" || !strings.Contains(dto.Email, "@") {
		return errors.New("a valid email is required")
	}
	if dto.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// UpdateUserDTO carries partial updates; nil means "leave as is".
type UpdateUserDTO struct {
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

func (dto UpdateUserDTO) Validate() error {
	if dto.Email != nil && !strings.Contains(*dto.Email, "@") {
		return errors.New("a valid email is required")
	}
	if dto.Password != nil && *dto.Password == "" {
		return errors.New("password cannot be empty")
	}
	return nil
}
