package user

import (
	userDatamodel "pacs/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	Create(u *userDatamodel.User) error
	Get(id int64) (*userDatamodel.User, error)
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(email string) (*userDatamodel.User, error)
	List(pageSize, startIndex int) ([]userDatamodel.User, error)
	Update(u *userDatamodel.User) error
	Delete(u *userDatamodel.User) error
}
