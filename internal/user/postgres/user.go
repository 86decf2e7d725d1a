package postgres

import (
	"errors"

	"gorm.io/gorm"

	userDatamodel "pacs/internal/core/datamodel/user"
	"pacs/internal/repository"
	"pacs/internal/user"
)

// UserRepository backs both the admin CRUD surface and the auth flow's
// principal lookup.
type UserRepository struct {
	*repository.Repository[userDatamodel.User]
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{
		Repository: repository.New[userDatamodel.User](db),
	}
}

func (r *UserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.DB().Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
