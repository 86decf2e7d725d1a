package user

import (
	"errors"
	"fmt"
	"log/slog"

	"pacs/internal"
	"pacs/internal/auth"
	userDatamodel "pacs/internal/core/datamodel/user"
	"pacs/internal/repository"
)

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Create stores a new principal with a one-way password hash; the
// plaintext never leaves this call.
func (s *Service) Create(dto CreateUserDTO) (*userDatamodel.User, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := &userDatamodel.User{
		Email:        dto.Email,
		PasswordHash: hash,
		IsSuperuser:  dto.IsSuperuser,
	}

	if err := s.repo.Create(u); err != nil {
		if se, ok := repository.AsStoreError(err); ok && se.Kind == repository.KindUnique {
			return nil, internal.NewConflictError(
				fmt.Sprintf("User with email:%s already exist.", dto.Email),
				internal.ErrCodeDuplicateEmail)
		}
		s.logger.Error("failed to create user", "email", dto.Email, "error", err)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created", "user_id", u.ID, "superuser", u.IsSuperuser)
	return u, nil
}

func (s *Service) Get(id int64) (*userDatamodel.User, error) {
	u, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, internal.NewNotFoundError(
				"User with supplied ID does not exist.",
				internal.ErrCodeUserNotFound)
		}
		s.logger.Error("failed to get user", "user_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get user", err)
	}
	return u, nil
}

func (s *Service) List(pageSize, startIndex int) ([]userDatamodel.User, error) {
	users, err := s.repo.List(pageSize, startIndex)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}
	return users, nil
}

func (s *Service) Update(id int64, dto UpdateUserDTO) (*userDatamodel.User, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	u, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Password != nil {
		hash, err := auth.HashPassword(*dto.Password, s.bcryptCost)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		u.PasswordHash = hash
	}
	if dto.IsSuperuser != nil {
		u.IsSuperuser = *dto.IsSuperuser
	}

	if err := s.repo.Update(u); err != nil {
		if se, ok := repository.AsStoreError(err); ok && se.Kind == repository.KindUnique {
			return nil, internal.NewConflictError(
				fmt.Sprintf("User with email:%s already exist.", u.Email),
				internal.ErrCodeDuplicateEmail)
		}
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update user", err)
	}

	return u, nil
}

func (s *Service) Delete(id int64) error {
	u, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(u); err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return internal.NewInternalError("failed to delete user", err)
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
