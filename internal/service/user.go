package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
)

var ErrSelfDeletion = errors.New("you cannot delete your own account")

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	UpdatePassword(ctx context.Context, id uint, hashed string) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultAdminPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	users, total, err := s.repo.FindAll(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, total, nil
}

func (s *UserService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hashed

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateUser rewrites the profile fields. The password changes only when
// a new one is given.
func (s *UserService) UpdateUser(ctx context.Context, user domain.User, newPassword string) (domain.User, error) {
	if _, err := s.repo.FindByID(ctx, user.ID); err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	if newPassword != "" {
		hashed, err := hashPassword(newPassword)
		if err != nil {
			return domain.User{}, err
		}
		if err = s.repo.UpdatePassword(ctx, user.ID, hashed); err != nil {
			return domain.User{}, fmt.Errorf("s.repo.UpdatePassword -> %w", err)
		}
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint, caller domain.Caller) error {
	if id == caller.UserID {
		return ErrSelfDeletion
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
