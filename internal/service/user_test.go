package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

type fakeUserRepo struct {
	users map[uint]domain.User

	passwordUpdates map[uint]string
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	f := &fakeUserRepo{
		users:           make(map[uint]domain.User),
		passwordUpdates: make(map[uint]string),
	}
	for _, user := range users {
		f.users[user.ID] = user
	}

	return f
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	user.ID = uint(len(f.users) + 1)
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user domain.User) (domain.User, error) {
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uint, hashed string) error {
	f.passwordUpdates[id] = hashed

	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context, offset, limit int) ([]domain.User, int64, error) {
	return nil, int64(len(f.users)), nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)

	return nil
}

func TestUserService_DeleteUser(t *testing.T) {
	admin := domain.Caller{UserID: 1, Role: domain.RoleAdmin}

	t.Run("admins cannot delete themselves", func(t *testing.T) {
		repo := newFakeUserRepo(domain.User{ID: 1, Role: domain.RoleAdmin})
		svc := NewUserService(repo)

		err := svc.DeleteUser(context.Background(), 1, admin)

		assert.ErrorIs(t, err, ErrSelfDeletion)
	})

	t.Run("deletes another user", func(t *testing.T) {
		repo := newFakeUserRepo(
			domain.User{ID: 1, Role: domain.RoleAdmin},
			domain.User{ID: 2, Role: domain.RoleUser},
		)
		svc := NewUserService(repo)

		err := svc.DeleteUser(context.Background(), 2, admin)

		require.NoError(t, err)
		_, exists := repo.users[2]
		assert.False(t, exists)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := newFakeUserRepo(domain.User{ID: 1, Role: domain.RoleAdmin})
		svc := NewUserService(repo)

		err := svc.DeleteUser(context.Background(), 99, admin)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("rotates the password only when one is given", func(t *testing.T) {
		repo := newFakeUserRepo(domain.User{ID: 2, Email: "jane@example.com"})
		svc := NewUserService(repo)

		_, err := svc.UpdateUser(context.Background(), domain.User{ID: 2, Email: "jane@example.com"}, "")
		require.NoError(t, err)
		assert.Empty(t, repo.passwordUpdates)

		_, err = svc.UpdateUser(context.Background(), domain.User{ID: 2, Email: "jane@example.com"}, "newpassword1")
		require.NoError(t, err)
		assert.NotEmpty(t, repo.passwordUpdates[2])
		assert.NotEqual(t, "newpassword1", repo.passwordUpdates[2])
	})
}

func TestUserService_ListUsers(t *testing.T) {
	repo := newFakeUserRepo(domain.User{ID: 1}, domain.User{ID: 2})
	svc := NewUserService(repo)

	_, total, err := svc.ListUsers(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
