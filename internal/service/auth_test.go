package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

type fakeAuthUserRepo struct {
	byEmail map[string]domain.User
}

func newFakeAuthUserRepo() *fakeAuthUserRepo {
	return &fakeAuthUserRepo{byEmail: make(map[string]domain.User)}
}

func (f *fakeAuthUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	user.ID = uint(len(f.byEmail) + 1)
	f.byEmail[user.Email] = user

	return user, nil
}

func (f *fakeAuthUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("stores a hashed password and the default role", func(t *testing.T) {
		repo := newFakeAuthUserRepo()
		svc := NewAuthService(repo)

		user, err := svc.Signup(context.Background(), domain.User{
			Email:     "jane@example.com",
			Password:  "password1",
			FirstName: "Jane",
			LastName:  "Doe",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)

		stored := repo.byEmail["jane@example.com"]
		assert.NotEqual(t, "password1", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password1")))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := newFakeAuthUserRepo()
		svc := NewAuthService(repo)

		_, err := svc.Signup(context.Background(), domain.User{Email: "jane@example.com", Password: "password1"})
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), domain.User{Email: "jane@example.com", Password: "password2"})
		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "jane@example.com", Password: "password1"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "jane@example.com", "password1")

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "jane@example.com", "nope")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "password1")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
