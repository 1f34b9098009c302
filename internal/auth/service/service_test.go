package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/database/models"
)

type mockUserRepository struct {
	users map[int64]*models.User
}

var _ auth.UserRepository = &mockUserRepository{}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *mockUserRepository) UpdatePassword(_ context.Context, userID int64, hash string) error {
	if u, ok := m.users[userID]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func setup(t *testing.T) (Service, *mockUserRepository) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secreto1!"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{users: map[int64]*models.User{
		1: {ID: 1, Name: "ana", Email: "ana@empresa.com", Role: "admin", PasswordHash: string(hash)},
	}}
	return NewService(repo, []byte("test-secret"), time.Hour), repo
}

func TestLogin(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "ana@empresa.com", "Secreto1!")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, auth.RoleAdmin, res.Actor.Role)
	assert.Equal(t, int64(1), res.Actor.UserID)

	claims, err := auth.ParseToken([]byte("test-secret"), res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginFailures(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.Login(ctx, "not-an-email", "x")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "nadie@empresa.com", "Secreto1!")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ana@empresa.com", "Otro1!aa")
		assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
	})
}

func TestChangePassword(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	actor := auth.Actor{UserID: 1, Name: "ana", Role: auth.RoleAdmin}

	t.Run("mismatched confirmation", func(t *testing.T) {
		err := svc.ChangePassword(ctx, actor, "Secreto1!", "Nuevo1!aa", "Nuevo1!bb")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("weak password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, actor, "Secreto1!", "corta", "corta")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, actor, "Equivocada1!", "Nuevo1!aa", "Nuevo1!aa")
		assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
	})

	t.Run("success", func(t *testing.T) {
		err := svc.ChangePassword(ctx, actor, "Secreto1!", "Nuevo1!aa", "Nuevo1!aa")
		require.NoError(t, err)

		stored := repo.users[1].PasswordHash
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("Nuevo1!aa")))
	})
}
