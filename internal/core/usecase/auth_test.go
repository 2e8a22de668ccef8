package usecase

import (
	"context"
	"testing"
	"time"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepository struct {
	usersByEmail map[string]*domain.User
	created      []*domain.User
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{usersByEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.usersByEmail[user.Email] = user
	r.created = append(r.created, user)
	return nil
}

func (r *stubUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.usersByEmail[email], nil
}

func (r *stubUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range r.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

type stubTokenService struct {
	token string
}

func (s *stubTokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	return s.token, nil
}

func (s *stubTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	if tokenString != s.token {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.Claims{}, nil
}

func TestRegisterUser(t *testing.T) {
	t.Run("creates user and issues token", func(t *testing.T) {
		repo := newStubUserRepository()
		uc := NewRegisterUserUseCase(repo, &stubTokenService{token: "issued"}, time.Hour)

		user, token, err := uc.Execute(context.Background(), "buyer@example.com", "Test Buyer", "hunter22", domain.RoleBuyer)

		require.NoError(t, err)
		assert.Equal(t, "issued", token)
		assert.Equal(t, "buyer@example.com", user.Email)
		assert.NotEqual(t, "hunter22", user.PasswordHash)
		assert.True(t, user.CheckPassword("hunter22"))
		require.Len(t, repo.created, 1)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := newStubUserRepository()
		uc := NewRegisterUserUseCase(repo, &stubTokenService{token: "issued"}, time.Hour)

		_, _, err := uc.Execute(context.Background(), "buyer@example.com", "First", "hunter22", domain.RoleBuyer)
		require.NoError(t, err)

		user, token, err := uc.Execute(context.Background(), "buyer@example.com", "Second", "hunter23", domain.RoleBuyer)
		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, domain.ErrEmailInUse)
	})

	t.Run("unknown role falls back to buyer", func(t *testing.T) {
		repo := newStubUserRepository()
		uc := NewRegisterUserUseCase(repo, &stubTokenService{token: "issued"}, time.Hour)

		user, _, err := uc.Execute(context.Background(), "someone@example.com", "Someone", "hunter22", "admin")

		require.NoError(t, err)
		assert.Equal(t, domain.RoleBuyer, user.Role)
	})
}

func TestLoginUser(t *testing.T) {
	seedUser := func(t *testing.T, repo *stubUserRepository) *domain.User {
		t.Helper()
		user, err := domain.NewUser("buyer@example.com", "Test Buyer", "hunter22", domain.RoleBuyer)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), user))
		return user
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		repo := newStubUserRepository()
		seeded := seedUser(t, repo)
		uc := NewLoginUserUseCase(repo, &stubTokenService{token: "issued"}, time.Hour)

		user, token, err := uc.Execute(context.Background(), "buyer@example.com", "hunter22")

		require.NoError(t, err)
		assert.Equal(t, "issued", token)
		assert.Equal(t, seeded.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newStubUserRepository()
		seedUser(t, repo)
		uc := NewLoginUserUseCase(repo, &stubTokenService{token: "issued"}, time.Hour)

		user, token, err := uc.Execute(context.Background(), "buyer@example.com", "wrong")

		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := newStubUserRepository()
		uc := NewLoginUserUseCase(repo, &stubTokenService{token: "issued"}, time.Hour)

		user, token, err := uc.Execute(context.Background(), "ghost@example.com", "hunter22")

		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
