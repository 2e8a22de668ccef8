package token_adapter

import (
	"context"
	"testing"
	"time"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "buyer@example.com",
		Name:  "Test Buyer",
		Role:  domain.RoleBuyer,
	}
}

func TestNewTokenService_RequiresSigningKey(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)
	user := testUser()

	token, err := svc.GenerateToken(context.Background(), user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), "not.a.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), testUser(), -time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewTokenService("key-one")
	require.NoError(t, err)
	verifier, err := NewTokenService("key-two")
	require.NoError(t, err)

	token, err := issuer.GenerateToken(context.Background(), testUser(), time.Hour)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(context.Background(), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
