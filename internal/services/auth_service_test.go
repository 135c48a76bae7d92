package services_test

import (
	"testing"

	"souq/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginAndValidate(t *testing.T) {
	service, err := services.NewAuthService("admin", "admin123", "test_jwt_secret")
	require.NoError(t, err)

	token, err := service.Login("admin", "admin123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "admin", claims["role"])
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	service, err := services.NewAuthService("admin", "admin123", "test_jwt_secret")
	require.NoError(t, err)

	_, err = service.Login("admin", "wrong-password")
	assert.Error(t, err)

	_, err = service.Login("someone-else", "admin123")
	assert.Error(t, err)
}

func TestAuthService_ValidateRejectsForeignToken(t *testing.T) {
	issuer, err := services.NewAuthService("admin", "admin123", "secret-a")
	require.NoError(t, err)
	verifier, err := services.NewAuthService("admin", "admin123", "secret-b")
	require.NoError(t, err)

	token, err := issuer.Login("admin", "admin123")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)

	_, err = verifier.ValidateToken("not-a-token")
	assert.Error(t, err)
}
