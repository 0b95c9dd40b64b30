package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, token, err := svc.Register(RegisterInput{
		Username:  "jane_doe",
		Email:     "jane@example.com",
		Password:  "password123",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.PasswordHash)

	loggedIn, loginToken, err := svc.Login("jane@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	input := RegisterInput{Username: "jane_doe", Email: "jane@example.com", Password: "password123", FirstName: "Jane", LastName: "Doe"}
	_, _, err := svc.Register(input)
	require.NoError(t, err)

	// Same username, different email.
	input.Email = "jane2@example.com"
	_, _, err = svc.Register(input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Same email, different username.
	input.Username = "jane_two"
	input.Email = "jane@example.com"
	_, _, err = svc.Register(input)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Register(RegisterInput{Username: "jane_doe", Email: "jane@example.com", Password: "password123", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	_, _, err = svc.Login("jane@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = svc.Login("nobody@example.com", "password123")
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "other-secret")

	token, err := other.GenerateToken(42)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
