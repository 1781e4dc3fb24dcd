package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("Abcdef1")

	assert.NoError(t, err)
	assert.NotEqual(t, "Abcdef1", hash)
	assert.True(t, CheckPasswordHash("Abcdef1", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(SessionClaims{
		UserID: "42",
		Name:   "User A",
		Email:  "a@x.com",
		Role:   "admin",
	})
	assert.NoError(t, err)

	session, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", session.UserID)
	assert.Equal(t, "User A", session.Name)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, "admin", session.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateToken(SessionClaims{UserID: "1", Email: "a@x.com", Role: "user"})
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(SessionClaims{UserID: "1"})
	assert.Error(t, err)
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+8801712345678"))
	assert.True(t, ValidatePhone("(880) 171-234-5678"))
	assert.False(t, ValidatePhone("not-a-number"))
	assert.False(t, ValidatePhone("0"))
}
