package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("secret")

	token, err := auth.GenerateToken(7, "a", "a@x.com")
	require.NoError(t, err)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Greater(t, claims.Exp, time.Now().Unix())
}

func TestGenerateTokenRequiresIdentity(t *testing.T) {
	auth := SetupAuth("secret")

	_, err := auth.GenerateToken(0, "a", "a@x.com")
	assert.Error(t, err)
	_, err = auth.GenerateToken(7, "a", "")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := SetupAuth("secret-one").GenerateToken(7, "a", "a@x.com")
	require.NoError(t, err)

	_, err = SetupAuth("secret-two").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	// hand-rolled token signed with the right secret but already expired
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       float64(7),
		"username": "a",
		"email":    "a@x.com",
		"iat":      now.Add(-3 * time.Hour).Unix(),
		"exp":      now.Add(-time.Hour).Unix(),
	})
	tokenStr, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = SetupAuth("secret").VerifyToken(tokenStr)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	auth := SetupAuth("secret")

	_, err := auth.VerifyToken("")
	assert.Error(t, err)
	_, err = auth.VerifyToken("not.a.jwt")
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	auth := SetupAuth("secret")

	hash, err := auth.HashPassword("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash)

	assert.NoError(t, auth.VerifyPassword("p1", hash))
	assert.Error(t, auth.VerifyPassword("p2", hash))
}
