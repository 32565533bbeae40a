package repository

import (
	"testing"
	"time"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"github.com/dristi2006/expiry-date-tracker/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingUser(email, username, code string, expiresAt time.Time) *domain.User {
	return &domain.User{
		Email:            email,
		Username:         username,
		PasswordHash:     "$2a$10$fakefakefakefakefakefake",
		IsVerified:       false,
		VerificationCode: &code,
		CodeExpiresAt:    &expiresAt,
	}
}

func TestUserRepositoryCreateEnforcesUniqueness(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)

	exp := time.Now().Add(10 * time.Minute)
	_, err := repo.CreateUser(pendingUser("a@x.com", "a", "123456", exp))
	require.NoError(t, err)

	_, err = repo.CreateUser(pendingUser("a@x.com", "other", "123456", exp))
	require.Error(t, err)
	assert.True(t, helper.IsDuplicateKey(err), "duplicate email should surface as a duplicate key error, got: %v", err)

	_, err = repo.CreateUser(pendingUser("b@x.com", "a", "123456", exp))
	require.Error(t, err)
	assert.True(t, helper.IsDuplicateKey(err), "duplicate username should surface as a duplicate key error, got: %v", err)
}

func TestUserRepositoryMarkVerifiedClearsCodeOnce(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)

	exp := time.Now().Add(10 * time.Minute)
	_, err := repo.CreateUser(pendingUser("a@x.com", "a", "654321", exp))
	require.NoError(t, err)

	found, err := repo.FindPendingByEmailAndCode("a@x.com", "654321")
	require.NoError(t, err)
	assert.Equal(t, "a", found.Username)

	ok, err := repo.MarkVerified("a@x.com", "654321")
	require.NoError(t, err)
	assert.True(t, ok)

	user, err := repo.FindUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.VerificationCode)
	assert.Nil(t, user.CodeExpiresAt)

	// replaying the same code must not match anything
	ok, err = repo.MarkVerified("a@x.com", "654321")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.FindPendingByEmailAndCode("a@x.com", "654321")
	require.Error(t, err)
}

func TestUserRepositoryUpdateCodeOnlyWhilePending(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)

	exp := time.Now().Add(10 * time.Minute)
	_, err := repo.CreateUser(pendingUser("a@x.com", "a", "111111", exp))
	require.NoError(t, err)

	newExp := time.Now().Add(10 * time.Minute)
	ok, err := repo.UpdateCode("a@x.com", "222222", newExp)
	require.NoError(t, err)
	assert.True(t, ok)

	// the old code no longer matches
	_, err = repo.FindPendingByEmailAndCode("a@x.com", "111111")
	require.Error(t, err)
	_, err = repo.FindPendingByEmailAndCode("a@x.com", "222222")
	require.NoError(t, err)

	ok, err = repo.MarkVerified("a@x.com", "222222")
	require.NoError(t, err)
	require.True(t, ok)

	// verified accounts never get a new code
	ok, err = repo.UpdateCode("a@x.com", "333333", newExp)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepositorySettingsRoundTrip(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)

	exp := time.Now().Add(10 * time.Minute)
	user, err := repo.CreateUser(pendingUser("a@x.com", "a", "111111", exp))
	require.NoError(t, err)

	raw, err := repo.GetSettings(user.ID)
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, repo.SaveSettings(user.ID, `{"theme":"dark"}`))

	raw, err = repo.GetSettings(user.ID)
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.JSONEq(t, `{"theme":"dark"}`, *raw)

	err = repo.SaveSettings(9999, `{}`)
	require.Error(t, err)
}
