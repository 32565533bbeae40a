package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/helper"
	"github.com/dristi2006/expiry-date-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthServiceForTest(t *testing.T) (AuthService, *gorm.DB, *stubProducer) {
	t.Helper()
	db := newServiceDBForTest(t)
	producer := &stubProducer{}
	svc := NewAuthService(
		repository.NewUserRepository(db),
		producer,
		helper.SetupAuth(testSecret),
		helper.NewCodeGenerator(600),
	)
	return svc, db, producer
}

func storedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{}
	if err := db.First(user, "email = ?", email).Error; err != nil {
		t.Fatalf("load user %s: %v", email, err)
	}
	return user
}

func storedCode(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	user := storedUser(t, db, email)
	if user.VerificationCode == nil {
		t.Fatalf("user %s has no verification code", email)
	}
	return *user.VerificationCode
}

func TestSignupCreatesPendingAccount(t *testing.T) {
	svc, db, producer := newAuthServiceForTest(t)

	err := svc.Signup(dto.SignupRequest{Email: "A@X.com", Username: "a", Password: "p1"})
	require.NoError(t, err)

	user := storedUser(t, db, "a@x.com") // stored lowercased
	assert.False(t, user.IsVerified)
	assert.NotNil(t, user.VerificationCode)
	assert.NotNil(t, user.CodeExpiresAt)
	assert.NotEqual(t, "p1", user.PasswordHash)
	assert.Len(t, *user.VerificationCode, 6)

	require.Len(t, producer.published, 1)
	var event dto.VerificationCodeEvent
	require.NoError(t, json.Unmarshal(producer.published[0], &event))
	assert.Equal(t, "a@x.com", event.Email)
	assert.Equal(t, *user.VerificationCode, event.Code)
	assert.False(t, event.Resend)
}

func TestSignupValidatesInputs(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	assert.ErrorIs(t, svc.Signup(dto.SignupRequest{Username: "a", Password: "p"}), ErrValidation)
	assert.ErrorIs(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Password: "p"}), ErrValidation)
	assert.ErrorIs(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a"}), ErrValidation)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	require.NoError(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"}))

	err := svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "different", Password: "p1"})
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	err = svc.Signup(dto.SignupRequest{Email: "b@x.com", Username: "a", Password: "p1"})
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestSignupKeepsAccountWhenPublishFails(t *testing.T) {
	svc, db, producer := newAuthServiceForTest(t)
	producer.fail = true

	err := svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"})
	assert.ErrorIs(t, err, ErrNotification)

	// the pending account survives so a resend can recover
	user := storedUser(t, db, "a@x.com")
	assert.False(t, user.IsVerified)
	assert.NotNil(t, user.VerificationCode)
}

func TestVerifySucceedsExactlyOnce(t *testing.T) {
	svc, db, _ := newAuthServiceForTest(t)
	require.NoError(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"}))
	code := storedCode(t, db, "a@x.com")

	resp, err := svc.Verify("a@x.com", code)
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Username)
	assert.NotEmpty(t, resp.Token)

	user := storedUser(t, db, "a@x.com")
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.VerificationCode)
	assert.Nil(t, user.CodeExpiresAt)

	// second verify with the same code must fail as invalid, not expired
	_, err = svc.Verify("a@x.com", code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyRejectsWrongCode(t *testing.T) {
	svc, db, _ := newAuthServiceForTest(t)
	require.NoError(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"}))
	code := storedCode(t, db, "a@x.com")

	wrong := "123456"
	if wrong == code {
		wrong = "654321"
	}

	_, err := svc.Verify("a@x.com", wrong)
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = svc.Verify("nobody@x.com", code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyRejectsExpiredCode(t *testing.T) {
	svc, db, _ := newAuthServiceForTest(t)
	require.NoError(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"}))
	code := storedCode(t, db, "a@x.com")

	past := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&domain.User{}).
		Where("email = ?", "a@x.com").
		Update("code_expires_at", past).Error)

	_, err := svc.Verify("a@x.com", code)
	assert.ErrorIs(t, err, ErrCodeExpired)

	// the stale code stays in place for a resend
	assert.Equal(t, code, storedCode(t, db, "a@x.com"))
}

func TestResendInvalidatesOldCode(t *testing.T) {
	svc, db, producer := newAuthServiceForTest(t)
	require.NoError(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"}))
	oldCode := storedCode(t, db, "a@x.com")

	require.NoError(t, svc.Resend("a@x.com"))
	newCode := storedCode(t, db, "a@x.com")
	require.NotEqual(t, oldCode, newCode)

	_, err := svc.Verify("a@x.com", oldCode)
	assert.ErrorIs(t, err, ErrInvalidCode)

	resp, err := svc.Verify("a@x.com", newCode)
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Username)

	require.Len(t, producer.published, 2)
	var event dto.VerificationCodeEvent
	require.NoError(t, json.Unmarshal(producer.published[1], &event))
	assert.True(t, event.Resend)
}

func TestResendRejectsUnknownOrVerified(t *testing.T) {
	svc, db, _ := newAuthServiceForTest(t)

	assert.ErrorIs(t, svc.Resend("nobody@x.com"), ErrNotFoundOrVerified)

	require.NoError(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"}))
	code := storedCode(t, db, "a@x.com")
	_, err := svc.Verify("a@x.com", code)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Resend("a@x.com"), ErrNotFoundOrVerified)
}

func TestLoginRequiresVerification(t *testing.T) {
	svc, db, _ := newAuthServiceForTest(t)
	require.NoError(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"}))

	// correct password, still pending
	_, err := svc.Login("a@x.com", "p1")
	assert.ErrorIs(t, err, ErrUnverifiedAccount)

	code := storedCode(t, db, "a@x.com")
	_, err = svc.Verify("a@x.com", code)
	require.NoError(t, err)

	_, err = svc.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email and wrong password are indistinguishable
	_, err = svc.Login("nobody@x.com", "p1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login("a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginTokenPassesGuardValidation(t *testing.T) {
	svc, db, _ := newAuthServiceForTest(t)
	require.NoError(t, svc.Signup(dto.SignupRequest{Email: "a@x.com", Username: "a", Password: "p1"}))
	code := storedCode(t, db, "a@x.com")

	resp, err := svc.Verify("a@x.com", code)
	require.NoError(t, err)

	auth := helper.SetupAuth(testSecret)
	claims, err := auth.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.NotZero(t, claims.UserID)
}
