package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/helper"
	"github.com/dristi2006/expiry-date-tracker/internal/interfaces"
	"github.com/dristi2006/expiry-date-tracker/internal/repository"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(input dto.SignupRequest) error
	Verify(email, code string) (*dto.TokenResponse, error)
	Login(email, password string) (*dto.TokenResponse, error)
	Resend(email string) error
}

type authService struct {
	repo     repository.UserRepository
	producer interfaces.ProducerHandler
	auth     helper.Auth
	codes    helper.CodeGenerator
}

func NewAuthService(
	repo repository.UserRepository,
	producer interfaces.ProducerHandler,
	auth helper.Auth,
	codes helper.CodeGenerator,
) AuthService {
	return &authService{
		repo:     repo,
		producer: producer,
		auth:     auth,
		codes:    codes,
	}
}

// Signup creates a pending account and queues the verification mail. The
// account is persisted before the publish is attempted, so a failed publish
// still leaves the user able to resend.
func (s *authService) Signup(input dto.SignupRequest) error {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)
	password := input.Password

	if email == "" || username == "" || password == "" {
		return ErrValidation
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return err
	}

	code, expiresAt, err := s.codes.Generate()
	if err != nil {
		return err
	}

	newUser := &domain.User{
		Email:            email,
		Username:         username,
		PasswordHash:     hash,
		IsVerified:       false,
		VerificationCode: &code,
		CodeExpiresAt:    &expiresAt,
	}

	if _, err := s.repo.CreateUser(newUser); err != nil {
		// the unique constraint is the single source of truth for
		// duplicates; there is no pre-check to race against
		if helper.IsDuplicateKey(err) {
			return ErrDuplicateAccount
		}
		log.Printf("create user error: %v", err)
		return err
	}

	return s.publishCode(newUser.ID, email, code, expiresAt, false)
}

// Verify moves a pending account to verified and mints its first token. The
// verified transition is a conditional update, so a code that was already
// consumed or overwritten loses the race and fails as invalid.
func (s *authService) Verify(email, code string) (*dto.TokenResponse, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return nil, ErrValidation
	}

	user, err := s.repo.FindPendingByEmailAndCode(email, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if user.CodeExpiresAt == nil || time.Now().After(*user.CodeExpiresAt) {
		// the stale code stays in place so a resend can replace it
		return nil, ErrCodeExpired
	}

	ok, err := s.repo.MarkVerified(email, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCode
	}

	token, err := s.auth.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, Username: user.Username}, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password. The unverified case is more specific, matching the original
// behavior even though it leaks verification status.
func (s *authService) Login(email, password string) (*dto.TokenResponse, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find user by email error: %v", err)
		}
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrUnverifiedAccount
	}

	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, Username: user.Username}, nil
}

// Resend overwrites the stored code before mailing, so only the newest code
// is ever acceptable.
func (s *authService) Resend(email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrValidation
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundOrVerified
		}
		return err
	}
	if user.IsVerified {
		return ErrNotFoundOrVerified
	}

	code, expiresAt, err := s.codes.Generate()
	if err != nil {
		return err
	}

	ok, err := s.repo.UpdateCode(email, code, expiresAt)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFoundOrVerified
	}

	return s.publishCode(user.ID, email, code, expiresAt, true)
}

func (s *authService) publishCode(userID uint, email, code string, expiresAt time.Time, resend bool) error {
	event := dto.VerificationCodeEvent{
		UserID:    userID,
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		Resend:    resend,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.producer.PublishMessage([]byte(dto.VerificationCodeEventKey), payload); err != nil {
		log.Printf("publish verification code error: %v", err)
		return ErrNotification
	}
	return nil
}

// Emails are stored lowercased and trimmed, which makes lookups effectively
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
