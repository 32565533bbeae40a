package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate them to
// HTTP statuses and stable error codes; anything not listed here is treated
// as an infrastructure fault and reported generically.
var (
	ErrValidation         = errors.New("invalid inputs")
	ErrDuplicateAccount   = errors.New("email or username already exists")
	ErrInvalidCode        = errors.New("invalid code or email")
	ErrCodeExpired        = errors.New("code expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnverifiedAccount  = errors.New("please verify your email before logging in")
	ErrNotFoundOrVerified = errors.New("user not found or already verified")
	ErrNotification       = errors.New("could not send verification email")
	ErrNotFound           = errors.New("not found")
)
