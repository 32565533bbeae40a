package dto

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignupResponse struct {
	Needs2FA bool `json:"needs2FA"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthClaims is the decoded bearer token payload the guard stores in the
// request context.
type AuthClaims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Iat      int64  `json:"iat"`
	Exp      int64  `json:"exp"`
}
