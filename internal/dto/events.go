package dto

// VerificationCodeEvent is published to Kafka after the pending account (or a
// regenerated code) has been persisted, and consumed by the mail worker.
type VerificationCodeEvent struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	Code      string `json:"code"`
	ExpiresAt string `json:"expires_at"`
	Resend    bool   `json:"resend"`
}

const VerificationCodeEventKey = "user.verification_code"
