package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is created unverified at signup and flips to verified exactly once.
// VerificationCode/CodeExpiresAt are set while pending and cleared together
// on verification.
type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Username         string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash     string     `json:"-"`
	IsVerified       bool       `gorm:"not null;default:false" json:"is_verified"`
	VerificationCode *string    `json:"-"`
	CodeExpiresAt    *time.Time `json:"-"`
	Settings         *string    `gorm:"type:text" json:"-"`
	gorm.Model
}
