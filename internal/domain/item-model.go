package domain

import "gorm.io/gorm"

// Item rows are always scoped to the owning user; repositories never query
// them without a user id.
type Item struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	Name       string `gorm:"not null" json:"name"`
	Brand      string `json:"brand,omitempty"`
	Barcode    string `json:"barcode,omitempty"`
	ExpiryDate string `gorm:"not null" json:"expiry_date"`
	Quantity   int    `gorm:"not null;default:1" json:"quantity"`
	Unit       string `json:"unit,omitempty"`
	Category   string `json:"category,omitempty"`
	Location   string `json:"location,omitempty"`
	IsPriority bool   `gorm:"not null;default:false" json:"is_priority"`
	Notes      string `json:"notes,omitempty"`
	gorm.Model
}
