package domain

import "gorm.io/gorm"

type Reminder struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ItemID     uint   `gorm:"index;not null" json:"item_id"`
	DaysBefore int    `gorm:"not null" json:"days_before"`
	NotifyTime string `gorm:"not null" json:"notify_time"` // "HH:MM"
	Method     string `json:"method,omitempty"`            // email | push
	gorm.Model
}
