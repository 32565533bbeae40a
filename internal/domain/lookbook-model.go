package domain

import "gorm.io/gorm"

// LookbookEntry maps an item name to its recommended disposal method.
// The table is shared reference data, not user-scoped.
type LookbookEntry struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ItemName       string `gorm:"uniqueIndex;not null" json:"item_name"`
	DisposalMethod string `gorm:"not null" json:"disposal_method"`
	gorm.Model
}

func (LookbookEntry) TableName() string { return "lookbook" }
