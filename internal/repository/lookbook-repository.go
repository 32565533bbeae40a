package repository

import (
	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"gorm.io/gorm"
)

type LookbookRepository interface {
	List() ([]domain.LookbookEntry, error)
	FindByItemName(itemName string) (*domain.LookbookEntry, error)
	Create(entry *domain.LookbookEntry) (*domain.LookbookEntry, error)
	Count() (int64, error)
}

type lookbookRepository struct {
	db *gorm.DB
}

func NewLookbookRepository(db *gorm.DB) LookbookRepository {
	return &lookbookRepository{db: db}
}

func (r *lookbookRepository) List() ([]domain.LookbookEntry, error) {
	var entries []domain.LookbookEntry
	if err := r.db.Order("item_name ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *lookbookRepository) FindByItemName(itemName string) (*domain.LookbookEntry, error) {
	entry := &domain.LookbookEntry{}
	if err := r.db.Where("item_name = ?", itemName).First(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *lookbookRepository) Create(entry *domain.LookbookEntry) (*domain.LookbookEntry, error) {
	if err := r.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *lookbookRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&domain.LookbookEntry{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
