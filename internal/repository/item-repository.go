package repository

import (
	"errors"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"gorm.io/gorm"
)

// Every query takes the owning user id; an item belonging to someone else is
// indistinguishable from a missing one.
type ItemRepository interface {
	ListByUser(userID uint) ([]domain.Item, error)
	FindByID(id, userID uint) (*domain.Item, error)
	Create(item *domain.Item) (*domain.Item, error)
	Update(item *domain.Item) error
	Delete(id, userID uint) (bool, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) ListByUser(userID uint) ([]domain.Item, error) {
	var items []domain.Item
	if err := r.db.Where("user_id = ?", userID).Order("expiry_date ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByID(id, userID uint) (*domain.Item, error) {
	item := &domain.Item{}
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) Create(item *domain.Item) (*domain.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) Update(item *domain.Item) error {
	if item == nil {
		return errors.New("nil item")
	}
	res := r.db.Model(&domain.Item{}).
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"brand":       item.Brand,
			"barcode":     item.Barcode,
			"expiry_date": item.ExpiryDate,
			"quantity":    item.Quantity,
			"unit":        item.Unit,
			"category":    item.Category,
			"location":    item.Location,
			"is_priority": item.IsPriority,
			"notes":       item.Notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepository) Delete(id, userID uint) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Item{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
