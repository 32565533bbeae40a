package repository

import (
	"errors"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"gorm.io/gorm"
)

// Reminders hang off items, so ownership is enforced by joining through the
// items table rather than duplicating user_id on every row.
type ReminderRepository interface {
	ListByUser(userID uint) ([]domain.Reminder, error)
	FindByItemID(itemID, userID uint) (*domain.Reminder, error)
	Create(reminder *domain.Reminder) (*domain.Reminder, error)
	Update(id, userID uint, reminder *domain.Reminder) error
	Delete(id, userID uint) (bool, error)
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) ownedScope(userID uint) *gorm.DB {
	return r.db.Model(&domain.Reminder{}).
		Joins("JOIN items ON items.id = reminders.item_id").
		Where("items.user_id = ?", userID)
}

func (r *reminderRepository) ListByUser(userID uint) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	err := r.ownedScope(userID).
		Select("reminders.*").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) FindByItemID(itemID, userID uint) (*domain.Reminder, error) {
	reminder := &domain.Reminder{}
	err := r.ownedScope(userID).
		Select("reminders.*").
		Where("reminders.item_id = ?", itemID).
		First(reminder).Error
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepository) Create(reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder == nil {
		return nil, errors.New("nil reminder")
	}
	if err := r.db.Create(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepository) Update(id, userID uint, reminder *domain.Reminder) error {
	existing := &domain.Reminder{}
	err := r.ownedScope(userID).
		Select("reminders.*").
		Where("reminders.id = ?", id).
		First(existing).Error
	if err != nil {
		return err
	}

	return r.db.Model(&domain.Reminder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"item_id":     reminder.ItemID,
			"days_before": reminder.DaysBefore,
			"notify_time": reminder.NotifyTime,
			"method":      reminder.Method,
		}).Error
}

func (r *reminderRepository) Delete(id, userID uint) (bool, error) {
	existing := &domain.Reminder{}
	err := r.ownedScope(userID).
		Select("reminders.*").
		Where("reminders.id = ?", id).
		First(existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	res := r.db.Where("id = ?", id).Delete(&domain.Reminder{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
