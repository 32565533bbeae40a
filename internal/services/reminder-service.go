package services

import (
	"errors"
	"strings"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/repository"
	"gorm.io/gorm"
)

type ReminderService interface {
	List(userID uint) ([]domain.Reminder, error)
	GetByItem(itemID, userID uint) (*domain.Reminder, error)
	Create(userID uint, input dto.ReminderRequest) (*domain.Reminder, error)
	Update(id, userID uint, input dto.ReminderRequest) error
	Delete(id, userID uint) error
}

type reminderService struct {
	repo     repository.ReminderRepository
	itemRepo repository.ItemRepository
}

func NewReminderService(repo repository.ReminderRepository, itemRepo repository.ItemRepository) ReminderService {
	return &reminderService{repo: repo, itemRepo: itemRepo}
}

func (s *reminderService) List(userID uint) ([]domain.Reminder, error) {
	return s.repo.ListByUser(userID)
}

func (s *reminderService) GetByItem(itemID, userID uint) (*domain.Reminder, error) {
	reminder, err := s.repo.FindByItemID(itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reminder, nil
}

func (s *reminderService) Create(userID uint, input dto.ReminderRequest) (*domain.Reminder, error) {
	if input.ItemID == 0 || input.DaysBefore == nil || strings.TrimSpace(input.NotifyTime) == "" {
		return nil, ErrValidation
	}

	// the reminder must point at an item the caller owns
	if _, err := s.itemRepo.FindByID(input.ItemID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reminder := &domain.Reminder{
		ItemID:     input.ItemID,
		DaysBefore: *input.DaysBefore,
		NotifyTime: input.NotifyTime,
		Method:     input.Method,
	}
	return s.repo.Create(reminder)
}

func (s *reminderService) Update(id, userID uint, input dto.ReminderRequest) error {
	if input.ItemID == 0 || input.DaysBefore == nil || strings.TrimSpace(input.NotifyTime) == "" {
		return ErrValidation
	}

	if _, err := s.itemRepo.FindByID(input.ItemID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	reminder := &domain.Reminder{
		ItemID:     input.ItemID,
		DaysBefore: *input.DaysBefore,
		NotifyTime: input.NotifyTime,
		Method:     input.Method,
	}
	err := s.repo.Update(id, userID, reminder)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *reminderService) Delete(id, userID uint) error {
	ok, err := s.repo.Delete(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
