package services

import (
	"errors"
	"strings"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/repository"
	"gorm.io/gorm"
)

type ItemService interface {
	List(userID uint) ([]domain.Item, error)
	Get(id, userID uint) (*domain.Item, error)
	Create(userID uint, input dto.ItemRequest) (*domain.Item, error)
	Update(id, userID uint, input dto.ItemRequest) error
	Delete(id, userID uint) error
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) List(userID uint) ([]domain.Item, error) {
	return s.repo.ListByUser(userID)
}

func (s *itemService) Get(id, userID uint) (*domain.Item, error) {
	item, err := s.repo.FindByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) Create(userID uint, input dto.ItemRequest) (*domain.Item, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.ExpiryDate) == "" {
		return nil, ErrValidation
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := &domain.Item{
		UserID:     userID,
		Name:       strings.TrimSpace(input.Name),
		Brand:      input.Brand,
		Barcode:    input.Barcode,
		ExpiryDate: input.ExpiryDate,
		Quantity:   quantity,
		Unit:       input.Unit,
		Category:   input.Category,
		Location:   input.Location,
		IsPriority: input.IsPriority,
		Notes:      input.Notes,
	}
	return s.repo.Create(item)
}

func (s *itemService) Update(id, userID uint, input dto.ItemRequest) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.ExpiryDate) == "" {
		return ErrValidation
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := &domain.Item{
		ID:         id,
		UserID:     userID,
		Name:       strings.TrimSpace(input.Name),
		Brand:      input.Brand,
		Barcode:    input.Barcode,
		ExpiryDate: input.ExpiryDate,
		Quantity:   quantity,
		Unit:       input.Unit,
		Category:   input.Category,
		Location:   input.Location,
		IsPriority: input.IsPriority,
		Notes:      input.Notes,
	}
	err := s.repo.Update(item)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *itemService) Delete(id, userID uint) error {
	ok, err := s.repo.Delete(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
