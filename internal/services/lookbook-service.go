package services

import (
	"errors"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"github.com/dristi2006/expiry-date-tracker/internal/repository"
	"gorm.io/gorm"
)

type LookbookService interface {
	List() ([]domain.LookbookEntry, error)
	GetByItemName(itemName string) (*domain.LookbookEntry, error)
}

type lookbookService struct {
	repo repository.LookbookRepository
}

func NewLookbookService(repo repository.LookbookRepository) LookbookService {
	return &lookbookService{repo: repo}
}

func (s *lookbookService) List() ([]domain.LookbookEntry, error) {
	return s.repo.List()
}

func (s *lookbookService) GetByItemName(itemName string) (*domain.LookbookEntry, error) {
	entry, err := s.repo.FindByItemName(itemName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}
