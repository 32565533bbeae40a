package services

import (
	"encoding/json"
	"errors"

	"github.com/dristi2006/expiry-date-tracker/internal/repository"
	"gorm.io/gorm"
)

type SettingsService interface {
	Get(userID uint) (map[string]interface{}, error)
	Save(userID uint, settings map[string]interface{}) error
}

type settingsService struct {
	repo repository.UserRepository
}

func NewSettingsService(repo repository.UserRepository) SettingsService {
	return &settingsService{repo: repo}
}

// Get returns an empty object for accounts that never saved settings, and
// also when the stored blob is unreadable (same recovery as the original).
func (s *settingsService) Get(userID uint) (map[string]interface{}, error) {
	raw, err := s.repo.GetSettings(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	settings := map[string]interface{}{}
	if raw != nil && *raw != "" {
		if err := json.Unmarshal([]byte(*raw), &settings); err != nil {
			settings = map[string]interface{}{}
		}
	}
	return settings, nil
}

func (s *settingsService) Save(userID uint, settings map[string]interface{}) error {
	if settings == nil {
		settings = map[string]interface{}{}
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	err = s.repo.SaveSettings(userID, string(raw))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
