package repository

import (
	"errors"
	"log"
	"time"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	FindPendingByEmailAndCode(email, code string) (*domain.User, error)
	// MarkVerified flips the account to verified and clears the code fields in
	// one conditional update; it reports false when no pending row matched,
	// which is how a replayed or overwritten code is detected.
	MarkVerified(email, code string) (bool, error)
	UpdateCode(email, code string, expiresAt time.Time) (bool, error)
	GetSettings(userID uint) (*string, error)
	SaveSettings(userID uint, settings string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}
	if err := r.db.Create(user).Error; err != nil {
		// duplicate-key errors pass through untouched so the service can
		// tell a conflict from an infrastructure fault
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, userID).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindPendingByEmailAndCode(email, code string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.
		Where("email = ? AND verification_code = ? AND is_verified = ?", email, code, false).
		First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) MarkVerified(email, code string) (bool, error) {
	res := r.db.Model(&domain.User{}).
		Where("email = ? AND verification_code = ? AND is_verified = ?", email, code, false).
		Updates(map[string]interface{}{
			"is_verified":       true,
			"verification_code": nil,
			"code_expires_at":   nil,
		})
	if res.Error != nil {
		log.Printf("mark verified error: %v", res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) UpdateCode(email, code string, expiresAt time.Time) (bool, error) {
	res := r.db.Model(&domain.User{}).
		Where("email = ? AND is_verified = ?", email, false).
		Updates(map[string]interface{}{
			"verification_code": code,
			"code_expires_at":   expiresAt,
		})
	if res.Error != nil {
		log.Printf("update code error: %v", res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) GetSettings(userID uint) (*string, error) {
	user := &domain.User{}
	if err := r.db.Select("settings").First(user, userID).Error; err != nil {
		return nil, err
	}
	return user.Settings, nil
}

func (r *userRepository) SaveSettings(userID uint, settings string) error {
	res := r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Update("settings", settings)
	if res.Error != nil {
		log.Printf("save settings error: %v", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
