package repository

import (
	"errors"
	"fmt"

	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/mappers"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	if err := r.DB.Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: username %s", domain.ErrAlreadyExists, user.Username)
		}
		return err
	}

	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.Where("id = ?", userID).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) GetUserByUsername(username string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) UpdateUser(userID string, update domain.UserUpdate) (*domain.User, error) {
	updateData := map[string]interface{}{}
	if update.Email != nil {
		updateData["email"] = *update.Email
	}
	if update.DisplayName != nil {
		updateData["display_name"] = *update.DisplayName
	}

	if len(updateData) > 0 {
		result := r.DB.Model(&models.UserModel{}).Where("id = ?", userID).Updates(updateData)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
		}
	}

	return r.GetUserByID(userID)
}
