package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wetrack/wetrack-backend/internal/domain"
	userdto "github.com/wetrack/wetrack-backend/internal/usecase/dto/user"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type UserUsecase interface {
	Register(input *userdto.RegisterInput) (*domain.User, error)
	Login(username, password string) (*domain.TokenPair, error)
	Refresh(refreshToken string) (string, error)
	GetUserByID(userID string) (*domain.User, error)
	UpdateProfile(userID string, update domain.UserUpdate) (*domain.User, error)
}

type DefaultUserUsecase struct {
	UserRepo     domain.UserRepository
	TokenManager domain.TokenManager
}

func NewDefaultUserUsecase(userRepo domain.UserRepository, tokenManager domain.TokenManager) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		UserRepo:     userRepo,
		TokenManager: tokenManager,
	}
}

func (uc *DefaultUserUsecase) Register(input *userdto.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Password1 == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if input.Password1 != input.Password2 {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrValidation)
	}
	if len(input.Password1) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        strings.TrimSpace(input.Email),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: string(hash),
	}
	if err := uc.UserRepo.CreateUser(user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: username already taken", domain.ErrValidation)
		}
		return nil, err
	}
	return user, nil
}

func (uc *DefaultUserUsecase) Login(username, password string) (*domain.TokenPair, error) {
	user, err := uc.UserRepo.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		// The caller learns nothing about which part was wrong.
		return nil, fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)
	}
	return uc.TokenManager.IssuePair(user.ID)
}

func (uc *DefaultUserUsecase) Refresh(refreshToken string) (string, error) {
	userID, err := uc.TokenManager.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	// The user may have been removed since the refresh token was issued.
	if _, err := uc.UserRepo.GetUserByID(userID); err != nil {
		return "", fmt.Errorf("%w: unknown user", domain.ErrUnauthorized)
	}
	pair, err := uc.TokenManager.IssuePair(userID)
	if err != nil {
		return "", err
	}
	return pair.Access, nil
}

func (uc *DefaultUserUsecase) GetUserByID(userID string) (*domain.User, error) {
	return uc.UserRepo.GetUserByID(userID)
}

func (uc *DefaultUserUsecase) UpdateProfile(userID string, update domain.UserUpdate) (*domain.User, error) {
	return uc.UserRepo.UpdateUser(userID, update)
}
