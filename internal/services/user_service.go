package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown username and wrong
	// password so responses carry no username-existence oracle.
	ErrInvalidCredentials = errors.New("username or password is invalid")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

func (s *UserService) Register(req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: req.Username,
		Name:     req.Name,
		Password: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "username", user.Username)
	return toUserResponse(&user), nil
}

// Login verifies the credentials and writes a fresh bearer token to the
// user row. A second login overwrites the previous token.
func (s *UserService) Login(req *dto.LoginUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.db.Model(&user).Update("token", token).Error; err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	resp := toUserResponse(&user)
	resp.Token = &token
	return resp, nil
}

// Current shapes the already-authenticated user; no persistence call.
func (s *UserService) Current(user *models.User) *dto.UserResponse {
	return toUserResponse(user)
}

// Update applies name and password independently; an absent or empty
// field keeps its stored value.
func (s *UserService) Update(user *models.User, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
		updates["name"] = *req.Name
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
		updates["password"] = user.Password
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return toUserResponse(user), nil
}

// Logout clears the stored token; the old token no longer authenticates.
func (s *UserService) Logout(user *models.User) error {
	if err := s.db.Model(user).Update("token", nil).Error; err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
