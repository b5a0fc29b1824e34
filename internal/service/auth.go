package service

import (
	"context"
	"errors"
	"fmt"

	"habitboard/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailNotAllowed = errors.New("this email is not allowed to register")
	ErrUsernameTaken   = errors.New("username already taken")
)

type AuthService struct {
	db        *gorm.DB
	whitelist *WhitelistService
}

func NewAuthService(db *gorm.DB, whitelist *WhitelistService) *AuthService {
	return &AuthService{db: db, whitelist: whitelist}
}

// Signup creates a member account after the whitelist gate passes.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	allowed, err := s.whitelist.Allowed(ctx, email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrEmailNotAllowed
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if n > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleMember,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong password")
	}
	return &u, nil
}
