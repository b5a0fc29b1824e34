package service

import (
	"context"
	"fmt"

	"habitboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WhitelistService struct{ db *gorm.DB }

func NewWhitelistService(db *gorm.DB) *WhitelistService { return &WhitelistService{db: db} }

// Allowed reports whether email has an active whitelist entry. It has
// no side effects; inactive or missing entries both mean no.
func (s *WhitelistService) Allowed(ctx context.Context, email string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&model.WhitelistedEmail{}).
		Where("email = ? AND active = ?", email, true).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("query whitelist: %w", err)
	}
	return n > 0, nil
}

// Upsert creates or updates the entry for email, keyed on the unique
// email column so concurrent submissions collapse to one row.
func (s *WhitelistService) Upsert(ctx context.Context, email string, active bool) error {
	entry := model.WhitelistedEmail{Email: email, Active: active}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"active"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("upsert whitelist entry: %w", err)
	}
	return nil
}

func (s *WhitelistService) List(ctx context.Context) ([]model.WhitelistedEmail, error) {
	var entries []model.WhitelistedEmail
	err := s.db.WithContext(ctx).Order("email").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list whitelist: %w", err)
	}
	return entries, nil
}
