package service

import (
	"context"
	"errors"
	"fmt"

	"habitboard/internal/model"

	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalService is owner-scoped CRUD: every query carries the user id,
// so one user can never see or touch another's goals.
type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

func (s *GoalService) Create(ctx context.Context, userID int, req model.GoalRequest) (*model.Goal, error) {
	g := model.Goal{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Monday:      req.Monday,
		Tuesday:     req.Tuesday,
		Wednesday:   req.Wednesday,
		Thursday:    req.Thursday,
		Friday:      req.Friday,
		Saturday:    req.Saturday,
		Sunday:      req.Sunday,
	}
	if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return &g, nil
}

func (s *GoalService) Goals(ctx context.Context, userID int) ([]model.Goal, error) {
	var goals []model.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (s *GoalService) Goal(ctx context.Context, userID, goalID int) (*model.Goal, error) {
	var g model.Goal
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", goalID, userID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load goal: %w", err)
	}
	return &g, nil
}

func (s *GoalService) Update(ctx context.Context, userID, goalID int, req model.GoalRequest) (*model.Goal, error) {
	g, err := s.Goal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	g.Name = req.Name
	g.Description = req.Description
	g.Monday = req.Monday
	g.Tuesday = req.Tuesday
	g.Wednesday = req.Wednesday
	g.Thursday = req.Thursday
	g.Friday = req.Friday
	g.Saturday = req.Saturday
	g.Sunday = req.Sunday
	if err := s.db.WithContext(ctx).Save(g).Error; err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return g, nil
}

// Delete removes the goal and its completion records in one
// transaction; the FK cascade covers databases that enforce it.
func (s *GoalService) Delete(ctx context.Context, userID, goalID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", goalID, userID).Delete(&model.Goal{})
		if res.Error != nil {
			return fmt.Errorf("delete goal: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrGoalNotFound
		}
		if err := tx.Where("goal_id = ?", goalID).Delete(&model.GoalCompletion{}).Error; err != nil {
			return fmt.Errorf("delete completions: %w", err)
		}
		return nil
	})
}

func (s *GoalService) Challenges(ctx context.Context, userID int) ([]model.Challenge, error) {
	var challenges []model.Challenge
	err := s.db.WithContext(ctx).Preload("Goals").Where("user_id = ?", userID).Order("start_date").Find(&challenges).Error
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	return challenges, nil
}
