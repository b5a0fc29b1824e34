package service

import (
	"context"
	"fmt"
	"time"

	"habitboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrackerService struct{ db *gorm.DB }

func NewTrackerService(db *gorm.DB) *TrackerService { return &TrackerService{db: db} }

// GoalsForDate returns the user's goals scheduled on day's weekday,
// each with its recorded completion for that day (false when no row
// exists yet).
func (s *TrackerService) GoalsForDate(ctx context.Context, userID int, day time.Time) ([]model.TrackerGoal, error) {
	var goals []model.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	weekday := mondayIndex(day.Weekday())
	var scheduled []model.Goal
	for _, g := range goals {
		if g.ScheduledOn(weekday) {
			scheduled = append(scheduled, g)
		}
	}
	if len(scheduled) == 0 {
		return []model.TrackerGoal{}, nil
	}

	ids := make([]int, len(scheduled))
	for i, g := range scheduled {
		ids[i] = g.ID
	}
	var rows []model.GoalCompletion
	err = s.db.WithContext(ctx).
		Where("goal_id IN ? AND date = ?", ids, day.Format(DateLayout)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	status := make(map[int]bool, len(rows))
	for _, r := range rows {
		status[r.GoalID] = r.Completed
	}

	out := make([]model.TrackerGoal, 0, len(scheduled))
	for _, g := range scheduled {
		out = append(out, model.TrackerGoal{ID: g.ID, Name: g.Name, Completed: status[g.ID]})
	}
	return out, nil
}

// Apply rewrites the completion row of every owned goal for day. Goals
// absent from completed are written as not done; submitted ids for
// goals the user does not own are ignored. The write is a single
// ON CONFLICT (goal_id, date) upsert, so resubmission is idempotent
// and the latest value wins.
func (s *TrackerService) Apply(ctx context.Context, userID int, day time.Time, completed map[int]bool) error {
	var goals []model.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&goals).Error
	if err != nil {
		return fmt.Errorf("list goals: %w", err)
	}
	if len(goals) == 0 {
		return nil
	}

	date := day.Format(DateLayout)
	rows := make([]model.GoalCompletion, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, model.GoalCompletion{
			GoalID:    g.ID,
			Date:      date,
			Completed: completed[g.ID],
		})
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "goal_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed"}),
		}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("upsert completions: %w", err)
	}
	return nil
}
