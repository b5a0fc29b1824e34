package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"habitboard/internal/model"

	"gorm.io/gorm"
)

// StatsService computes completion aggregates. It only reads
// completion rows that exist: a scheduled day nobody tracked
// contributes to neither numerator nor denominator.
type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// percentage is 100*done/set rounded to one decimal, and 0 when
// nothing was tracked.
func percentage(done, set int) float64 {
	if set == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(set)*1000) / 10
}

type completionCounts struct {
	GoalID   int
	SetDays  int
	DoneDays int
}

// userCounts tallies all completion rows for the user's goals in the
// inclusive [start, end] date window.
func (s *StatsService) userCounts(ctx context.Context, userID int, start, end string) (set, done int, err error) {
	var row completionCounts
	err = s.db.WithContext(ctx).
		Model(&model.GoalCompletion{}).
		Select("COUNT(*) AS set_days, COALESCE(SUM(CASE WHEN goal_completions.completed THEN 1 ELSE 0 END), 0) AS done_days").
		Joins("JOIN goals ON goals.id = goal_completions.goal_id").
		Where("goals.user_id = ? AND goal_completions.date BETWEEN ? AND ?", userID, start, end).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("count completions: %w", err)
	}
	return row.SetDays, row.DoneDays, nil
}

// goalCounts tallies the same window per goal.
func (s *StatsService) goalCounts(ctx context.Context, userID int, start, end string) (map[int]completionCounts, error) {
	var rows []completionCounts
	err := s.db.WithContext(ctx).
		Model(&model.GoalCompletion{}).
		Select("goal_completions.goal_id AS goal_id, COUNT(*) AS set_days, COALESCE(SUM(CASE WHEN goal_completions.completed THEN 1 ELSE 0 END), 0) AS done_days").
		Joins("JOIN goals ON goals.id = goal_completions.goal_id").
		Where("goals.user_id = ? AND goal_completions.date BETWEEN ? AND ?", userID, start, end).
		Group("goal_completions.goal_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count completions per goal: %w", err)
	}
	byGoal := make(map[int]completionCounts, len(rows))
	for _, r := range rows {
		byGoal[r.GoalID] = r
	}
	return byGoal, nil
}

// Dashboard aggregates week-to-date (Monday through today) and
// month-to-date (1st through today) windows, overall and per goal.
// today must already be resolved in the server timezone.
func (s *StatsService) Dashboard(ctx context.Context, userID int, today time.Time) (*model.DashboardResponse, error) {
	day := today.Format(DateLayout)
	wkStart := weekStart(today).Format(DateLayout)
	moStart := monthStart(today).Format(DateLayout)

	weekSet, weekDone, err := s.userCounts(ctx, userID, wkStart, day)
	if err != nil {
		return nil, err
	}
	monthSet, monthDone, err := s.userCounts(ctx, userID, moStart, day)
	if err != nil {
		return nil, err
	}

	var goals []model.Goal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	weekByGoal, err := s.goalCounts(ctx, userID, wkStart, day)
	if err != nil {
		return nil, err
	}
	monthByGoal, err := s.goalCounts(ctx, userID, moStart, day)
	if err != nil {
		return nil, err
	}

	stats := make([]model.GoalStat, 0, len(goals))
	for _, g := range goals {
		w := weekByGoal[g.ID]
		m := monthByGoal[g.ID]
		stats = append(stats, model.GoalStat{
			GoalID:                  g.ID,
			GoalName:                g.Name,
			MonthToDateDaysSet:      m.SetDays,
			MonthToDateDaysComplete: m.DoneDays,
			MonthToDatePercentage:   percentage(m.DoneDays, m.SetDays),
			WeekToDateDaysSet:       w.SetDays,
			WeekToDateDaysComplete:  w.DoneDays,
			WeekToDatePercentage:    percentage(w.DoneDays, w.SetDays),
		})
	}

	return &model.DashboardResponse{
		Today:                       day,
		WeeklyCompletionPercentage:  percentage(weekDone, weekSet),
		MonthlyCompletionPercentage: percentage(monthDone, monthSet),
		GoalStats:                   stats,
	}, nil
}

// Leaderboard ranks every user by month-to-date completion percentage,
// breaking ties by absolute completed count. Users with no tracked
// rows this month are omitted, not ranked last. Ranks are consecutive
// 1..N even for full ties.
func (s *StatsService) Leaderboard(ctx context.Context, today time.Time) ([]model.LeaderboardEntry, error) {
	moStart := monthStart(today).Format(DateLayout)

	var rows []struct {
		UserID         int
		Username       string
		TotalSet       int
		TotalCompleted int
	}
	err := s.db.WithContext(ctx).
		Table("users").
		Select("users.id AS user_id, users.username AS username, COUNT(goal_completions.id) AS total_set, COALESCE(SUM(CASE WHEN goal_completions.completed THEN 1 ELSE 0 END), 0) AS total_completed").
		Joins("JOIN goals ON goals.user_id = users.id").
		Joins("JOIN goal_completions ON goal_completions.goal_id = goals.id").
		Where("goal_completions.date >= ?", moStart).
		Group("users.id, users.username").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate leaderboard: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		if r.TotalSet == 0 {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			UserID:               r.UserID,
			Username:             r.Username,
			CompletionPercentage: percentage(r.TotalCompleted, r.TotalSet),
			TotalGoalsSet:        r.TotalSet,
			TotalGoalsCompleted:  r.TotalCompleted,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CompletionPercentage != entries[j].CompletionPercentage {
			return entries[i].CompletionPercentage > entries[j].CompletionPercentage
		}
		return entries[i].TotalGoalsCompleted > entries[j].TotalGoalsCompleted
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
