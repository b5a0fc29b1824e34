package service

import (
	"context"
	"fmt"
	"time"

	"habitboard/internal/model"

	"gorm.io/gorm"
)

type CalendarService struct{ db *gorm.DB }

func NewCalendarService(db *gorm.DB) *CalendarService { return &CalendarService{db: db} }

// gridDay is one slot of the Sunday-first month grid. Pad slots from
// adjacent months have Day 0.
type gridDay struct {
	Day     int
	Weekday int // 0=Monday .. 6=Sunday
}

// monthGrid expands (year, month) into whole weeks starting on Sunday.
// Slots outside the target month are pads, so the non-pad count always
// equals the number of days in the month.
func monthGrid(year, month int) []gridDay {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysIn := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	leading := int(first.Weekday()) // days since Sunday
	trailing := (7 - (leading+daysIn)%7) % 7

	grid := make([]gridDay, 0, leading+daysIn+trailing)
	for i := 0; i < leading; i++ {
		grid = append(grid, gridDay{})
	}
	for d := 1; d <= daysIn; d++ {
		wd := mondayIndex(time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday())
		grid = append(grid, gridDay{Day: d, Weekday: wd})
	}
	for i := 0; i < trailing; i++ {
		grid = append(grid, gridDay{})
	}
	return grid
}

// Month projects the user's goals onto the month grid. Out-of-range
// months roll over (0 → December of the prior year, 13 → January of
// the next); any year is accepted.
func (s *CalendarService) Month(ctx context.Context, userID, year, month int, today time.Time) (*model.CalendarResponse, error) {
	year, month = NormalizeMonth(year, month)

	var goals []model.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	var rows []model.GoalCompletion
	err = s.db.WithContext(ctx).
		Model(&model.GoalCompletion{}).
		Select("goal_completions.*").
		Joins("JOIN goals ON goals.id = goal_completions.goal_id").
		Where("goals.user_id = ? AND goal_completions.date BETWEEN ? AND ?",
			userID, first.Format(DateLayout), last.Format(DateLayout)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	// (goal, day-of-month) -> completed; missing rows display as false.
	done := make(map[[2]int]bool, len(rows))
	for _, r := range rows {
		d, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			continue
		}
		done[[2]int{r.GoalID, d.Day()}] = r.Completed
	}

	cells := make([]model.CalendarCell, 0)
	for _, slot := range monthGrid(year, month) {
		if slot.Day == 0 {
			cells = append(cells, model.CalendarCell{})
			continue
		}
		var dayGoals []model.CalendarGoal
		for _, g := range goals {
			if !g.ScheduledOn(slot.Weekday) {
				continue
			}
			dayGoals = append(dayGoals, model.CalendarGoal{
				GoalID:    g.ID,
				GoalName:  g.Name,
				Completed: done[[2]int{g.ID, slot.Day}],
			})
		}
		cells = append(cells, model.CalendarCell{Day: slot.Day, Goals: dayGoals})
	}

	prevYear, prevMonth := NormalizeMonth(year, month-1)
	nextYear, nextMonth := NormalizeMonth(year, month+1)

	return &model.CalendarResponse{
		Year:      year,
		Month:     month,
		MonthName: time.Month(month).String(),
		Today:     today.Format(DateLayout),
		Days:      cells,
		PrevYear:  prevYear,
		PrevMonth: prevMonth,
		NextYear:  nextYear,
		NextMonth: nextMonth,
	}, nil
}
