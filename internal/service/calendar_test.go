package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGridShape(t *testing.T) {
	cases := []struct {
		year, month int
		daysInMonth int
		day1Index   int // grid position of day 1 (days since Sunday)
		day1Weekday int // 0=Monday..6=Sunday
	}{
		{2024, 6, 30, 6, 5},  // June 2024 starts Saturday
		{2024, 2, 29, 4, 3},  // leap February starts Thursday
		{2015, 2, 28, 0, 6},  // February 2015 starts Sunday: no pads at all
		{2024, 12, 31, 0, 6}, // December 2024 starts Sunday
		{2025, 9, 30, 1, 0},  // September 2025 starts Monday
	}

	for _, tc := range cases {
		grid := monthGrid(tc.year, tc.month)
		assert.Zero(t, len(grid)%7, "%d-%02d grid must be whole weeks", tc.year, tc.month)

		var inMonth int
		for _, slot := range grid {
			if slot.Day != 0 {
				inMonth++
			}
		}
		assert.Equal(t, tc.daysInMonth, inMonth, "%d-%02d day count", tc.year, tc.month)
		assert.Equal(t, 1, grid[tc.day1Index].Day, "%d-%02d day 1 position", tc.year, tc.month)
		assert.Equal(t, tc.day1Weekday, grid[tc.day1Index].Weekday, "%d-%02d day 1 weekday", tc.year, tc.month)
	}
}

func TestNormalizeMonth(t *testing.T) {
	y, m := NormalizeMonth(2024, 0)
	assert.Equal(t, [2]int{2023, 12}, [2]int{y, m})

	y, m = NormalizeMonth(2024, 13)
	assert.Equal(t, [2]int{2025, 1}, [2]int{y, m})

	y, m = NormalizeMonth(2024, 6)
	assert.Equal(t, [2]int{2024, 6}, [2]int{y, m})

	// Arbitrarily distant values roll the same way.
	y, m = NormalizeMonth(2024, 25)
	assert.Equal(t, [2]int{2026, 1}, [2]int{y, m})
}

func TestCalendarProjection(t *testing.T) {
	db := newTestDB(t)
	u := mustUser(t, db, "alice")
	yoga := mustGoal(t, db, u.ID, "Yoga", 5)  // Saturdays
	mustGoal(t, db, u.ID, "Run", 5, 0)        // Mondays and Saturdays
	mustGoal(t, db, u.ID, "Idle")             // no weekday: never projected
	track(t, db, yoga.ID, "2024-06-08", true)
	track(t, db, yoga.ID, "2024-06-15", false)

	svc := NewCalendarService(db)
	resp, err := svc.Month(context.Background(), u.ID, 2024, 6, day(t, "2024-06-12"))
	require.NoError(t, err)

	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 6, resp.Month)
	assert.Equal(t, "June", resp.MonthName)

	byDay := map[int][]string{}
	completed := map[int]bool{}
	for _, cell := range resp.Days {
		if cell.Day == 0 {
			assert.Nil(t, cell.Goals)
			continue
		}
		for _, g := range cell.Goals {
			byDay[cell.Day] = append(byDay[cell.Day], g.GoalName)
			if g.GoalID == yoga.ID {
				completed[cell.Day] = g.Completed
			}
		}
	}

	// Saturdays carry both goals in goal iteration order; Mondays only Run.
	for _, saturday := range []int{1, 8, 15, 22, 29} {
		assert.Equal(t, []string{"Yoga", "Run"}, byDay[saturday], "day %d", saturday)
	}
	for _, monday := range []int{3, 10, 17, 24} {
		assert.Equal(t, []string{"Run"}, byDay[monday], "day %d", monday)
	}
	assert.Empty(t, byDay[12]) // Wednesday: nothing scheduled

	// Tracked rows show through; untracked Saturdays display false.
	assert.True(t, completed[8])
	assert.False(t, completed[15])
	assert.False(t, completed[22])
}

func TestCalendarMonthRollover(t *testing.T) {
	db := newTestDB(t)
	u := mustUser(t, db, "alice")
	svc := NewCalendarService(db)
	today := day(t, "2024-06-12")

	// Month 13 of 2024 is January 2025; month 0 is December 2023.
	resp, err := svc.Month(context.Background(), u.ID, 2024, 13, today)
	require.NoError(t, err)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 1, resp.Month)

	jan, err := svc.Month(context.Background(), u.ID, 2025, 1, today)
	require.NoError(t, err)
	assert.Equal(t, jan.Days, resp.Days)

	resp, err = svc.Month(context.Background(), u.ID, 2024, 0, today)
	require.NoError(t, err)
	assert.Equal(t, 2023, resp.Year)
	assert.Equal(t, 12, resp.Month)
}

func TestCalendarNavigation(t *testing.T) {
	db := newTestDB(t)
	u := mustUser(t, db, "alice")
	svc := NewCalendarService(db)
	today := day(t, "2024-06-12")

	resp, err := svc.Month(context.Background(), u.ID, 2025, 1, today)
	require.NoError(t, err)
	assert.Equal(t, 2024, resp.PrevYear)
	assert.Equal(t, 12, resp.PrevMonth)
	assert.Equal(t, 2025, resp.NextYear)
	assert.Equal(t, 2, resp.NextMonth)

	resp, err = svc.Month(context.Background(), u.ID, 2024, 12, today)
	require.NoError(t, err)
	assert.Equal(t, 11, resp.PrevMonth)
	assert.Equal(t, 2025, resp.NextYear)
	assert.Equal(t, 1, resp.NextMonth)
}
