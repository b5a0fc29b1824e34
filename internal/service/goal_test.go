package service

import (
	"context"
	"testing"

	"habitboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalCRUDOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	alice := mustUser(t, db, "alice")
	bob := mustUser(t, db, "bob")
	svc := NewGoalService(db)
	ctx := context.Background()

	g, err := svc.Create(ctx, alice.ID, model.GoalRequest{Name: "Run", Monday: true, Friday: true})
	require.NoError(t, err)
	assert.True(t, g.ScheduledOn(0))
	assert.True(t, g.ScheduledOn(4))
	assert.False(t, g.ScheduledOn(6))

	// The owner sees it; another user structurally cannot.
	got, err := svc.Goal(ctx, alice.ID, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run", got.Name)

	_, err = svc.Goal(ctx, bob.ID, g.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	_, err = svc.Update(ctx, bob.ID, g.ID, model.GoalRequest{Name: "Hijack"})
	assert.ErrorIs(t, err, ErrGoalNotFound)

	err = svc.Delete(ctx, bob.ID, g.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	goals, err := svc.Goals(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalUpdateClearsFlags(t *testing.T) {
	db := newTestDB(t)
	u := mustUser(t, db, "alice")
	svc := NewGoalService(db)
	ctx := context.Background()

	g, err := svc.Create(ctx, u.ID, model.GoalRequest{Name: "Run", Monday: true, Wednesday: true})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, u.ID, g.ID, model.GoalRequest{Name: "Jog", Wednesday: true})
	require.NoError(t, err)
	assert.Equal(t, "Jog", updated.Name)
	assert.False(t, updated.Monday) // cleared flags must persist
	assert.True(t, updated.Wednesday)

	got, err := svc.Goal(ctx, u.ID, g.ID)
	require.NoError(t, err)
	assert.False(t, got.Monday)
}

func TestGoalDeleteRemovesCompletions(t *testing.T) {
	db := newTestDB(t)
	u := mustUser(t, db, "alice")
	svc := NewGoalService(db)
	ctx := context.Background()

	g, err := svc.Create(ctx, u.ID, model.GoalRequest{Name: "Run", Monday: true})
	require.NoError(t, err)
	track(t, db, g.ID, "2024-06-10", true)
	track(t, db, g.ID, "2024-06-17", false)

	require.NoError(t, svc.Delete(ctx, u.ID, g.ID))

	var n int64
	require.NoError(t, db.Model(&model.GoalCompletion{}).Where("goal_id = ?", g.ID).Count(&n).Error)
	assert.Zero(t, n)

	_, err = svc.Goal(ctx, u.ID, g.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestChallengesListGoalsSurviveChallenge(t *testing.T) {
	db := newTestDB(t)
	u := mustUser(t, db, "alice")
	svc := NewGoalService(db)
	ctx := context.Background()

	run := mustGoal(t, db, u.ID, "Run", 0)
	yoga := mustGoal(t, db, u.ID, "Yoga", 1)
	ch := model.Challenge{
		UserID:    u.ID,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		Goals:     []model.Goal{*run, *yoga},
	}
	require.NoError(t, db.Create(&ch).Error)

	challenges, err := svc.Challenges(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Len(t, challenges[0].Goals, 2)

	// Deleting the challenge leaves its goals untouched.
	require.NoError(t, db.Delete(&model.Challenge{ID: ch.ID}).Error)
	goals, err := svc.Goals(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, goals, 2)
}
