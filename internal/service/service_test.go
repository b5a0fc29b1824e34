package service

import (
	"testing"
	"time"

	"habitboard/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A fresh pool connection would see a fresh in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Goal{},
		&model.GoalCompletion{},
		&model.Challenge{},
		&model.WhitelistedEmail{},
	))
	return db
}

func mustUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "unused",
		Role:         model.RoleMember,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// mustGoal creates a goal scheduled on the given weekdays (0=Monday..6=Sunday).
func mustGoal(t *testing.T, db *gorm.DB, userID int, name string, weekdays ...int) *model.Goal {
	t.Helper()
	g := &model.Goal{UserID: userID, Name: name}
	for _, wd := range weekdays {
		switch wd {
		case 0:
			g.Monday = true
		case 1:
			g.Tuesday = true
		case 2:
			g.Wednesday = true
		case 3:
			g.Thursday = true
		case 4:
			g.Friday = true
		case 5:
			g.Saturday = true
		case 6:
			g.Sunday = true
		}
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

func track(t *testing.T, db *gorm.DB, goalID int, date string, completed bool) {
	t.Helper()
	require.NoError(t, db.Create(&model.GoalCompletion{
		GoalID:    goalID,
		Date:      date,
		Completed: completed,
	}).Error)
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}
