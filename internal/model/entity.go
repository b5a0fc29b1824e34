package model

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100" json:"username"`
	Email        string    `gorm:"size:255" json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `gorm:"size:20;default:member" json:"role"`
	CreatedAt    time.Time `json:"created_at"`

	Goals      []Goal      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Challenges []Challenge `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Goal is a recurring activity scheduled on a fixed set of weekdays.
// A goal with every flag false is legal; it just never shows up on the
// tracker or calendar.
type Goal struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UserID      int       `gorm:"index" json:"user_id"`
	Name        string    `gorm:"size:100" json:"name"`
	Description string    `json:"description"`
	Monday      bool      `gorm:"default:false" json:"monday"`
	Tuesday     bool      `gorm:"default:false" json:"tuesday"`
	Wednesday   bool      `gorm:"default:false" json:"wednesday"`
	Thursday    bool      `gorm:"default:false" json:"thursday"`
	Friday      bool      `gorm:"default:false" json:"friday"`
	Saturday    bool      `gorm:"default:false" json:"saturday"`
	Sunday      bool      `gorm:"default:false" json:"sunday"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Completions []GoalCompletion `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ScheduledOn reports whether the goal is active on a weekday,
// 0=Monday .. 6=Sunday.
func (g *Goal) ScheduledOn(weekday int) bool {
	switch weekday {
	case 0:
		return g.Monday
	case 1:
		return g.Tuesday
	case 2:
		return g.Wednesday
	case 3:
		return g.Thursday
	case 4:
		return g.Friday
	case 5:
		return g.Saturday
	case 6:
		return g.Sunday
	}
	return false
}

// GoalCompletion records whether a goal was done on one date.
// One row per (goal, date); rows are only ever written through the
// ON CONFLICT upsert in TrackerService.
type GoalCompletion struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	GoalID    int    `gorm:"uniqueIndex:uk_goal_date" json:"goal_id"`
	Date      string `gorm:"type:date;uniqueIndex:uk_goal_date" json:"date"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

// Challenge is a time-boxed grouping of goals. It does not own its
// goals; deleting a challenge leaves them untouched.
type Challenge struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	UserID    int    `gorm:"index" json:"user_id"`
	StartDate string `gorm:"type:date" json:"start_date"`
	EndDate   string `gorm:"type:date" json:"end_date"`
	Goals     []Goal `gorm:"many2many:challenge_goals" json:"goals"`
}

type WhitelistedEmail struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	Email  string `gorm:"uniqueIndex;size:255" json:"email"`
	Active bool   `gorm:"default:true" json:"active"`
}

func (User) TableName() string             { return "users" }
func (Goal) TableName() string             { return "goals" }
func (GoalCompletion) TableName() string   { return "goal_completions" }
func (Challenge) TableName() string        { return "challenges" }
func (WhitelistedEmail) TableName() string { return "whitelisted_emails" }
