package model

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type GoalRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Monday      bool   `json:"monday"`
	Tuesday     bool   `json:"tuesday"`
	Wednesday   bool   `json:"wednesday"`
	Thursday    bool   `json:"thursday"`
	Friday      bool   `json:"friday"`
	Saturday    bool   `json:"saturday"`
	Sunday      bool   `json:"sunday"`
}

type WhitelistRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Active bool   `json:"active"`
}

// TrackerUpdateRequest toggles completion for one date. Goals absent
// from Completed are written as not completed.
type TrackerUpdateRequest struct {
	Date      string       `json:"date"`
	Completed map[int]bool `json:"completed"`
}

type TrackerResponse struct {
	Today        string       `json:"today"`
	SelectedDate string       `json:"selected_date"`
	Goals        []TrackerGoal `json:"goals"`
}

type TrackerGoal struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// GoalStat is the per-goal dashboard breakdown for both aggregation
// windows. Percentages are rounded to one decimal.
type GoalStat struct {
	GoalID                  int     `json:"goal_id"`
	GoalName                string  `json:"goal_name"`
	MonthToDateDaysSet      int     `json:"month_to_date_days_set"`
	MonthToDateDaysComplete int     `json:"month_to_date_days_completed"`
	MonthToDatePercentage   float64 `json:"month_to_date_percentage"`
	WeekToDateDaysSet       int     `json:"week_to_date_days_set"`
	WeekToDateDaysComplete  int     `json:"week_to_date_days_completed"`
	WeekToDatePercentage    float64 `json:"week_to_date_percentage"`
}

type DashboardResponse struct {
	Today                       string     `json:"today"`
	WeeklyCompletionPercentage  float64    `json:"weekly_completion_percentage"`
	MonthlyCompletionPercentage float64    `json:"monthly_completion_percentage"`
	GoalStats                   []GoalStat `json:"goal_stats"`
}

type LeaderboardEntry struct {
	Rank                 int     `json:"rank"`
	UserID               int     `json:"user_id"`
	Username             string  `json:"username"`
	CompletionPercentage float64 `json:"completion_percentage"`
	TotalGoalsSet        int     `json:"total_goals_set"`
	TotalGoalsCompleted  int     `json:"total_goals_completed"`
}

// CalendarCell is one grid position. Pad cells from adjacent months
// carry Day 0 and a nil goal list.
type CalendarCell struct {
	Day   int            `json:"day"`
	Goals []CalendarGoal `json:"goals"`
}

type CalendarGoal struct {
	GoalID    int    `json:"goal_id"`
	GoalName  string `json:"goal_name"`
	Completed bool   `json:"completed"`
}

type CalendarResponse struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	MonthName string         `json:"month_name"`
	Today     string         `json:"today"`
	Days      []CalendarCell `json:"days"`
	PrevYear  int            `json:"prev_year"`
	PrevMonth int            `json:"prev_month"`
	NextYear  int            `json:"next_year"`
	NextMonth int            `json:"next_month"`
}
