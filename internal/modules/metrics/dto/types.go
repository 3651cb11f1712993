package dto

// DashboardOutput is the plain value handed to every renderer: terminal,
// HTTP, reports and the snapshot publisher.
type DashboardOutput struct {
	GeneratedAt  string                 `json:"generated_at"`
	Today        string                 `json:"today"`
	Distribution []StatusCountOutput    `json:"status_distribution"`
	WeeklyTrend  []WeekCountOutput      `json:"weekly_trend"`
	DailyTotals  []DayTotalOutput       `json:"daily_totals"`
	RecentStudy  []DayTotalOutput       `json:"recent_study"`
	Applications ApplicationStatsOutput `json:"applications"`
	Study        StudyStatsOutput       `json:"study"`
	Feedback     FeedbackOutput         `json:"feedback"`
	Metrics      map[string]float64     `json:"metrics"`
}

type StatusCountOutput struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type WeekCountOutput struct {
	Week      string `json:"week"`
	WeekStart string `json:"week_start"`
	Count     int    `json:"count"`
}

type DayTotalOutput struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

type ApplicationStatsOutput struct {
	Total             int     `json:"total"`
	Active            int     `json:"active"`
	Interviews        int     `json:"interviews"`
	InterviewRate     float64 `json:"interview_rate"`
	AvgResponseDays   float64 `json:"avg_response_days"`
	RatePerWeek       float64 `json:"rate_per_week"`
	ThisWeek          int     `json:"this_week"`
	WeeklyGoal        int     `json:"weekly_goal"`
	GoalProgress      float64 `json:"goal_progress"`
	RemainingThisWeek int     `json:"remaining_this_week"`
}

type StudyStatsOutput struct {
	TotalMinutes     int     `json:"total_minutes"`
	StudyDays        int     `json:"study_days"`
	AvgMinutesPerDay float64 `json:"avg_minutes_per_day"`
	TodayMinutes     int     `json:"today_minutes"`
	WeekMinutes      int     `json:"week_minutes"`
	DailyTarget      int     `json:"daily_target"`
	DayProgress      int     `json:"day_progress"`
	WeekProgress     int     `json:"week_progress"`
	TargetProgress   float64 `json:"target_progress"`
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	ConsistencyPct   float64 `json:"consistency_pct"`
}

type FeedbackOutput struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
