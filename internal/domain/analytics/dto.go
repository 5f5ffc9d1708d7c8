package analytics

// TodayStats summarizes today's attendance volume.
type TodayStats struct {
	Total int `json:"total"`
}

// TypeDistribution counts today's records per attendance type.
type TypeDistribution struct {
	Office int `json:"Office"`
	WFH    int `json:"WFH"`
	Field  int `json:"Field"`
}

// TrendPoint is one day of the trailing 7-day trend. Days with no records
// appear with a zero count.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// EmployeeStat is one entry of the top-employees leaderboard.
type EmployeeStat struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// AnalyticsResponse is the full dashboard payload.
type AnalyticsResponse struct {
	TodayStats       TodayStats       `json:"today_stats"`
	TypeDistribution TypeDistribution `json:"type_distribution"`
	DailyTrend       []TrendPoint     `json:"daily_trend"`
	AvgWorkingHours  float64          `json:"avg_working_hours"`
	EmployeeStats    []EmployeeStat   `json:"employee_stats"`
}
