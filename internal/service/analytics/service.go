package analytics

import (
	"context"
	"fmt"

	"github.com/planning-guru/attendance-backend-go/internal/domain/analytics"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
)

const (
	trendDays       = 7
	leaderboardDays = 30
	leaderboardSize = 5
)

type AnalyticsServiceImpl struct {
	analyticsRepo analytics.AnalyticsRepository
	calendar      *clock.Calendar
}

func NewAnalyticsService(analyticsRepo analytics.AnalyticsRepository, calendar *clock.Calendar) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		calendar:      calendar,
	}
}

// GetAnalytics implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetAnalytics(ctx context.Context) (analytics.AnalyticsResponse, error) {
	today := s.calendar.Today()

	dist, total, err := s.analyticsRepo.CountTodayByType(ctx, today)
	if err != nil {
		return analytics.AnalyticsResponse{}, fmt.Errorf("failed to compute today's distribution: %w", err)
	}

	trendWindow := s.calendar.TrailingDays(trendDays)
	trendFrom := trendWindow[0]

	counts, err := s.analyticsRepo.CountByDate(ctx, trendFrom, today)
	if err != nil {
		return analytics.AnalyticsResponse{}, fmt.Errorf("failed to compute daily trend: %w", err)
	}

	// Zero-fill so the trend always spans the full window.
	trend := make([]analytics.TrendPoint, 0, trendDays)
	for _, date := range trendWindow {
		trend = append(trend, analytics.TrendPoint{Date: date, Count: counts[date]})
	}

	avgHours, err := s.analyticsRepo.AvgWorkingHours(ctx, trendFrom, today)
	if err != nil {
		return analytics.AnalyticsResponse{}, fmt.Errorf("failed to compute average working hours: %w", err)
	}

	// The boundary is inclusive, so today minus 29 spans exactly 30 days.
	topPresent, err := s.analyticsRepo.TopPresent(ctx, s.calendar.DaysAgo(leaderboardDays-1), leaderboardSize)
	if err != nil {
		return analytics.AnalyticsResponse{}, fmt.Errorf("failed to compute employee leaderboard: %w", err)
	}
	if topPresent == nil {
		topPresent = []analytics.EmployeeStat{}
	}

	return analytics.AnalyticsResponse{
		TodayStats:       analytics.TodayStats{Total: total},
		TypeDistribution: dist,
		DailyTrend:       trend,
		AvgWorkingHours:  avgHours,
		EmployeeStats:    topPresent,
	}, nil
}
