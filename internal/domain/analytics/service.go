package analytics

import "context"

// AnalyticsService derives dashboard statistics from the attendance store.
type AnalyticsService interface {
	// GetAnalytics computes today's distribution, the 7-day trend (always
	// exactly 7 entries, zero-filled), the 7-day average working hours and
	// the top-5 Present leaderboard over the trailing 30 days.
	GetAnalytics(ctx context.Context) (AnalyticsResponse, error)
}
