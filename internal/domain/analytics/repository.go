package analytics

import "context"

// AnalyticsRepository exposes the read-side aggregations over attendance
// records. All queries are computed on demand, never cached.
type AnalyticsRepository interface {
	// CountTodayByType counts records on one date grouped by attendance type.
	CountTodayByType(ctx context.Context, date string) (TypeDistribution, int, error)

	// CountByDate counts records per date within [fromDate, toDate]. Dates
	// with no records are simply absent from the map.
	CountByDate(ctx context.Context, fromDate, toDate string) (map[string]int, error)

	// AvgWorkingHours averages workingHours over [fromDate, toDate],
	// restricted to records with workingHours > 0. Returns 0 when none
	// qualify.
	AvgWorkingHours(ctx context.Context, fromDate, toDate string) (float64, error)

	// TopPresent returns the employees with the most Present records since
	// fromDate, descending by count.
	TopPresent(ctx context.Context, fromDate string, limit int) ([]EmployeeStat, error)
}
