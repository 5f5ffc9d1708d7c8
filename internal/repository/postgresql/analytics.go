package postgresql

import (
	"context"
	"fmt"

	"github.com/planning-guru/attendance-backend-go/internal/domain/analytics"
	"github.com/planning-guru/attendance-backend-go/internal/domain/attendance"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/database"
)

type analyticsRepository struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// CountTodayByType implements analytics.AnalyticsRepository.
func (r *analyticsRepository) CountTodayByType(ctx context.Context, date string) (analytics.TypeDistribution, int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT attendance_type, COUNT(*)
		FROM attendances
		WHERE date = $1
		GROUP BY attendance_type
	`, date)
	if err != nil {
		return analytics.TypeDistribution{}, 0, fmt.Errorf("failed to count attendance by type: %w", err)
	}
	defer rows.Close()

	var dist analytics.TypeDistribution
	total := 0
	for rows.Next() {
		var attType string
		var count int
		if err := rows.Scan(&attType, &count); err != nil {
			return analytics.TypeDistribution{}, 0, fmt.Errorf("failed to scan type count: %w", err)
		}
		switch attendance.Type(attType) {
		case attendance.TypeOffice:
			dist.Office = count
		case attendance.TypeWFH:
			dist.WFH = count
		case attendance.TypeField:
			dist.Field = count
		}
		total += count
	}
	if err := rows.Err(); err != nil {
		return analytics.TypeDistribution{}, 0, fmt.Errorf("failed to iterate type counts: %w", err)
	}

	return dist, total, nil
}

// CountByDate implements analytics.AnalyticsRepository.
func (r *analyticsRepository) CountByDate(ctx context.Context, fromDate, toDate string) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT date, COUNT(*)
		FROM attendances
		WHERE date >= $1 AND date <= $2
		GROUP BY date
	`, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by date: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan date count: %w", err)
		}
		counts[date] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate date counts: %w", err)
	}

	return counts, nil
}

// AvgWorkingHours implements analytics.AnalyticsRepository. Records without a
// completed checkout carry zero hours and are excluded.
func (r *analyticsRepository) AvgWorkingHours(ctx context.Context, fromDate, toDate string) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var avg float64
	err := q.QueryRow(ctx, `
		SELECT COALESCE(AVG(working_hours), 0)
		FROM attendances
		WHERE date >= $1 AND date <= $2 AND working_hours > 0
	`, fromDate, toDate).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to average working hours: %w", err)
	}

	return avg, nil
}

// TopPresent implements analytics.AnalyticsRepository.
func (r *analyticsRepository) TopPresent(ctx context.Context, fromDate string, limit int) ([]analytics.EmployeeStat, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT a.user_id, u.name, COUNT(*) AS present_count
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date >= $1 AND a.status = $2
		GROUP BY a.user_id, u.name
		ORDER BY present_count DESC
		LIMIT $3
	`, fromDate, attendance.StatusPresent, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank present employees: %w", err)
	}
	defer rows.Close()

	var stats []analytics.EmployeeStat
	for rows.Next() {
		var stat analytics.EmployeeStat
		if err := rows.Scan(&stat.UserID, &stat.Name, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan employee stat: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee stats: %w", err)
	}

	return stats, nil
}
