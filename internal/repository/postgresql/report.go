package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/planning-guru/attendance-backend-go/internal/domain/report"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// Rows implements report.ReportRepository. Check times come back as RFC3339
// text so the exporter writes them verbatim.
func (r *reportRepository) Rows(ctx context.Context, filter report.ReportFilter) ([]report.Row, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argNum := 1

	addCondition := func(clause string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(clause, argNum))
		args = append(args, value)
		argNum++
	}

	if filter.StartDate != nil {
		addCondition("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addCondition("a.date <= $%d", *filter.EndDate)
	}
	if filter.UserID != nil {
		addCondition("a.user_id = $%d", *filter.UserID)
	}
	if filter.AttendanceType != nil {
		addCondition("a.attendance_type = $%d", *filter.AttendanceType)
	}

	query := `
		SELECT
			a.user_id, u.name, u.email, a.date,
			to_char(a.check_in_time, 'YYYY-MM-DD"T"HH24:MI:SSOF'),
			to_char(a.check_out_time, 'YYYY-MM-DD"T"HH24:MI:SSOF'),
			a.working_hours, a.attendance_type,
			a.check_in_address, a.check_out_address,
			a.check_in_latitude, a.check_in_longitude,
			a.check_out_latitude, a.check_out_longitude,
			a.approval_status, a.remarks
		FROM attendances a
		JOIN users u ON u.id = a.user_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date, u.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report rows: %w", err)
	}
	defer rows.Close()

	var result []report.Row
	for rows.Next() {
		var row report.Row
		err := rows.Scan(
			&row.UserID, &row.Name, &row.Email, &row.Date,
			&row.CheckInTime, &row.CheckOutTime,
			&row.WorkingHours, &row.AttendanceType,
			&row.CheckInAddress, &row.CheckOutAddress,
			&row.CheckInLat, &row.CheckInLong,
			&row.CheckOutLat, &row.CheckOutLong,
			&row.ApprovalStatus, &row.Remarks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return result, nil
}
