package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/planning-guru/attendance-backend-go/internal/domain/attendance"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/database"
)

const attendanceColumns = `
	a.id, a.user_id, a.date, a.check_in_time, a.check_out_time,
	a.status, a.attendance_type, a.check_in_image, a.check_out_image,
	a.check_in_latitude, a.check_in_longitude, a.check_in_address,
	a.check_out_latitude, a.check_out_longitude, a.check_out_address,
	a.working_hours, a.rectification_count, a.approval_status,
	a.approved_by, a.remarks, a.created_at, a.updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.Status, &att.AttendanceType, &att.CheckInImage, &att.CheckOutImage,
		&att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInAddress,
		&att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutAddress,
		&att.WorkingHours, &att.RectificationCount, &att.ApprovalStatus,
		&att.ApprovedBy, &att.Remarks, &att.CreatedAt, &att.UpdatedAt,
	)
}

// Create implements attendance.AttendanceRepository. The attendances table
// carries a unique index on (user_id, date); a conflicting insert is mapped
// to ErrAlreadyCheckedIn.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			user_id, date, check_in_time, check_out_time, status, attendance_type,
			check_in_image, check_out_image,
			check_in_latitude, check_in_longitude, check_in_address,
			check_out_latitude, check_out_longitude, check_out_address,
			working_hours, rectification_count, approval_status, approved_by, remarks
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.UserID, att.Date, att.CheckInTime, att.CheckOutTime, att.Status, att.AttendanceType,
		att.CheckInImage, att.CheckOutImage,
		att.CheckInLatitude, att.CheckInLongitude, att.CheckInAddress,
		att.CheckOutLatitude, att.CheckOutLongitude, att.CheckOutAddress,
		att.WorkingHours, att.RectificationCount, att.ApprovalStatus, att.ApprovedBy, att.Remarks,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// CreateIfAbsent implements attendance.AttendanceRepository. ON CONFLICT DO
// NOTHING keeps the sweep race-free against concurrent check-ins.
func (a *attendanceRepository) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			user_id, date, status, attendance_type,
			working_hours, rectification_count, approval_status, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		att.UserID, att.Date, att.Status, att.AttendanceType,
		att.WorkingHours, att.RectificationCount, att.ApprovalStatus, att.Remarks,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create attendance if absent: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `, u.name, u.email
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.Status, &att.AttendanceType, &att.CheckInImage, &att.CheckOutImage,
		&att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInAddress,
		&att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutAddress,
		&att.WorkingHours, &att.RectificationCount, &att.ApprovalStatus,
		&att.ApprovedBy, &att.Remarks, &att.CreatedAt, &att.UpdatedAt,
		&att.UserName, &att.UserEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.date = $2
		LIMIT 1`

	var att attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, query, userID, date), &att)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// ExistsForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ExistsForDate(ctx context.Context, userID, date string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendances WHERE user_id = $1 AND date = $2)`,
		userID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_in_time = $2,
			check_out_time = $3,
			status = $4,
			attendance_type = $5,
			check_in_image = $6,
			check_out_image = $7,
			check_in_latitude = $8,
			check_in_longitude = $9,
			check_in_address = $10,
			check_out_latitude = $11,
			check_out_longitude = $12,
			check_out_address = $13,
			working_hours = $14,
			rectification_count = $15,
			approval_status = $16,
			approved_by = $17,
			remarks = $18,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.CheckInTime, att.CheckOutTime, att.Status, att.AttendanceType,
		att.CheckInImage, att.CheckOutImage,
		att.CheckInLatitude, att.CheckInLongitude, att.CheckInAddress,
		att.CheckOutLatitude, att.CheckOutLongitude, att.CheckOutAddress,
		att.WorkingHours, att.RectificationCount, att.ApprovalStatus,
		att.ApprovedBy, att.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var conditions []string
	var args []interface{}
	argNum := 1

	addCondition := func(clause string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(clause, argNum))
		args = append(args, value)
		argNum++
	}

	if filter.UserID != nil {
		addCondition("a.user_id = $%d", *filter.UserID)
	}
	if filter.FromDate != nil {
		addCondition("a.date >= $%d", *filter.FromDate)
	}
	if filter.ToDate != nil {
		addCondition("a.date <= $%d", *filter.ToDate)
	}
	if filter.AttendanceType != nil {
		addCondition("a.attendance_type = $%d", *filter.AttendanceType)
	}
	if filter.Status != nil {
		addCondition("a.status = $%d", *filter.Status)
	}

	query := `SELECT ` + attendanceColumns + `, u.name, u.email
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, a.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
			&att.Status, &att.AttendanceType, &att.CheckInImage, &att.CheckOutImage,
			&att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInAddress,
			&att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutAddress,
			&att.WorkingHours, &att.RectificationCount, &att.ApprovalStatus,
			&att.ApprovedBy, &att.Remarks, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, nil
}
