package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/planning-guru/attendance-backend-go/internal/domain/leave"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/database"
)

const leaveColumns = `
	l.id, l.user_id, l.leave_type, l.start_date, l.end_date, l.number_of_days,
	l.reason, l.status, l.approved_by, l.approval_date, l.comments,
	l.created_at, l.updated_at`

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			user_id, leave_type, start_date, end_date, number_of_days, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.UserID, req.LeaveType, req.StartDate, req.EndDate,
		req.NumberOfDays, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + `, u.name, u.email, approver.name
		FROM leave_requests l
		LEFT JOIN users u ON u.id = l.user_id
		LEFT JOIN users approver ON approver.id = l.approved_by
		WHERE l.id = $1`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.NumberOfDays,
		&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovalDate, &req.Comments,
		&req.CreatedAt, &req.UpdatedAt,
		&req.UserName, &req.UserEmail, &req.ApproverName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + `, u.name, u.email, approver.name
		FROM leave_requests l
		LEFT JOIN users u ON u.id = l.user_id
		LEFT JOIN users approver ON approver.id = l.approved_by
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by user: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + `, u.name, u.email, approver.name
		FROM leave_requests l
		LEFT JOIN users u ON u.id = l.user_id
		LEFT JOIN users approver ON approver.id = l.approved_by
		ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $2,
			approved_by = $3,
			approval_date = $4,
			comments = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Status, req.ApprovedBy, req.ApprovalDate, req.Comments,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.NumberOfDays,
			&req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovalDate, &req.Comments,
			&req.CreatedAt, &req.UpdatedAt,
			&req.UserName, &req.UserEmail, &req.ApproverName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave request rows: %w", err)
	}
	return requests, nil
}
