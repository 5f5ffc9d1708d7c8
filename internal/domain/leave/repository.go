package leave

import "context"

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request; misses fail with ErrLeaveNotFound.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByUser retrieves one employee's requests, newest first.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// List retrieves all requests, newest first, joined with user info.
	List(ctx context.Context) ([]LeaveRequest, error)

	// UpdateStatus moves a request to a new status with approver metadata.
	UpdateStatus(ctx context.Context, req LeaveRequest) error
}
