package leave

import (
	"context"

	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
)

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	// Create submits a new leave request for the actor.
	Create(ctx context.Context, actor user.Actor, req CreateLeaveRequest) (LeaveResponse, error)

	// ListMine retrieves the actor's own requests.
	ListMine(ctx context.Context, actor user.Actor) ([]LeaveResponse, error)

	// ListAll retrieves every request (approvers only).
	ListAll(ctx context.Context, actor user.Actor) ([]LeaveResponse, error)

	Get(ctx context.Context, actor user.Actor, id string) (LeaveResponse, error)

	// Approve moves a pending request to Approved.
	Approve(ctx context.Context, actor user.Actor, req DecideLeaveRequest) (LeaveResponse, error)

	// Reject moves a pending request to Rejected.
	Reject(ctx context.Context, actor user.Actor, req DecideLeaveRequest) (LeaveResponse, error)

	// Cancel moves a pending or approved request to Cancelled. Only the
	// owner or a super admin may cancel.
	Cancel(ctx context.Context, actor user.Actor, id string) (LeaveResponse, error)
}
