package attendance

import (
	"context"

	"github.com/planning-guru/attendance-backend-go/internal/domain/audit"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
)

// AttendanceService is the sole authority for creating and mutating
// attendance records; every business rule of the lifecycle lives behind it.
type AttendanceService interface {
	// CheckIn creates today's record for the actor with a photo and
	// geolocation. Fails with ErrAlreadyCheckedIn if a record exists.
	CheckIn(ctx context.Context, actor user.Actor, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's open record and recomputes working hours.
	// The record status is deliberately left untouched until approval.
	CheckOut(ctx context.Context, actor user.Actor, req CheckOutRequest) (AttendanceResponse, error)

	// List retrieves records visible to the actor. Employees see their own
	// trailing-3-month window; approvers see everything.
	List(ctx context.Context, actor user.Actor, filter ListFilter) ([]AttendanceResponse, error)

	// Get retrieves a single record by ID.
	Get(ctx context.Context, actor user.Actor, id string) (AttendanceResponse, error)

	// Rectify applies a partial correction, bounded by the actor role's
	// rectification cap, and records an audit entry.
	Rectify(ctx context.Context, actor user.Actor, req RectifyRequest) (AttendanceResponse, error)

	// Decide approves or rejects a record. Approved forces status Present,
	// Rejected forces Absent, regardless of prior state.
	Decide(ctx context.Context, actor user.Actor, req DecisionRequest) (AttendanceResponse, error)

	// AuditTrail lists the rectification and decision history recorded
	// against one employee. Approvers only.
	AuditTrail(ctx context.Context, actor user.Actor, targetUserID string) ([]audit.EntryResponse, error)
}
