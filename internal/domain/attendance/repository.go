package attendance

import (
	"context"
)

// ListFilter narrows List queries. Nil fields are ignored.
type ListFilter struct {
	UserID         *string
	FromDate       *string
	ToDate         *string
	AttendanceType *string
	Status         *string
}

// AttendanceRepository defines data access methods for attendance records.
// The store enforces uniqueness on (user_id, date); Create surfaces a
// conflicting insert as ErrAlreadyCheckedIn so check-then-act races between
// user check-ins and the scheduler resolve to a single winner.
type AttendanceRepository interface {
	// Create inserts a new record. A (user, date) conflict returns
	// ErrAlreadyCheckedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// CreateIfAbsent inserts a record only when none exists for the
	// (user, date) slot. It reports whether a row was created; a lost race
	// is not an error. This is the auto-absent job's only write path.
	CreateIfAbsent(ctx context.Context, att Attendance) (bool, error)

	// GetByID retrieves a record by ID; misses fail with ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate retrieves the record for one employee on one date.
	// Returns (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID, date string) (*Attendance, error)

	// ExistsForDate reports whether any record exists for (user, date).
	ExistsForDate(ctx context.Context, userID, date string) (bool, error)

	// Update persists every mutable field of the record.
	Update(ctx context.Context, att Attendance) error

	// List retrieves records matching the filter, newest date first, joined
	// with the owning user's name and email.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
}
