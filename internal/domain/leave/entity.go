package leave

import "time"

type LeaveStatus string

const (
	StatusPending   LeaveStatus = "Pending"
	StatusApproved  LeaveStatus = "Approved"
	StatusRejected  LeaveStatus = "Rejected"
	StatusCancelled LeaveStatus = "Cancelled"
)

// IsTerminal reports whether the status permits no further mutation.
// Approved requests may still be cancelled by their owner.
func (s LeaveStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

type LeaveType string

const (
	TypeSick        LeaveType = "Sick Leave"
	TypeCasual      LeaveType = "Casual Leave"
	TypePaid        LeaveType = "Paid Leave"
	TypeUnpaid      LeaveType = "Unpaid Leave"
	TypeMaternity   LeaveType = "Maternity Leave"
	TypePaternity   LeaveType = "Paternity Leave"
	TypeBereavement LeaveType = "Bereavement Leave"
	TypeOther       LeaveType = "Other"
)

// ValidLeaveType reports whether s names a known leave category.
func ValidLeaveType(s string) bool {
	switch LeaveType(s) {
	case TypeSick, TypeCasual, TypePaid, TypeUnpaid,
		TypeMaternity, TypePaternity, TypeBereavement, TypeOther:
		return true
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID           string
	UserID       string
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	NumberOfDays int
	Reason       string
	Status       LeaveStatus
	ApprovedBy   *string
	ApprovalDate *time.Time
	Comments     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	UserName     *string
	UserEmail    *string
	ApproverName *string
}
