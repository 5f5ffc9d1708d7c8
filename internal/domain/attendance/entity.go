package attendance

import (
	"time"
)

// Status is the lifecycle state of a daily attendance record.
type Status string

const (
	StatusPendingApproval Status = "Pending Approval"
	StatusPresent         Status = "Present"
	StatusAbsent          Status = "Absent"
	StatusLeave           Status = "Leave"
)

// Type describes where the employee worked that day.
type Type string

const (
	TypeOffice Type = "Office"
	TypeWFH    Type = "WFH"
	TypeField  Type = "Field"
)

// ApprovalStatus is the administrative sign-off state, tracked independently
// of Status: a clean checkout still waits for an approver's decision.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// AutoAbsentRemarks is the fixed remark written by the auto-absent job.
const AutoAbsentRemarks = "Auto-marked absent - No attendance recorded"

// Attendance is one record per (user, date key). The (user_id, date) pair is
// unique at the store level; a second conflicting insert fails rather than
// silently overwriting.
type Attendance struct {
	ID                 string
	UserID             string
	Date               string // YYYY-MM-DD
	CheckInTime        *time.Time
	CheckOutTime       *time.Time
	Status             Status
	AttendanceType     Type
	CheckInImage       *string
	CheckOutImage      *string
	CheckInLatitude    *float64
	CheckInLongitude   *float64
	CheckInAddress     *string
	CheckOutLatitude   *float64
	CheckOutLongitude  *float64
	CheckOutAddress    *string
	WorkingHours       float64
	RectificationCount int
	ApprovalStatus     ApprovalStatus
	ApprovedBy         *string
	Remarks            string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO / Join
	UserName  *string
	UserEmail *string
}

// RecomputeWorkingHours derives workingHours from the two check times as a
// fractional hour count. It must run whenever either time changes.
func (a *Attendance) RecomputeWorkingHours() {
	if a.CheckInTime == nil || a.CheckOutTime == nil {
		return
	}
	a.WorkingHours = a.CheckOutTime.Sub(*a.CheckInTime).Hours()
}

// ValidType reports whether s names a known attendance type.
func ValidType(s string) bool {
	switch Type(s) {
	case TypeOffice, TypeWFH, TypeField:
		return true
	}
	return false
}

// ValidStatus reports whether s names a known record status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPendingApproval, StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}
