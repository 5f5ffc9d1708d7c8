package audit

import "time"

// Actions recorded by the attendance lifecycle.
const (
	ActionRectifyAttendance = "RECTIFY_ATTENDANCE"
	ActionDecideAttendance  = "APPROVE_REJECT_ATTENDANCE"
)

// Entry captures who changed what. Details holds the old and new values of
// the touched fields as a free-form JSON document.
type Entry struct {
	ID          string
	Action      string
	PerformedBy string
	TargetUser  string
	Details     map[string]interface{}
	CreatedAt   time.Time
}
