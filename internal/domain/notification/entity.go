package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAttendanceReminder NotificationType = "attendance_reminder"
	TypeAbsenceAlert       NotificationType = "absence_alert"
	TypeLeaveApproved      NotificationType = "leave_approved"
	TypeLeaveRejected      NotificationType = "leave_rejected"
)

// Notification represents a notification entity
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}
