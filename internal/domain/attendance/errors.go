package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNoCheckInFound    = errors.New("no check-in record found for today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// Correction / approval errors
	ErrRectificationLimitReached = errors.New("rectification limit reached for this record")
	ErrInvalidDecision           = errors.New("approval decision must be Approved or Rejected")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnauthorized   = errors.New("unauthorized to access this attendance record")
)
