package attendance

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/planning-guru/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	AttendanceType string                `json:"attendance_type"`
	File           multipart.File        `json:"-"`
	FileHeader     *multipart.FileHeader `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateCoordinates(r.Latitude, r.Longitude)...)

	if r.AttendanceType != "" && !ValidType(r.AttendanceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_type",
			Message: "attendance_type must be one of Office, WFH, Field",
		})
	}

	errs = append(errs, validateProofPhoto(r.FileHeader)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateCoordinates(r.Latitude, r.Longitude)...)
	errs = append(errs, validateProofPhoto(r.FileHeader)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RectifyRequest is a partial patch: nil fields are left untouched.
type RectifyRequest struct {
	ID             string  `json:"-"`
	Status         *string `json:"status,omitempty"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	AttendanceType *string `json:"attendance_type,omitempty"`
	Remarks        *string `json:"remarks,omitempty"`
}

func (r *RectifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "record id is required",
		})
	}

	if r.Status != nil && !ValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Pending Approval, Present, Absent, Leave",
		})
	}

	if r.AttendanceType != nil && !ValidType(*r.AttendanceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_type",
			Message: "attendance_type must be one of Office, WFH, Field",
		})
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be an ISO8601 timestamp",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionRequest struct {
	ID             string  `json:"-"`
	Decision       string  `json:"approval_status"`
	Remarks        *string `json:"remarks,omitempty"`
	AttendanceType *string `json:"attendance_type,omitempty"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "record id is required",
		})
	}

	switch ApprovalStatus(r.Decision) {
	case ApprovalApproved, ApprovalRejected:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "approval_status",
			Message: "approval_status must be Approved or Rejected",
		})
	}

	if r.AttendanceType != nil && !ValidType(*r.AttendanceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_type",
			Message: "attendance_type must be one of Office, WFH, Field",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCoordinates(lat, long float64) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if lat < -90 || lat > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if long < -180 || long > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	return errs
}

func validateProofPhoto(header *multipart.FileHeader) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if header == nil {
		return append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo is required",
		})
	}

	idx := strings.LastIndex(header.Filename, ".")
	ext := ""
	if idx >= 0 {
		ext = strings.ToLower(header.Filename[idx:])
	}

	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "invalid file type: only jpg, jpeg, png allowed",
		})
	} else if header.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo size must not exceed 10MB",
		})
	}

	return errs
}

type LocationResponse struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `json:"address,omitempty"`
}

type AttendanceResponse struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"user_id"`
	UserName           string           `json:"user_name,omitempty"`
	UserEmail          string           `json:"user_email,omitempty"`
	Date               string           `json:"date"`
	CheckInTime        *string          `json:"check_in_time,omitempty"`
	CheckOutTime       *string          `json:"check_out_time,omitempty"`
	Status             Status           `json:"status"`
	AttendanceType     Type             `json:"attendance_type"`
	CheckInImage       *string          `json:"check_in_image,omitempty"`
	CheckOutImage      *string          `json:"check_out_image,omitempty"`
	CheckInLocation    LocationResponse `json:"check_in_location"`
	CheckOutLocation   LocationResponse `json:"check_out_location"`
	WorkingHours       float64          `json:"working_hours"`
	RectificationCount int              `json:"rectification_count"`
	ApprovalStatus     ApprovalStatus   `json:"approval_status"`
	ApprovedBy         *string          `json:"approved_by,omitempty"`
	Remarks            string           `json:"remarks,omitempty"`
}

// ToResponse converts an Attendance entity to its API shape.
func ToResponse(att Attendance) AttendanceResponse {
	var userName, userEmail string
	if att.UserName != nil {
		userName = *att.UserName
	}
	if att.UserEmail != nil {
		userEmail = *att.UserEmail
	}

	return AttendanceResponse{
		ID:             att.ID,
		UserID:         att.UserID,
		UserName:       userName,
		UserEmail:      userEmail,
		Date:           att.Date,
		CheckInTime:    timePtrToString(att.CheckInTime),
		CheckOutTime:   timePtrToString(att.CheckOutTime),
		Status:         att.Status,
		AttendanceType: att.AttendanceType,
		CheckInImage:   att.CheckInImage,
		CheckOutImage:  att.CheckOutImage,
		CheckInLocation: LocationResponse{
			Latitude:  att.CheckInLatitude,
			Longitude: att.CheckInLongitude,
			Address:   att.CheckInAddress,
		},
		CheckOutLocation: LocationResponse{
			Latitude:  att.CheckOutLatitude,
			Longitude: att.CheckOutLongitude,
			Address:   att.CheckOutAddress,
		},
		WorkingHours:       att.WorkingHours,
		RectificationCount: att.RectificationCount,
		ApprovalStatus:     att.ApprovalStatus,
		ApprovedBy:         att.ApprovedBy,
		Remarks:            att.Remarks,
	}
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
