package leave

import (
	"time"

	"github.com/planning-guru/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidLeaveType(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "unknown leave type",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InclusiveDays computes the day count of the request, both endpoints
// included.
func (r *CreateLeaveRequest) InclusiveDays() int {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

type DecideLeaveRequest struct {
	ID       string  `json:"-"`
	Comments *string `json:"comments,omitempty"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name,omitempty"`
	UserEmail    string  `json:"user_email,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	NumberOfDays int     `json:"number_of_days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApproverName *string `json:"approver_name,omitempty"`
	ApprovalDate *string `json:"approval_date,omitempty"`
	Comments     *string `json:"comments,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ToResponse converts a LeaveRequest entity to its API shape.
func ToResponse(req LeaveRequest) LeaveResponse {
	var userName, userEmail string
	if req.UserName != nil {
		userName = *req.UserName
	}
	if req.UserEmail != nil {
		userEmail = *req.UserEmail
	}

	var approvalDate *string
	if req.ApprovalDate != nil {
		formatted := req.ApprovalDate.Format(time.RFC3339)
		approvalDate = &formatted
	}

	return LeaveResponse{
		ID:           req.ID,
		UserID:       req.UserID,
		UserName:     userName,
		UserEmail:    userEmail,
		LeaveType:    string(req.LeaveType),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		NumberOfDays: req.NumberOfDays,
		Reason:       req.Reason,
		Status:       string(req.Status),
		ApprovedBy:   req.ApprovedBy,
		ApproverName: req.ApproverName,
		ApprovalDate: approvalDate,
		Comments:     req.Comments,
		CreatedAt:    req.CreatedAt.Format(time.RFC3339),
	}
}
