package report

import (
	"github.com/planning-guru/attendance-backend-go/internal/pkg/validator"
)

// ReportFilter narrows the export. Nil fields are ignored; role scoping is
// applied on top by the service.
type ReportFilter struct {
	StartDate      *string
	EndDate        *string
	UserID         *string
	AttendanceType *string
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Row is one exported spreadsheet line, already joined with user identity.
type Row struct {
	UserID          string
	Name            string
	Email           string
	Date            string
	CheckInTime     *string
	CheckOutTime    *string
	WorkingHours    float64
	AttendanceType  string
	CheckInAddress  *string
	CheckOutAddress *string
	CheckInLat      *float64
	CheckInLong     *float64
	CheckOutLat     *float64
	CheckOutLong    *float64
	ApprovalStatus  string
	Remarks         string
}
