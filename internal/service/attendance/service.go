package attendance

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/planning-guru/attendance-backend-go/internal/domain/attendance"
	"github.com/planning-guru/attendance-backend-go/internal/domain/audit"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/geocode"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/storage"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/validator"
)

const auditTrailLimit = 50

type AttendanceServiceImpl struct {
	attendanceRepo      attendance.AttendanceRepository
	auditRepo           audit.AuditRepository
	fileStorage         storage.FileStorage
	geocoder            geocode.Resolver
	calendar            *clock.Calendar
	rectificationLimits map[user.Role]int
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	auditRepo audit.AuditRepository,
	fileStorage storage.FileStorage,
	geocoder geocode.Resolver,
	calendar *clock.Calendar,
	rectificationLimits map[user.Role]int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:      attendanceRepo,
		auditRepo:           auditRepo,
		fileStorage:         fileStorage,
		geocoder:            geocoder,
		calendar:            calendar,
		rectificationLimits: rectificationLimits,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, actor user.Actor, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.calendar.Now()
	today := s.calendar.Today()

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	imagePath, err := s.uploadProof(ctx, actor.UserID, "checkin", req.FileHeader.Filename, req.File)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	address := s.resolveAddress(ctx, req.Latitude, req.Longitude)

	attType := attendance.Type(req.AttendanceType)
	if req.AttendanceType == "" {
		attType = attendance.TypeOffice
	}

	record := attendance.Attendance{
		UserID:           actor.UserID,
		Date:             today,
		CheckInTime:      &now,
		Status:           attendance.StatusPendingApproval,
		AttendanceType:   attType,
		CheckInImage:     &imagePath,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
		CheckInAddress:   &address,
		ApprovalStatus:   attendance.ApprovalPending,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. The record status stays
// as-is: only an approver's decision moves it out of Pending Approval.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, actor user.Actor, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.calendar.Now()
	today := s.calendar.Today()

	record, err := s.attendanceRepo.GetByUserAndDate(ctx, actor.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoCheckInFound
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	imagePath, err := s.uploadProof(ctx, actor.UserID, "checkout", req.FileHeader.Filename, req.File)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	address := s.resolveAddress(ctx, req.Latitude, req.Longitude)

	record.CheckOutTime = &now
	record.CheckOutImage = &imagePath
	record.CheckOutLatitude = &req.Latitude
	record.CheckOutLongitude = &req.Longitude
	record.CheckOutAddress = &address
	record.RecomputeWorkingHours()

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, actor user.Actor, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	scope := user.ScopeFor(actor, s.calendar.MonthsAgo(3))
	if scope.UserID != nil {
		filter.UserID = scope.UserID
	}
	if scope.FromDate != nil {
		if filter.FromDate == nil || *filter.FromDate < *scope.FromDate {
			filter.FromDate = scope.FromDate
		}
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}

	return responses, nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !actor.IsApprover() && record.UserID != actor.UserID {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	return attendance.ToResponse(record), nil
}

// Rectify implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Rectify(ctx context.Context, actor user.Actor, req attendance.RectifyRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !actor.IsApprover() {
		return attendance.AttendanceResponse{}, user.ErrAdminAccessRequired
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	limit := s.rectificationLimits[actor.Role]
	if record.RectificationCount >= limit {
		return attendance.AttendanceResponse{}, attendance.ErrRectificationLimitReached
	}

	changes := map[string]interface{}{}

	if req.Status != nil {
		changes["status"] = map[string]interface{}{"old": record.Status, "new": *req.Status}
		record.Status = attendance.Status(*req.Status)
	}
	if req.AttendanceType != nil {
		changes["attendance_type"] = map[string]interface{}{"old": record.AttendanceType, "new": *req.AttendanceType}
		record.AttendanceType = attendance.Type(*req.AttendanceType)
	}
	if req.CheckInTime != nil {
		t, err := parseTimestamp(*req.CheckInTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		changes["check_in_time"] = map[string]interface{}{"old": record.CheckInTime, "new": t}
		record.CheckInTime = &t
	}
	if req.CheckOutTime != nil {
		t, err := parseTimestamp(*req.CheckOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		changes["check_out_time"] = map[string]interface{}{"old": record.CheckOutTime, "new": t}
		record.CheckOutTime = &t
	}
	if req.Remarks != nil {
		changes["remarks"] = map[string]interface{}{"old": record.Remarks, "new": *req.Remarks}
		record.Remarks = *req.Remarks
	}

	// The patched times must still describe a forward-running workday.
	if record.CheckInTime != nil && record.CheckOutTime != nil && record.CheckOutTime.Before(*record.CheckInTime) {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "check_out_time",
			Message: "check_out_time must not be before check_in_time",
		}}
	}

	record.RecomputeWorkingHours()
	record.RectificationCount++

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.recordAudit(ctx, audit.ActionRectifyAttendance, actor.UserID, record.UserID, map[string]interface{}{
		"attendance_id":       record.ID,
		"date":                record.Date,
		"rectification_count": record.RectificationCount,
		"changes":             changes,
	})

	return attendance.ToResponse(record), nil
}

// Decide implements attendance.AttendanceService. Approval forces Present and
// rejection forces Absent regardless of the record's prior status.
func (s *AttendanceServiceImpl) Decide(ctx context.Context, actor user.Actor, req attendance.DecisionRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !actor.IsApprover() {
		return attendance.AttendanceResponse{}, user.ErrAdminAccessRequired
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	decision := attendance.ApprovalStatus(req.Decision)
	previousStatus := record.Status

	switch decision {
	case attendance.ApprovalApproved:
		record.Status = attendance.StatusPresent
	case attendance.ApprovalRejected:
		record.Status = attendance.StatusAbsent
	default:
		return attendance.AttendanceResponse{}, attendance.ErrInvalidDecision
	}

	record.ApprovalStatus = decision
	approvedBy := actor.UserID
	record.ApprovedBy = &approvedBy
	if req.AttendanceType != nil {
		record.AttendanceType = attendance.Type(*req.AttendanceType)
	}
	if req.Remarks != nil {
		record.Remarks = *req.Remarks
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.recordAudit(ctx, audit.ActionDecideAttendance, actor.UserID, record.UserID, map[string]interface{}{
		"attendance_id":   record.ID,
		"date":            record.Date,
		"decision":        decision,
		"previous_status": previousStatus,
		"new_status":      record.Status,
	})

	return attendance.ToResponse(record), nil
}

// AuditTrail implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AuditTrail(ctx context.Context, actor user.Actor, targetUserID string) ([]audit.EntryResponse, error) {
	if !actor.IsApprover() {
		return nil, user.ErrAdminAccessRequired
	}

	entries, err := s.auditRepo.ListByTargetUser(ctx, targetUserID, auditTrailLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, audit.ToResponse(entry))
	}

	return responses, nil
}

func (s *AttendanceServiceImpl) uploadProof(ctx context.Context, userID, phase, filename string, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	path := fmt.Sprintf("attendance/%s/%s_%s%s", phase, userID, s.calendar.Now().Format("20060102T150405"), ext)

	stored, err := s.fileStorage.Upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to store attendance proof: %w", err)
	}

	return stored, nil
}

// resolveAddress never fails: a geocoding error degrades to the raw
// coordinates.
func (s *AttendanceServiceImpl) resolveAddress(ctx context.Context, latitude, longitude float64) string {
	address, err := s.geocoder.Resolve(ctx, latitude, longitude)
	if err != nil {
		slog.Warn("Reverse geocoding failed, falling back to coordinates",
			"latitude", latitude, "longitude", longitude, "error", err)
		return geocode.FallbackAddress(latitude, longitude)
	}
	return address
}

// recordAudit is best-effort: a failed audit write never fails the operation.
func (s *AttendanceServiceImpl) recordAudit(ctx context.Context, action, performedBy, targetUser string, details map[string]interface{}) {
	err := s.auditRepo.Record(ctx, audit.Entry{
		Action:      action,
		PerformedBy: performedBy,
		TargetUser:  targetUser,
		Details:     details,
	})
	if err != nil {
		slog.Error("Failed to record audit entry", "action", action, "error", err)
	}
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, value)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t, nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}
