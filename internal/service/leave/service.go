package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/planning-guru/attendance-backend-go/internal/domain/leave"
	"github.com/planning-guru/attendance-backend-go/internal/domain/notification"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
)

type LeaveServiceImpl struct {
	leaveRepo       leave.LeaveRepository
	notificationSvc notification.Service
	clk             clock.Clock
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	notificationSvc notification.Service,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:       leaveRepo,
		notificationSvc: notificationSvc,
		clk:             clk,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, actor user.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:       actor.UserID,
		LeaveType:    leave.LeaveType(req.LeaveType),
		StartDate:    startDate,
		EndDate:      endDate,
		NumberOfDays: req.InclusiveDays(),
		Reason:       req.Reason,
		Status:       leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, actor user.Actor) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, actor user.Actor) ([]leave.LeaveResponse, error) {
	if !actor.IsApprover() {
		return nil, user.ErrAdminAccessRequired
	}

	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !actor.IsApprover() && req.UserID != actor.UserID {
		return leave.LeaveResponse{}, leave.ErrUnauthorized
	}

	return leave.ToResponse(req), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, actor user.Actor, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, actor, req, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, actor user.Actor, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, actor, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, actor user.Actor, req leave.DecideLeaveRequest, status leave.LeaveStatus) (leave.LeaveResponse, error) {
	if !actor.IsApprover() {
		return leave.LeaveResponse{}, user.ErrAdminAccessRequired
	}

	record, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if record.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	now := s.clk.Now()
	approvedBy := actor.UserID
	record.Status = status
	record.ApprovedBy = &approvedBy
	record.ApprovalDate = &now
	record.Comments = req.Comments

	if err := s.leaveRepo.UpdateStatus(ctx, record); err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyDecision(ctx, record)

	return leave.ToResponse(record), nil
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, actor user.Actor, id string) (leave.LeaveResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if record.UserID != actor.UserID && !actor.IsSuperAdmin() {
		return leave.LeaveResponse{}, leave.ErrUnauthorized
	}
	if record.Status != leave.StatusPending && record.Status != leave.StatusApproved {
		return leave.LeaveResponse{}, leave.ErrCannotCancel
	}

	record.Status = leave.StatusCancelled

	if err := s.leaveRepo.UpdateStatus(ctx, record); err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(record), nil
}

func (s *LeaveServiceImpl) notifyDecision(ctx context.Context, record leave.LeaveRequest) {
	notifType := notification.TypeLeaveApproved
	title := "Leave Request Approved"
	if record.Status == leave.StatusRejected {
		notifType = notification.TypeLeaveRejected
		title = "Leave Request Rejected"
	}

	err := s.notificationSvc.Queue(ctx, notification.CreateNotificationRequest{
		UserID: record.UserID,
		Type:   notifType,
		Title:  title,
		Message: fmt.Sprintf("Your %s request from %s to %s was %s.",
			record.LeaveType,
			record.StartDate.Format("2006-01-02"),
			record.EndDate.Format("2006-01-02"),
			record.Status,
		),
	})
	if err != nil {
		slog.Error("Failed to queue leave decision notification",
			"leave_id", record.ID, "user_id", record.UserID, "error", err)
	}
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses
}
