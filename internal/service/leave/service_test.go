package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planning-guru/attendance-backend-go/internal/domain/leave"
	"github.com/planning-guru/attendance-backend-go/internal/domain/notification"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = fmt.Sprintf("leave-%d", f.nextID)
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range f.requests {
		if req.UserID == userID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range f.requests {
		result = append(result, req)
	}
	return result, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, req leave.LeaveRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.ErrLeaveNotFound
	}
	f.requests[req.ID] = req
	return nil
}

type fakeNotificationService struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotificationService) Queue(ctx context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func (f *fakeNotificationService) ListMine(ctx context.Context, userID string) (notification.ListResponse, error) {
	return notification.ListResponse{}, nil
}
func (f *fakeNotificationService) MarkRead(ctx context.Context, id, userID string) error { return nil }
func (f *fakeNotificationService) MarkAllRead(ctx context.Context, userID string) error  { return nil }
func (f *fakeNotificationService) Delete(ctx context.Context, id, userID string) error   { return nil }
func (f *fakeNotificationService) Stop()                                                 {}

var (
	employee   = user.Actor{UserID: "emp-1", Role: user.RoleEmployee}
	otherEmp   = user.Actor{UserID: "emp-2", Role: user.RoleEmployee}
	admin      = user.Actor{UserID: "adm-1", Role: user.RoleAdmin}
	superAdmin = user.Actor{UserID: "sup-1", Role: user.RoleSuperAdmin}
)

func newTestService(repo *fakeLeaveRepo) (leave.LeaveService, *fakeNotificationService) {
	notifier := &fakeNotificationService{}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return NewLeaveService(repo, notifier, clock.Fixed(now)), notifier
}

func sickLeave() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		LeaveType: string(leave.TypeSick),
		StartDate: "2026-03-09",
		EndDate:   "2026-03-11",
		Reason:    "Flu",
	}
}

func TestCreateLeaveComputesInclusiveDays(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	assert.Equal(t, "emp-1", created.UserID)
	assert.Equal(t, 3, created.NumberOfDays)
	assert.Equal(t, string(leave.StatusPending), created.Status)
}

func TestCreateLeaveRejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	req := sickLeave()
	req.StartDate = "2026-03-11"
	req.EndDate = "2026-03-09"

	_, err := svc.Create(context.Background(), employee, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestApproveSetsApproverMetadata(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, notifier := newTestService(repo)

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	comments := "Get well soon"
	decided, err := svc.Approve(context.Background(), admin, leave.DecideLeaveRequest{
		ID:       created.ID,
		Comments: &comments,
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusApproved), decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, "adm-1", *decided.ApprovedBy)
	require.NotNil(t, decided.ApprovalDate)
	require.NotNil(t, decided.Comments)
	assert.Equal(t, "Get well soon", *decided.Comments)

	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeLeaveApproved, notifier.queued[0].Type)
	assert.Equal(t, "emp-1", notifier.queued[0].UserID)
}

func TestRejectNotifiesEmployee(t *testing.T) {
	svc, notifier := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	decided, err := svc.Reject(context.Background(), admin, leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusRejected), decided.Status)
	require.Len(t, notifier.queued, 1)
	assert.Equal(t, notification.TypeLeaveRejected, notifier.queued[0].Type)
}

func TestDecideRequiresApprover(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), employee, leave.DecideLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, user.ErrAdminAccessRequired)
}

func TestDecideTwiceFails(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), admin, leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), admin, leave.DecideLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestCancelOwnPendingLeave(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), employee, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusCancelled), cancelled.Status)
}

func TestCancelApprovedLeave(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), admin, leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), employee, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusCancelled), cancelled.Status)
}

func TestCancelRejectedLeaveFails(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), admin, leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), employee, created.ID)
	assert.ErrorIs(t, err, leave.ErrCannotCancel)
}

func TestCancelDeniesOtherEmployees(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), otherEmp, created.ID)
	assert.ErrorIs(t, err, leave.ErrUnauthorized)
}

func TestSuperAdminMayCancelAnyLeave(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), superAdmin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusCancelled), cancelled.Status)
}

func TestGetDeniesOtherEmployeesRequest(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created, err := svc.Create(context.Background(), employee, sickLeave())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), otherEmp, created.ID)
	assert.ErrorIs(t, err, leave.ErrUnauthorized)

	got, err := svc.Get(context.Background(), admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestListAllRequiresApprover(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	_, err := svc.ListAll(context.Background(), employee)
	assert.ErrorIs(t, err, user.ErrAdminAccessRequired)
}
