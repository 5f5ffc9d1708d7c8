package cron

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planning-guru/attendance-backend-go/internal/domain/attendance"
	"github.com/planning-guru/attendance-backend-go/internal/domain/notification"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(userID, date string) string { return userID + "|" + date }

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if _, ok := f.records[f.key(att.UserID, att.Date)]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[f.key(att.UserID, att.Date)] = att
	return att, nil
}

func (f *fakeAttendanceRepo) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (bool, error) {
	if _, ok := f.records[f.key(att.UserID, att.Date)]; ok {
		return false, nil
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[f.key(att.UserID, att.Date)] = att
	return true, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, att := range f.records {
		if att.ID == id {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	att, ok := f.records[f.key(userID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (f *fakeAttendanceRepo) ExistsForDate(ctx context.Context, userID, date string) (bool, error) {
	_, ok := f.records[f.key(userID, date)]
	return ok, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	f.records[f.key(att.UserID, att.Date)] = att
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range f.records {
		result = append(result, att)
	}
	return result, nil
}

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) ListByRoles(ctx context.Context, roles []user.Role) ([]user.User, error) {
	var result []user.User
	for _, u := range f.users {
		for _, role := range roles {
			if u.Role == role {
				result = append(result, u)
			}
		}
	}
	return result, nil
}
func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return f.users, nil }
func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
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

func workforce(n int) []user.User {
	users := make([]user.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, user.User{
			ID:   fmt.Sprintf("emp-%d", i+1),
			Role: user.RoleEmployee,
		})
	}
	return users
}

// Monday
var workday = time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

func newJobs(now time.Time, attRepo *fakeAttendanceRepo, users []user.User) (*AttendanceJobs, *fakeNotificationService) {
	notifier := &fakeNotificationService{}
	calendar := clock.NewCalendar(clock.Fixed(now), time.Sunday)
	jobs := NewAttendanceJobs(attRepo, &fakeUserRepo{users: users}, notifier, calendar)
	return jobs, notifier
}

func TestMarkAbsentCreatesRecordsForUncovered(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	jobs, notifier := newJobs(workday, attRepo, workforce(3))

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	assert.Len(t, attRepo.records, 3)
	assert.Len(t, notifier.queued, 3)
	for _, att := range attRepo.records {
		assert.Equal(t, attendance.StatusAbsent, att.Status)
		assert.Equal(t, attendance.AutoAbsentRemarks, att.Remarks)
		assert.Equal(t, "2026-03-02", att.Date)
	}
}

func TestMarkAbsentSkipsExistingRecords(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02",
		Status: attendance.StatusPresent, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	jobs, notifier := newJobs(workday, attRepo, workforce(3))

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	assert.Len(t, attRepo.records, 3)
	assert.Len(t, notifier.queued, 2)
	assert.Equal(t, attendance.StatusPresent, attRepo.records["emp-1|2026-03-02"].Status)
}

func TestMarkAbsentIsIdempotent(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	jobs, notifier := newJobs(workday, attRepo, workforce(2))

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	assert.Len(t, attRepo.records, 2)
	// No duplicate alerts on the second sweep.
	assert.Len(t, notifier.queued, 2)
}

func TestMarkAbsentSkipsRestDay(t *testing.T) {
	sunday := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	attRepo := newFakeAttendanceRepo()
	jobs, notifier := newJobs(sunday, attRepo, workforce(3))

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	assert.Empty(t, attRepo.records)
	assert.Empty(t, notifier.queued)
}

func TestReminderTargetsOnlyUncheckedIn(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-2", Date: "2026-03-02",
		Status: attendance.StatusPendingApproval, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	jobs, notifier := newJobs(workday, attRepo, workforce(3))

	require.NoError(t, jobs.RemindUncheckedIn(context.Background()))

	require.Len(t, notifier.queued, 2)
	for _, queued := range notifier.queued {
		assert.Equal(t, notification.TypeAttendanceReminder, queued.Type)
		assert.NotEqual(t, "emp-2", queued.UserID)
	}
	// Reminders never write attendance records.
	assert.Len(t, attRepo.records, 1)
}

func TestReminderSkipsRestDay(t *testing.T) {
	sunday := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	jobs, notifier := newJobs(sunday, newFakeAttendanceRepo(), workforce(3))

	require.NoError(t, jobs.RemindUncheckedIn(context.Background()))
	assert.Empty(t, notifier.queued)
}
