package attendance

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planning-guru/attendance-backend-go/internal/domain/attendance"
	"github.com/planning-guru/attendance-backend-go/internal/domain/audit"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
)

// fakeAttendanceRepo is an in-memory AttendanceRepository keyed by
// (user_id, date).
type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(userID, date string) string {
	return userID + "|" + date
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if _, exists := f.records[f.key(att.UserID, att.Date)]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	stored := att
	f.records[f.key(att.UserID, att.Date)] = &stored
	return att, nil
}

func (f *fakeAttendanceRepo) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (bool, error) {
	if _, exists := f.records[f.key(att.UserID, att.Date)]; exists {
		return false, nil
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	stored := att
	f.records[f.key(att.UserID, att.Date)] = &stored
	return true, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, att := range f.records {
		if att.ID == id {
			return *att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	att, ok := f.records[f.key(userID, date)]
	if !ok {
		return nil, nil
	}
	copied := *att
	return &copied, nil
}

func (f *fakeAttendanceRepo) ExistsForDate(ctx context.Context, userID, date string) (bool, error) {
	_, ok := f.records[f.key(userID, date)]
	return ok, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	for key, existing := range f.records {
		if existing.ID == att.ID {
			stored := att
			f.records[key] = &stored
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range f.records {
		if filter.UserID != nil && att.UserID != *filter.UserID {
			continue
		}
		if filter.FromDate != nil && att.Date < *filter.FromDate {
			continue
		}
		if filter.ToDate != nil && att.Date > *filter.ToDate {
			continue
		}
		if filter.Status != nil && string(att.Status) != *filter.Status {
			continue
		}
		if filter.AttendanceType != nil && string(att.AttendanceType) != *filter.AttendanceType {
			continue
		}
		result = append(result, *att)
	}
	return result, nil
}

type fakeAuditRepo struct {
	entries []audit.Entry
}

func (f *fakeAuditRepo) Record(ctx context.Context, entry audit.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) ListByTargetUser(ctx context.Context, userID string, limit int) ([]audit.Entry, error) {
	return f.entries, nil
}

type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error { return nil }

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return path, nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

// failingGeocoder always errors so the service must fall back.
type failingGeocoder struct{}

func (failingGeocoder) Resolve(ctx context.Context, latitude, longitude float64) (string, error) {
	return "", fmt.Errorf("upstream unavailable")
}

type staticGeocoder struct{ address string }

func (g staticGeocoder) Resolve(ctx context.Context, latitude, longitude float64) (string, error) {
	return g.address, nil
}

var testLimits = map[user.Role]int{
	user.RoleAdmin:      5,
	user.RoleSuperAdmin: 10,
}

func testCalendar(t time.Time) *clock.Calendar {
	return clock.NewCalendar(clock.Fixed(t), time.Sunday)
}

func photoRequest(lat, long float64, attType string) attendance.CheckInRequest {
	return attendance.CheckInRequest{
		Latitude:       lat,
		Longitude:      long,
		AttendanceType: attType,
		File:           fakeFile{},
		FileHeader:     &multipart.FileHeader{Filename: "proof.jpg", Size: 1024},
	}
}

type fakeFile struct{}

func (fakeFile) Read(p []byte) (int, error)                   { return 0, io.EOF }
func (fakeFile) ReadAt(p []byte, off int64) (int, error)      { return 0, io.EOF }
func (fakeFile) Seek(offset int64, whence int) (int64, error) { return 0, nil }
func (fakeFile) Close() error                                 { return nil }

func newTestService(repo *fakeAttendanceRepo, auditRepo *fakeAuditRepo, now time.Time) attendance.AttendanceService {
	return NewAttendanceService(repo, auditRepo, &fakeStorage{}, staticGeocoder{address: "1 Test Street"}, testCalendar(now), testLimits)
}

func TestCheckInCreatesPendingRecord(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, &fakeAuditRepo{}, now)
	actor := user.Actor{UserID: "emp-1", Role: user.RoleEmployee}

	resp, err := svc.CheckIn(context.Background(), actor, photoRequest(1.5, 103.8, "WFH"))
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.UserID)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, attendance.StatusPendingApproval, resp.Status)
	assert.Equal(t, attendance.TypeWFH, resp.AttendanceType)
	assert.Equal(t, attendance.ApprovalPending, resp.ApprovalStatus)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "1 Test Street", *resp.CheckInLocation.Address)
}

func TestCheckInDefaultsToOffice(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), &fakeAuditRepo{}, now)

	resp, err := svc.CheckIn(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, photoRequest(0, 0, ""))
	require.NoError(t, err)
	assert.Equal(t, attendance.TypeOffice, resp.AttendanceType)
}

func TestCheckInTwiceSameDayFails(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, &fakeAuditRepo{}, now)
	actor := user.Actor{UserID: "emp-1", Role: user.RoleEmployee}

	_, err := svc.CheckIn(context.Background(), actor, photoRequest(1.5, 103.8, "Office"))
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), actor, photoRequest(1.5, 103.8, "Office"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInGeocodeFailureFallsBackToCoordinates(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, &fakeAuditRepo{}, &fakeStorage{}, failingGeocoder{}, testCalendar(now), testLimits)

	resp, err := svc.CheckIn(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, photoRequest(12.34, 56.78, "Office"))
	require.NoError(t, err)
	require.NotNil(t, resp.CheckInLocation.Address)
	assert.Equal(t, "Lat: 12.34, Long: 56.78", *resp.CheckInLocation.Address)
}

func TestCheckOutWithoutCheckInFails(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), &fakeAuditRepo{}, now)

	_, err := svc.CheckOut(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, checkOutRequest())
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func checkOutRequest() attendance.CheckOutRequest {
	return attendance.CheckOutRequest{
		Latitude:   1.5,
		Longitude:  103.8,
		File:       fakeFile{},
		FileHeader: &multipart.FileHeader{Filename: "proof.png", Size: 2048},
	}
}

func TestCheckOutComputesWorkingHours(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	actor := user.Actor{UserID: "emp-1", Role: user.RoleEmployee}

	inSvc := newTestService(repo, &fakeAuditRepo{}, checkIn)
	_, err := inSvc.CheckIn(context.Background(), actor, photoRequest(1.5, 103.8, "Office"))
	require.NoError(t, err)

	outSvc := newTestService(repo, &fakeAuditRepo{}, checkOut)
	resp, err := outSvc.CheckOut(context.Background(), actor, checkOutRequest())
	require.NoError(t, err)

	assert.InDelta(t, 8.5, resp.WorkingHours, 0.001)
	// Checkout must not move the record out of Pending Approval.
	assert.Equal(t, attendance.StatusPendingApproval, resp.Status)
}

func TestCheckOutTwiceFails(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	actor := user.Actor{UserID: "emp-1", Role: user.RoleEmployee}

	svc := newTestService(repo, &fakeAuditRepo{}, checkIn)
	_, err := svc.CheckIn(context.Background(), actor, photoRequest(1.5, 103.8, "Office"))
	require.NoError(t, err)

	outSvc := newTestService(repo, &fakeAuditRepo{}, checkIn.Add(8*time.Hour))
	_, err = outSvc.CheckOut(context.Background(), actor, checkOutRequest())
	require.NoError(t, err)

	_, err = outSvc.CheckOut(context.Background(), actor, checkOutRequest())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestListScopesEmployeeToTrailingWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()

	seed := func(userID, date string) {
		_, err := repo.Create(context.Background(), attendance.Attendance{
			UserID: userID, Date: date,
			Status: attendance.StatusPresent, AttendanceType: attendance.TypeOffice,
			ApprovalStatus: attendance.ApprovalApproved,
		})
		require.NoError(t, err)
	}
	seed("emp-1", "2026-06-01") // inside window
	seed("emp-1", "2026-01-10") // outside the 3-month window
	seed("emp-2", "2026-06-01") // someone else

	svc := newTestService(repo, &fakeAuditRepo{}, now)

	mine, err := svc.List(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, attendance.ListFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "2026-06-01", mine[0].Date)

	all, err := svc.List(context.Background(), user.Actor{UserID: "adm-1", Role: user.RoleAdmin}, attendance.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetDeniesOtherEmployeesRecord(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-2", Date: "2026-03-02",
		Status: attendance.StatusPresent, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeAuditRepo{}, now)

	_, err = svc.Get(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, created.ID)
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)

	_, err = svc.Get(context.Background(), user.Actor{UserID: "adm-1", Role: user.RoleAdmin}, created.ID)
	assert.NoError(t, err)
}

func TestRectifyRequiresApprover(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02",
		Status: attendance.StatusAbsent, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeAuditRepo{}, now)

	status := string(attendance.StatusPresent)
	_, err = svc.Rectify(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, attendance.RectifyRequest{ID: created.ID, Status: &status})
	assert.ErrorIs(t, err, user.ErrAdminAccessRequired)
}

func TestRectifyEnforcesRoleCaps(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	auditRepo := &fakeAuditRepo{}
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02",
		Status: attendance.StatusAbsent, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	svc := newTestService(repo, auditRepo, now)
	admin := user.Actor{UserID: "adm-1", Role: user.RoleAdmin}
	superAdmin := user.Actor{UserID: "sa-1", Role: user.RoleSuperAdmin}
	remarks := "corrected"

	for i := 0; i < 5; i++ {
		_, err := svc.Rectify(context.Background(), admin, attendance.RectifyRequest{ID: created.ID, Remarks: &remarks})
		require.NoError(t, err, "rectification %d should pass", i+1)
	}

	// The sixth correction exceeds the Admin cap.
	_, err = svc.Rectify(context.Background(), admin, attendance.RectifyRequest{ID: created.ID, Remarks: &remarks})
	assert.ErrorIs(t, err, attendance.ErrRectificationLimitReached)

	// A SuperAdmin has headroom up to its own cap of 10.
	for i := 5; i < 10; i++ {
		_, err := svc.Rectify(context.Background(), superAdmin, attendance.RectifyRequest{ID: created.ID, Remarks: &remarks})
		require.NoError(t, err, "super admin rectification %d should pass", i+1)
	}
	_, err = svc.Rectify(context.Background(), superAdmin, attendance.RectifyRequest{ID: created.ID, Remarks: &remarks})
	assert.ErrorIs(t, err, attendance.ErrRectificationLimitReached)

	assert.Len(t, auditRepo.entries, 10)
	assert.Equal(t, audit.ActionRectifyAttendance, auditRepo.entries[0].Action)
}

func TestRectifyRecomputesWorkingHours(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02", CheckInTime: &checkIn,
		Status: attendance.StatusPendingApproval, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeAuditRepo{}, now)
	newOut := "2026-03-02T17:30:00Z"

	resp, err := svc.Rectify(context.Background(), user.Actor{UserID: "adm-1", Role: user.RoleAdmin}, attendance.RectifyRequest{ID: created.ID, CheckOutTime: &newOut})
	require.NoError(t, err)
	assert.InDelta(t, 8.5, resp.WorkingHours, 0.001)
	assert.Equal(t, 1, resp.RectificationCount)
}

func TestRectifyRejectsCheckOutBeforeCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02", CheckInTime: &checkIn,
		Status: attendance.StatusPendingApproval, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeAuditRepo{}, now)
	earlyOut := "2026-03-02T07:00:00Z"

	_, err = svc.Rectify(context.Background(), user.Actor{UserID: "adm-1", Role: user.RoleAdmin}, attendance.RectifyRequest{ID: created.ID, CheckOutTime: &earlyOut})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check_out_time")

	// The record is untouched: no negative hours, no consumed rectification.
	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CheckOutTime)
	assert.GreaterOrEqual(t, stored.WorkingHours, 0.0)
	assert.Zero(t, stored.RectificationCount)
}

func TestRectifyRejectsCheckInAfterCheckOut(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02", CheckInTime: &checkIn, CheckOutTime: &checkOut,
		Status: attendance.StatusPendingApproval, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeAuditRepo{}, now)
	lateIn := "2026-03-02T18:00:00Z"

	_, err = svc.Rectify(context.Background(), user.Actor{UserID: "adm-1", Role: user.RoleAdmin}, attendance.RectifyRequest{ID: created.ID, CheckInTime: &lateIn})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check_out_time")
}

func TestDecideApproveForcesPresent(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	auditRepo := &fakeAuditRepo{}
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02",
		Status: attendance.StatusAbsent, AttendanceType: attendance.TypeOffice,
		ApprovalStatus: attendance.ApprovalPending,
	})
	require.NoError(t, err)

	svc := newTestService(repo, auditRepo, now)

	resp, err := svc.Decide(context.Background(), user.Actor{UserID: "adm-1", Role: user.RoleAdmin}, attendance.DecisionRequest{ID: created.ID, Decision: "Approved"})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, attendance.ApprovalApproved, resp.ApprovalStatus)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "adm-1", *resp.ApprovedBy)
	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, audit.ActionDecideAttendance, auditRepo.entries[0].Action)
}

func TestDecideRejectForcesAbsent(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02", CheckInTime: &checkIn,
		Status: attendance.StatusPendingApproval, AttendanceType: attendance.TypeOffice,
		ApprovalStatus: attendance.ApprovalPending,
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeAuditRepo{}, now)

	resp, err := svc.Decide(context.Background(), user.Actor{UserID: "sa-1", Role: user.RoleSuperAdmin}, attendance.DecisionRequest{ID: created.ID, Decision: "Rejected"})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusAbsent, resp.Status)
	assert.Equal(t, attendance.ApprovalRejected, resp.ApprovalStatus)
}

func TestDecideRejectsEmployees(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02",
		Status: attendance.StatusPendingApproval, AttendanceType: attendance.TypeOffice,
	})
	require.NoError(t, err)

	svc := newTestService(repo, &fakeAuditRepo{}, now)

	_, err = svc.Decide(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, attendance.DecisionRequest{ID: created.ID, Decision: "Approved"})
	assert.ErrorIs(t, err, user.ErrAdminAccessRequired)
}

func TestCheckInValidatesCoordinates(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), &fakeAuditRepo{}, now)

	req := photoRequest(91, 103.8, "Office")
	_, err := svc.CheckIn(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

func TestCheckInRejectsOversizedPhoto(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), &fakeAuditRepo{}, now)

	req := photoRequest(1.5, 103.8, "Office")
	req.FileHeader = &multipart.FileHeader{Filename: "huge.jpg", Size: 11 << 20}

	_, err := svc.CheckIn(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}

func TestAuditTrailRequiresApprover(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), &fakeAuditRepo{}, now)

	_, err := svc.AuditTrail(context.Background(), user.Actor{UserID: "emp-1", Role: user.RoleEmployee}, "emp-1")
	assert.ErrorIs(t, err, user.ErrAdminAccessRequired)
}

func TestAuditTrailListsRecordedActions(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	repo := newFakeAttendanceRepo()
	auditRepo := &fakeAuditRepo{}
	created, err := repo.Create(context.Background(), attendance.Attendance{
		UserID: "emp-1", Date: "2026-03-02",
		Status: attendance.StatusPendingApproval, AttendanceType: attendance.TypeOffice,
		ApprovalStatus: attendance.ApprovalPending,
	})
	require.NoError(t, err)

	svc := newTestService(repo, auditRepo, now)
	admin := user.Actor{UserID: "adm-1", Role: user.RoleAdmin}

	remarks := "Corrected after site visit"
	_, err = svc.Rectify(context.Background(), admin, attendance.RectifyRequest{ID: created.ID, Remarks: &remarks})
	require.NoError(t, err)
	_, err = svc.Decide(context.Background(), admin, attendance.DecisionRequest{ID: created.ID, Decision: "Approved"})
	require.NoError(t, err)

	trail, err := svc.AuditTrail(context.Background(), admin, "emp-1")
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, audit.ActionRectifyAttendance, trail[0].Action)
	assert.Equal(t, audit.ActionDecideAttendance, trail[1].Action)
	assert.Equal(t, "adm-1", trail[0].PerformedBy)
}
