package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/planning-guru/attendance-backend-go/internal/domain/attendance"
	"github.com/planning-guru/attendance-backend-go/internal/domain/notification"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
)

const (
	// Morning reminder fires at 10:00 local time.
	reminderSpec = "0 10 * * *"
	// Auto-absent sweep fires at 18:00 local time.
	autoAbsentSpec = "0 18 * * *"
)

type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	userRepo        user.UserRepository
	notificationSvc notification.Service
	calendar        *clock.Calendar
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	notificationSvc notification.Service,
	calendar *clock.Calendar,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		calendar:        calendar,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) error {
	if err := scheduler.AddJob("attendance_reminder", reminderSpec, j.RemindUncheckedIn); err != nil {
		return err
	}
	return scheduler.AddJob("auto_mark_absent", autoAbsentSpec, j.MarkAbsentEmployees)
}

// RemindUncheckedIn notifies every working-role employee who has no
// attendance record for today.
func (j *AttendanceJobs) RemindUncheckedIn(ctx context.Context) error {
	if j.calendar.IsRestDay() {
		slog.Info("Cron: Skipping attendance reminder on rest day")
		return nil
	}

	today := j.calendar.Today()
	slog.Info("Cron: Starting attendance reminder job", "date", today)

	employees, err := j.userRepo.ListByRoles(ctx, user.WorkingRoles())
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	reminded := 0
	for _, emp := range employees {
		exists, err := j.attendanceRepo.ExistsForDate(ctx, emp.ID, today)
		if err != nil {
			slog.Error("Cron: Failed to check attendance record", "user_id", emp.ID, "error", err)
			continue
		}
		if exists {
			continue
		}

		err = j.notificationSvc.Queue(ctx, notification.CreateNotificationRequest{
			UserID:  emp.ID,
			Type:    notification.TypeAttendanceReminder,
			Title:   "Attendance Reminder",
			Message: "You have not checked in today. Please mark your attendance.",
		})
		if err != nil {
			slog.Error("Cron: Failed to queue reminder", "user_id", emp.ID, "error", err)
			continue
		}
		reminded++
	}

	slog.Info("Cron: Attendance reminders sent", "count", reminded)
	return nil
}

// MarkAbsentEmployees writes an Absent record for every working-role employee
// with no record for today. The insert is conditional at the store level, so
// an employee checking in at the same moment keeps their record.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	if j.calendar.IsRestDay() {
		slog.Info("Cron: Skipping auto-absent sweep on rest day")
		return nil
	}

	today := j.calendar.Today()
	slog.Info("Cron: Starting auto-absent job", "date", today)

	employees, err := j.userRepo.ListByRoles(ctx, user.WorkingRoles())
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		created, err := j.attendanceRepo.CreateIfAbsent(ctx, attendance.Attendance{
			UserID:         emp.ID,
			Date:           today,
			Status:         attendance.StatusAbsent,
			AttendanceType: attendance.TypeOffice,
			ApprovalStatus: attendance.ApprovalPending,
			Remarks:        attendance.AutoAbsentRemarks,
		})
		if err != nil {
			slog.Error("Cron: Failed to mark absent", "user_id", emp.ID, "error", err)
			continue
		}
		if !created {
			continue
		}

		err = j.notificationSvc.Queue(ctx, notification.CreateNotificationRequest{
			UserID:  emp.ID,
			Type:    notification.TypeAbsenceAlert,
			Title:   "Marked Absent",
			Message: fmt.Sprintf("You were marked absent for %s. Contact your admin if this is incorrect.", today),
		})
		if err != nil {
			slog.Error("Cron: Failed to queue absence alert", "user_id", emp.ID, "error", err)
		}
		marked++
	}

	slog.Info("Cron: Auto-marked absent employees", "count", marked)
	return nil
}
