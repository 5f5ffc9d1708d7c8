package report

import (
	"context"
	"fmt"
	"io"

	"github.com/planning-guru/attendance-backend-go/internal/domain/report"
	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/clock"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

var columns = []string{
	"User ID", "Name", "Email", "Date",
	"Check In", "Check Out", "Working Hours", "Type",
	"Check In Address", "Check Out Address",
	"Check In Latitude", "Check In Longitude",
	"Check Out Latitude", "Check Out Longitude",
	"Approval Status", "Remarks",
}

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	calendar   *clock.Calendar
}

func NewReportService(reportRepo report.ReportRepository, calendar *clock.Calendar) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		calendar:   calendar,
	}
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, actor user.Actor, filter report.ReportFilter, w io.Writer) (string, error) {
	if err := filter.Validate(); err != nil {
		return "", err
	}

	// Employees only ever export their own trailing window.
	scope := user.ScopeFor(actor, s.calendar.MonthsAgo(3))
	if scope.UserID != nil {
		filter.UserID = scope.UserID
	}
	if scope.FromDate != nil {
		if filter.StartDate == nil || *filter.StartDate < *scope.FromDate {
			filter.StartDate = scope.FromDate
		}
	}

	rows, err := s.reportRepo.Rows(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("failed to fetch report rows: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, column)
	}
	firstHeader, _ := excelize.CoordinatesToCellName(1, 1)
	lastHeader, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheetName, firstHeader, lastHeader, headerStyle)

	for i, row := range rows {
		values := []interface{}{
			row.UserID, row.Name, row.Email, row.Date,
			strOrEmpty(row.CheckInTime), strOrEmpty(row.CheckOutTime),
			row.WorkingHours, row.AttendanceType,
			strOrEmpty(row.CheckInAddress), strOrEmpty(row.CheckOutAddress),
			floatOrEmpty(row.CheckInLat), floatOrEmpty(row.CheckInLong),
			floatOrEmpty(row.CheckOutLat), floatOrEmpty(row.CheckOutLong),
			row.ApprovalStatus, row.Remarks,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "D", 20)
	f.SetColWidth(sheetName, "E", "F", 22)
	f.SetColWidth(sheetName, "I", "J", 35)
	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return "", fmt.Errorf("failed to write report workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_report_%s.xlsx", s.calendar.Now().Format("20060102_150405"))
	return filename, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}
