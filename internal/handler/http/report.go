package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/planning-guru/attendance-backend-go/internal/domain/report"
	"github.com/planning-guru/attendance-backend-go/internal/handler/http/middleware"
	"github.com/planning-guru/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Export implements ReportHandler. The workbook is buffered so a late
// failure still produces a clean JSON error instead of a truncated file.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := report.ReportFilter{
		StartDate:      queryParam(r, "start_date"),
		EndDate:        queryParam(r, "end_date"),
		UserID:         queryParam(r, "user_id"),
		AttendanceType: queryParam(r, "attendance_type"),
	}

	var buf bytes.Buffer
	filename, err := h.reportService.Export(r.Context(), actor, filter, &buf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
