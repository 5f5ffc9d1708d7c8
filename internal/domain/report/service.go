package report

import (
	"context"
	"io"

	"github.com/planning-guru/attendance-backend-go/internal/domain/user"
)

// ReportService renders role-scoped attendance exports.
type ReportService interface {
	// Export writes an xlsx workbook of the filtered attendance rows to w
	// and returns the suggested file name. Employees are scoped to their
	// own records regardless of filter.
	Export(ctx context.Context, actor user.Actor, filter ReportFilter, w io.Writer) (string, error)
}
