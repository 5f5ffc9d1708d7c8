package report

import "context"

// ReportRepository reads export rows from the attendance store.
type ReportRepository interface {
	// Rows retrieves attendance rows joined with user name/email matching
	// the filter, ordered by date then user.
	Rows(ctx context.Context, filter ReportFilter) ([]Row, error)
}
