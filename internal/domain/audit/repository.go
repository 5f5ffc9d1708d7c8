package audit

import "context"

// AuditRepository persists audit entries. Writes are best-effort from the
// caller's point of view: a failed audit write is logged, never surfaced.
type AuditRepository interface {
	Record(ctx context.Context, entry Entry) error

	ListByTargetUser(ctx context.Context, userID string, limit int) ([]Entry, error)
}
