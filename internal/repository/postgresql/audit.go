package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/planning-guru/attendance-backend-go/internal/domain/audit"
	"github.com/planning-guru/attendance-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

// Record implements audit.AuditRepository. Details are stored as JSONB.
func (r *auditRepository) Record(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal audit details: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO audit_logs (action, performed_by, target_user, details)
		VALUES ($1, $2, $3, $4)
	`, entry.Action, entry.PerformedBy, entry.TargetUser, details)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}

// ListByTargetUser implements audit.AuditRepository.
func (r *auditRepository) ListByTargetUser(ctx context.Context, userID string, limit int) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, action, performed_by, target_user, details, created_at
		FROM audit_logs
		WHERE target_user = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var entry audit.Entry
		var details []byte
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.PerformedBy, &entry.TargetUser, &details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &entry.Details); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit details: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit rows: %w", err)
	}

	return entries, nil
}
