package audit

import "time"

type EntryResponse struct {
	ID          string                 `json:"id"`
	Action      string                 `json:"action"`
	PerformedBy string                 `json:"performed_by"`
	TargetUser  string                 `json:"target_user"`
	Details     map[string]interface{} `json:"details,omitempty"`
	CreatedAt   string                 `json:"created_at"`
}

// ToResponse converts an Entry to its API shape.
func ToResponse(entry Entry) EntryResponse {
	return EntryResponse{
		ID:          entry.ID,
		Action:      entry.Action,
		PerformedBy: entry.PerformedBy,
		TargetUser:  entry.TargetUser,
		Details:     entry.Details,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
}
