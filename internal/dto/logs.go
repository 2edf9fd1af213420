package dto

import (
	"time"

	"HEALTHAPI_BACK-END/internal/models"
)

// AuditLogEntry represents one audit-trail record in API responses
type AuditLogEntry struct {
	ID        int64  `json:"id"`
	UserID    *int64 `json:"user_id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	CreatedAt string `json:"created_at"`
}

// AuditLogsResponse wraps the audit-trail listing
type AuditLogsResponse struct {
	Total int             `json:"total"`
	Logs  []AuditLogEntry `json:"logs"`
}

// NewAuditLogsResponse converts audit records to their API representation
func NewAuditLogsResponse(logs []models.AuditLog) AuditLogsResponse {
	entries := make([]AuditLogEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, AuditLogEntry{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			Details:   l.Details,
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		})
	}
	return AuditLogsResponse{Total: len(entries), Logs: entries}
}
