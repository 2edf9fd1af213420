package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"HEALTHAPI_BACK-END/internal/models"
)

// Audit is the PostgreSQL implementation of AuditStore. Entries are
// append-only: there is no update or delete path.
type Audit struct {
	db *pgxpool.Pool
}

// NewAudit creates a new Audit store
func NewAudit(db *pgxpool.Pool) *Audit {
	return &Audit{db: db}
}

func (s *Audit) Record(ctx context.Context, actorID *int64, action, details string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO audit_logs (user_id, action, details) VALUES ($1, $2, $3)`,
		actorID, action, details)
	return err
}

func (s *Audit) ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, action, details, ip_address, created_at
		 FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.AuditLog{}
	for rows.Next() {
		var l models.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
