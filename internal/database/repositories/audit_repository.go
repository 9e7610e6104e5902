package repositories

import (
	"context"
	"time"

	"product-catalog/internal/database"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type AuditLogRepository struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// AuditFilter narrows ListAuditLogs. Zero values match everything.
type AuditFilter struct {
	Action   string
	Username string
	Since    *time.Time
	Limit    int
	Offset   int
}

// InsertAuditLog inserts a new audit log entry
func (r *AuditLogRepository) InsertAuditLog(ctx context.Context, log *database.AuditLog) error {
	query := r.db.Rebind(`
        INSERT INTO audit_logs (action, username, resource, details, ip_address, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id
    `)

	createdAt := time.Now().UTC().Truncate(time.Second)
	err := r.db.QueryRowContext(ctx, query,
		log.Action, log.Username, log.Resource, log.Details, log.IPAddress, createdAt,
	).Scan(&log.ID)
	if err != nil {
		return err
	}

	log.CreatedAt = createdAt
	return nil
}

// ListAuditLogs returns entries newest first
func (r *AuditLogRepository) ListAuditLogs(ctx context.Context, filter AuditFilter) ([]database.AuditLog, error) {
	query := `
        SELECT id, action, username, resource, details, ip_address, created_at
        FROM audit_logs
        WHERE 1=1
    `
	args := []interface{}{}

	if filter.Action != "" {
		query += " AND action = ?"
		args = append(args, filter.Action)
	}

	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}

	if filter.Since != nil {
		query += " AND created_at >= ?"
		args = append(args, filter.Since.UTC().Truncate(time.Second))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []database.AuditLog{}
	for rows.Next() {
		var log database.AuditLog
		err := rows.Scan(&log.ID, &log.Action, &log.Username, &log.Resource,
			&log.Details, &log.IPAddress, &log.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
