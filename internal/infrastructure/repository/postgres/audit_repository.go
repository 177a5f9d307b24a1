package postgres

import (
	"context"
	"fmt"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/jamjudge/jamjudge-api/internal/domain/audit"
	qb "github.com/jamjudge/jamjudge-api/internal/platform/querybuilder"
)

// AuditRepository is append-only: records are never updated or deleted.
type AuditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Append(ctx context.Context, rec audit.Record) error {
	insertModel := auditInsertModel{
		PublicID:  rec.ID,
		EventID:   rec.EventID,
		Action:    rec.Action,
		ActorID:   rec.ActorID,
		Payload:   encodeAuditPayload(rec.Payload),
		CreatedAt: rec.CreatedAt.UTC(),
	}
	query, args, err := qb.InsertModel("audits", insertModel, "")
	if err != nil {
		return fmt.Errorf("build append audit record query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}

	return nil
}

func (r *AuditRepository) ListByEvent(ctx context.Context, eventID string, limit int) ([]audit.Record, error) {
	builder := qb.Select("*").From("audits").
		Where(qb.Eq("event_public_id", eventID)).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list audit records query: %w", err)
	}

	var rows []auditTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}

	out := make([]audit.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, audit.Record{
			ID:        row.PublicID,
			EventID:   row.EventID,
			Action:    row.Action,
			ActorID:   row.ActorID,
			Payload:   decodeAuditPayload(row.Payload),
			CreatedAt: row.CreatedAt,
		})
	}

	return out, nil
}

func encodeAuditPayload(value map[string]any) string {
	if len(value) == 0 {
		return "{}"
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

func decodeAuditPayload(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}
	out := make(map[string]any)
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]any{}
	}
	return out
}
