package memory

import (
	"context"
	"sync"

	"github.com/jamjudge/jamjudge-api/internal/domain/audit"
)

type AuditRepository struct {
	mu      sync.RWMutex
	records []audit.Record
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Append(_ context.Context, rec audit.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)

	return nil
}

func (r *AuditRepository) ListByEvent(_ context.Context, eventID string, limit int) ([]audit.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]audit.Record, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if rec.EventID != eventID {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	return out, nil
}
