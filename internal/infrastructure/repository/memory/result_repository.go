package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/result"
)

// ResultRepository keeps published snapshots per event. When wired with an
// event repository it also stamps the publication time there, mirroring
// what the database transaction does in postgres mode.
type ResultRepository struct {
	mu     sync.RWMutex
	byEvnt map[string][]result.PublicResult
	events *EventRepository
}

func NewResultRepository(events *EventRepository) *ResultRepository {
	return &ResultRepository{
		byEvnt: make(map[string][]result.PublicResult),
		events: events,
	}
}

func (r *ResultRepository) ListByEvent(_ context.Context, eventID string) ([]result.PublicResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, ok := r.byEvnt[eventID]
	if !ok {
		return []result.PublicResult{}, nil
	}

	return append([]result.PublicResult(nil), rows...), nil
}

func (r *ResultRepository) ReplaceByEvent(_ context.Context, eventID string, rows []result.PublicResult, publishedAt time.Time) error {
	r.mu.Lock()
	r.byEvnt[eventID] = append([]result.PublicResult(nil), rows...)
	r.mu.Unlock()

	if r.events != nil {
		stamped := publishedAt
		r.events.SetResultsPublishedAt(eventID, &stamped)
	}

	return nil
}
