package memory

import (
	"context"
	"sync"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
)

type CriterionRepository struct {
	mu    sync.RWMutex
	items []criterion.Criterion
}

func NewCriterionRepository(criteria []criterion.Criterion) *CriterionRepository {
	return &CriterionRepository{items: append([]criterion.Criterion(nil), criteria...)}
}

func (r *CriterionRepository) ListByEvent(_ context.Context, eventID string) ([]criterion.Criterion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]criterion.Criterion, 0, len(r.items))
	for _, c := range r.items {
		if c.EventID != eventID {
			continue
		}
		out = append(out, c)
	}

	return out, nil
}
