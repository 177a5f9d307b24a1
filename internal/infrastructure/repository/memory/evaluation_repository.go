package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jamjudge/jamjudge-api/internal/domain/evaluation"
)

type EvaluationRepository struct {
	mu    sync.RWMutex
	items map[string]evaluation.Evaluation
}

func NewEvaluationRepository(evaluations []evaluation.Evaluation) *EvaluationRepository {
	items := make(map[string]evaluation.Evaluation, len(evaluations))
	for _, e := range evaluations {
		items[evaluationKey(e.ProjectID, e.JurorID)] = e
	}

	return &EvaluationRepository{items: items}
}

func (r *EvaluationRepository) ListByProject(_ context.Context, projectID string) ([]evaluation.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]evaluation.Evaluation, 0, len(r.items))
	for _, e := range r.items {
		if e.ProjectID != projectID {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].JurorID < out[j].JurorID
	})

	return out, nil
}

func (r *EvaluationRepository) GetByProjectAndJuror(_ context.Context, projectID, jurorID string) (evaluation.Evaluation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[evaluationKey(projectID, jurorID)]
	if !ok {
		return evaluation.Evaluation{}, false, nil
	}

	return e, true, nil
}

func (r *EvaluationRepository) Upsert(_ context.Context, item evaluation.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[evaluationKey(item.ProjectID, item.JurorID)] = item

	return nil
}

func evaluationKey(projectID, jurorID string) string {
	return projectID + "|" + jurorID
}
