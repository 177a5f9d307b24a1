package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/project"
)

type ProjectRepository struct {
	mu     sync.RWMutex
	items  map[string]project.Project
	orders []string
}

func NewProjectRepository(projects []project.Project) *ProjectRepository {
	items := make(map[string]project.Project, len(projects))
	orders := make([]string, 0, len(projects))

	for _, p := range projects {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &ProjectRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ProjectRepository) GetByID(_ context.Context, projectID string) (project.Project, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[projectID]
	if !ok {
		return project.Project{}, false, nil
	}

	return p, true, nil
}

func (r *ProjectRepository) ListSubmittedByEvent(_ context.Context, eventID string) ([]project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]project.Project, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.items[id]
		if p.EventID != eventID || p.Status != project.StatusSubmitted {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *ProjectRepository) MarkSubmitted(_ context.Context, projectID string, submittedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[projectID]
	if !ok {
		return nil
	}
	p.Status = project.StatusSubmitted
	p.SubmittedAt = &submittedAt
	p.UpdatedAt = submittedAt
	r.items[projectID] = p

	return nil
}

func (r *ProjectRepository) SetForceUnlock(_ context.Context, projectID string, until *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[projectID]
	if !ok {
		return nil
	}
	p.ForceUnlockUntil = until
	r.items[projectID] = p

	return nil
}
