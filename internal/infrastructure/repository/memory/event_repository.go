package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/event"
)

type EventRepository struct {
	mu    sync.RWMutex
	items map[string]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	items := make(map[string]event.Event, len(events))
	for _, e := range events {
		items[e.ID] = e
	}

	return &EventRepository{items: items}
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[eventID]
	if !ok {
		return event.Event{}, false, nil
	}

	return e, true, nil
}

// SetResultsPublishedAt is called by the result repository after a swap
// so both stores stay consistent in memory mode.
func (r *EventRepository) SetResultsPublishedAt(eventID string, publishedAt *time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[eventID]
	if !ok {
		return
	}
	e.ResultsPublishedAt = publishedAt
	r.items[eventID] = e
}
