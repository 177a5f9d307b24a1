package criterion

import "context"

type Repository interface {
	ListByEvent(ctx context.Context, eventID string) ([]Criterion, error)
}
