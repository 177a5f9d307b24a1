package event

import "context"

// Repository describes event persistence needs from use cases.
// ResultsPublishedAt is mutated only through the result replacement
// transaction, never here.
type Repository interface {
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
}
