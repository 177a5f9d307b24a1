package audit

import "context"

type Repository interface {
	Append(ctx context.Context, rec Record) error
	ListByEvent(ctx context.Context, eventID string, limit int) ([]Record, error)
}
