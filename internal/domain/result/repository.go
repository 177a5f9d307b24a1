package result

import (
	"context"
	"time"
)

type Repository interface {
	ListByEvent(ctx context.Context, eventID string) ([]PublicResult, error)
	// ReplaceByEvent atomically swaps the published set for an event with
	// rows and stamps the event's publication time in the same transaction.
	ReplaceByEvent(ctx context.Context, eventID string, rows []PublicResult, publishedAt time.Time) error
}
