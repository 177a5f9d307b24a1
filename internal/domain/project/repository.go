package project

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, projectID string) (Project, bool, error)
	ListSubmittedByEvent(ctx context.Context, eventID string) ([]Project, error)

	// MarkSubmitted flips the project to submitted and stamps submittedAt.
	MarkSubmitted(ctx context.Context, projectID string, submittedAt time.Time) error

	// SetForceUnlock stores the unlock window expiry; nil clears it.
	SetForceUnlock(ctx context.Context, projectID string, until *time.Time) error
}
