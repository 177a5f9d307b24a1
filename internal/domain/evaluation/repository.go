package evaluation

import "context"

type Repository interface {
	ListByProject(ctx context.Context, projectID string) ([]Evaluation, error)
	GetByProjectAndJuror(ctx context.Context, projectID, jurorID string) (Evaluation, bool, error)
	Upsert(ctx context.Context, item Evaluation) error
}
