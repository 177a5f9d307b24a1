package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	qb "github.com/jamjudge/jamjudge-api/internal/platform/querybuilder"
)

type CriterionRepository struct {
	db *sqlx.DB
}

func NewCriterionRepository(db *sqlx.DB) *CriterionRepository {
	return &CriterionRepository{db: db}
}

func (r *CriterionRepository) ListByEvent(ctx context.Context, eventID string) ([]criterion.Criterion, error) {
	query, args, err := qb.Select("*").From("criteria").
		Where(
			qb.Eq("event_public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list criteria query: %w", err)
	}

	var rows []criterionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list criteria: %w", err)
	}

	out := make([]criterion.Criterion, 0, len(rows))
	for _, row := range rows {
		out = append(out, criterion.Criterion{
			ID:        row.PublicID,
			EventID:   row.EventID,
			Name:      row.Name,
			Weight:    row.Weight,
			ScaleMin:  row.ScaleMin,
			ScaleMax:  row.ScaleMax,
			CreatedBy: row.CreatedBy,
			CreatedAt: row.CreatedAt,
		})
	}

	return out, nil
}
