package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jamjudge/jamjudge-api/internal/domain/result"
	qb "github.com/jamjudge/jamjudge-api/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) ListByEvent(ctx context.Context, eventID string) ([]result.PublicResult, error) {
	query, args, err := qb.Select("*").From("public_results").
		Where(
			qb.Eq("event_public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("rank", "project_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list public results query: %w", err)
	}

	var rows []publicResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list public results: %w", err)
	}

	out := make([]result.PublicResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, result.PublicResult{
			EventID:         row.EventID,
			ProjectID:       row.ProjectID,
			ProjectName:     row.ProjectName,
			TeamName:        row.TeamName,
			TotalScore:      row.TotalScore,
			Rank:            row.Rank,
			EvaluationCount: row.EvaluationCount,
			UpdatedAt:       row.UpdatedAt,
		})
	}

	return out, nil
}

// ReplaceByEvent removes the event's previous snapshot, inserts the new
// rows and stamps results_published_at on the event inside one
// transaction, so readers never observe a partial leaderboard.
func (r *ResultRepository) ReplaceByEvent(ctx context.Context, eventID string, rows []result.PublicResult, publishedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace public results: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("public_results").
		Where(qb.Eq("event_public_id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear public results query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear public results: %w", err)
	}

	for _, item := range rows {
		insertModel := publicResultInsertModel{
			EventID:         eventID,
			ProjectID:       item.ProjectID,
			ProjectName:     item.ProjectName,
			TeamName:        item.TeamName,
			TotalScore:      item.TotalScore,
			Rank:            item.Rank,
			EvaluationCount: item.EvaluationCount,
			UpdatedAt:       publishedAt.UTC(),
		}
		query, args, err := qb.InsertModel("public_results", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert public result %s query: %w", item.ProjectID, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert public result %s: %w", item.ProjectID, err)
		}
	}

	stampQuery, stampArgs, err := qb.Update("events").
		Set("results_published_at", publishedAt.UTC()).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build stamp event publication query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, stampQuery, stampArgs...); err != nil {
		return fmt.Errorf("stamp event publication: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace public results: %w", err)
	}

	return nil
}
