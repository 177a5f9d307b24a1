package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jamjudge/jamjudge-api/internal/domain/evaluation"
	qb "github.com/jamjudge/jamjudge-api/internal/platform/querybuilder"
)

type EvaluationRepository struct {
	db *sqlx.DB
}

func NewEvaluationRepository(db *sqlx.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) ListByProject(ctx context.Context, projectID string) ([]evaluation.Evaluation, error) {
	query, args, err := qb.Select("*").From("evaluations").
		Where(
			qb.Eq("project_public_id", projectID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("juror_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list evaluations query: %w", err)
	}

	var rows []evaluationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}

	out := make([]evaluation.Evaluation, 0, len(rows))
	for _, row := range rows {
		out = append(out, evaluationFromTableModel(row))
	}

	return out, nil
}

func (r *EvaluationRepository) GetByProjectAndJuror(ctx context.Context, projectID, jurorID string) (evaluation.Evaluation, bool, error) {
	query, args, err := qb.Select("*").From("evaluations").
		Where(
			qb.Eq("project_public_id", projectID),
			qb.Eq("juror_id", jurorID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return evaluation.Evaluation{}, false, fmt.Errorf("build get evaluation query: %w", err)
	}

	var row evaluationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return evaluation.Evaluation{}, false, nil
		}
		return evaluation.Evaluation{}, false, fmt.Errorf("get evaluation: %w", err)
	}

	return evaluationFromTableModel(row), true, nil
}

func (r *EvaluationRepository) Upsert(ctx context.Context, item evaluation.Evaluation) error {
	insertModel := evaluationInsertModel{
		ProjectID: item.ProjectID,
		JurorID:   item.JurorID,
		Scores:    encodeScores(item.Scores),
		Feedback:  item.Feedback,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
	query, args, err := qb.InsertModel("evaluations", insertModel, `ON CONFLICT (project_public_id, juror_id) WHERE deleted_at IS NULL
DO UPDATE SET
    scores = EXCLUDED.scores,
    feedback = EXCLUDED.feedback,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert evaluation query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert evaluation: %w", err)
	}

	return nil
}

func evaluationFromTableModel(row evaluationTableModel) evaluation.Evaluation {
	return evaluation.Evaluation{
		ProjectID: row.ProjectID,
		JurorID:   row.JurorID,
		Scores:    decodeScores(row.Scores),
		Feedback:  row.Feedback,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
