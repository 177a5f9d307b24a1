package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jamjudge/jamjudge-api/internal/domain/project"
	qb "github.com/jamjudge/jamjudge-api/internal/platform/querybuilder"
)

type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (project.Project, bool, error) {
	query, args, err := qb.Select("*").From("projects").
		Where(
			qb.Eq("public_id", projectID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return project.Project{}, false, fmt.Errorf("build get project by id query: %w", err)
	}

	var row projectTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return project.Project{}, false, nil
		}
		return project.Project{}, false, fmt.Errorf("get project by id: %w", err)
	}

	return projectFromTableModel(row), true, nil
}

func (r *ProjectRepository) ListSubmittedByEvent(ctx context.Context, eventID string) ([]project.Project, error) {
	query, args, err := qb.Select("*").From("projects").
		Where(
			qb.Eq("event_public_id", eventID),
			qb.Eq("status", string(project.StatusSubmitted)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list submitted projects query: %w", err)
	}

	var rows []projectTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list submitted projects: %w", err)
	}

	out := make([]project.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, projectFromTableModel(row))
	}

	return out, nil
}

func (r *ProjectRepository) MarkSubmitted(ctx context.Context, projectID string, submittedAt time.Time) error {
	query, args, err := qb.Update("projects").
		Set("status", string(project.StatusSubmitted)).
		Set("submitted_at", submittedAt.UTC()).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", projectID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark project submitted query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark project submitted: %w", err)
	}

	return nil
}

func (r *ProjectRepository) SetForceUnlock(ctx context.Context, projectID string, until *time.Time) error {
	query, args, err := qb.Update("projects").
		Set("force_unlock_until", until).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", projectID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set project force unlock query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set project force unlock: %w", err)
	}

	return nil
}

func projectFromTableModel(row projectTableModel) project.Project {
	return project.Project{
		ID:               row.PublicID,
		EventID:          row.EventID,
		TeamID:           row.TeamID,
		Name:             row.Name,
		Description:      row.Description,
		RepoURL:          row.RepoURL,
		DemoURL:          row.DemoURL,
		Status:           project.Status(row.Status),
		SubmittedAt:      nullTimeToTimePtr(row.SubmittedAt),
		ForceUnlockUntil: nullTimeToTimePtr(row.ForceUnlockUntil),
		CreatedBy:        row.CreatedBy,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
