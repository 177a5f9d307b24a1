package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jamjudge/jamjudge-api/internal/infrastructure/repository/memory"
)

func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM events WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count events for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, e := range memory.SeedEvents() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO events (public_id, name, timezone, submission_deadline, rating_start_at, rating_end_at, created_by)
VALUES (:public_id, :name, :timezone, :submission_deadline, :rating_start_at, :rating_end_at, :created_by)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":           e.ID,
			"name":                e.Name,
			"timezone":            e.Timezone,
			"submission_deadline": e.SubmissionDeadline,
			"rating_start_at":     e.RatingStartAt,
			"rating_end_at":       e.RatingEndAt,
			"created_by":          e.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("bind seed event %s query: %w", e.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed event %s: %w", e.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, event_public_id, name, description, created_by)
VALUES (:public_id, :event_public_id, :name, :description, :created_by)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":       t.ID,
			"event_public_id": t.EventID,
			"name":            t.Name,
			"description":     t.Description,
			"created_by":      t.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, p := range memory.SeedProjects() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO projects (public_id, event_public_id, team_public_id, name, description, status, created_by)
VALUES (:public_id, :event_public_id, :team_public_id, :name, :description, :status, :created_by)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":       p.ID,
			"event_public_id": p.EventID,
			"team_public_id":  p.TeamID,
			"name":            p.Name,
			"description":     p.Description,
			"status":          string(p.Status),
			"created_by":      p.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("bind seed project %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}

	for _, c := range memory.SeedCriteria() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO criteria (public_id, event_public_id, name, weight, scale_min, scale_max, created_by)
VALUES (:public_id, :event_public_id, :name, :weight, :scale_min, :scale_max, :created_by)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":       c.ID,
			"event_public_id": c.EventID,
			"name":            c.Name,
			"weight":          c.Weight,
			"scale_min":       c.ScaleMin,
			"scale_max":       c.ScaleMax,
			"created_by":      c.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("bind seed criterion %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed criterion %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
