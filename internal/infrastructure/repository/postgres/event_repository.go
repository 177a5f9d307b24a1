package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	qb "github.com/jamjudge/jamjudge-api/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query, args, err := qb.Select("*").From("events").
		Where(
			qb.Eq("public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event by id query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event by id: %w", err)
	}

	return eventFromTableModel(row), true, nil
}

func eventFromTableModel(row eventTableModel) event.Event {
	return event.Event{
		ID:                 row.PublicID,
		Name:               row.Name,
		Timezone:           row.Timezone,
		SubmissionDeadline: nullTimeToTimePtr(row.SubmissionDeadline),
		RatingStartAt:      nullTimeToTimePtr(row.RatingStartAt),
		RatingEndAt:        nullTimeToTimePtr(row.RatingEndAt),
		ResultsPublishedAt: nullTimeToTimePtr(row.ResultsPublishedAt),
		CreatedBy:          row.CreatedBy,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
