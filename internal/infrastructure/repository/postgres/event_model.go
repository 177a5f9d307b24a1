package postgres

import (
	"database/sql"
	"time"
)

type eventTableModel struct {
	ID                 int64        `db:"id"`
	PublicID           string       `db:"public_id"`
	Name               string       `db:"name"`
	Timezone           string       `db:"timezone"`
	SubmissionDeadline sql.NullTime `db:"submission_deadline"`
	RatingStartAt      sql.NullTime `db:"rating_start_at"`
	RatingEndAt        sql.NullTime `db:"rating_end_at"`
	ResultsPublishedAt sql.NullTime `db:"results_published_at"`
	CreatedBy          string       `db:"created_by"`
	CreatedAt          time.Time    `db:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at"`
	DeletedAt          *time.Time   `db:"deleted_at"`
}
