package postgres

import (
	"database/sql"
	"time"
)

type projectTableModel struct {
	ID               int64        `db:"id"`
	PublicID         string       `db:"public_id"`
	EventID          string       `db:"event_public_id"`
	TeamID           string       `db:"team_public_id"`
	Name             string       `db:"name"`
	Description      string       `db:"description"`
	RepoURL          string       `db:"repo_url"`
	DemoURL          string       `db:"demo_url"`
	Status           string       `db:"status"`
	SubmittedAt      sql.NullTime `db:"submitted_at"`
	ForceUnlockUntil sql.NullTime `db:"force_unlock_until"`
	CreatedBy        string       `db:"created_by"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
	DeletedAt        *time.Time   `db:"deleted_at"`
}
