package postgres

import "time"

type publicResultTableModel struct {
	ID              int64      `db:"id"`
	EventID         string     `db:"event_public_id"`
	ProjectID       string     `db:"project_public_id"`
	ProjectName     string     `db:"project_name"`
	TeamName        string     `db:"team_name"`
	TotalScore      float64    `db:"total_score"`
	Rank            int        `db:"rank"`
	EvaluationCount int        `db:"evaluation_count"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type publicResultInsertModel struct {
	EventID         string    `db:"event_public_id"`
	ProjectID       string    `db:"project_public_id"`
	ProjectName     string    `db:"project_name"`
	TeamName        string    `db:"team_name"`
	TotalScore      float64   `db:"total_score"`
	Rank            int       `db:"rank"`
	EvaluationCount int       `db:"evaluation_count"`
	UpdatedAt       time.Time `db:"updated_at"`
}
