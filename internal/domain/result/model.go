package result

import "time"

// AggregatedScore is the intermediate value produced per project during a
// publish run. It is never persisted on its own; ranking turns the full
// set into PublicResult rows.
type AggregatedScore struct {
	ProjectID       string
	ProjectName     string
	TeamID          string
	TeamName        string
	TotalScore      float64
	EvaluationCount int
}

// PublicResult is one row of the published leaderboard snapshot for an
// event. The whole set is replaced atomically on every publish.
type PublicResult struct {
	EventID         string
	ProjectID       string
	ProjectName     string
	TeamName        string
	TotalScore      float64
	Rank            int
	EvaluationCount int
	UpdatedAt       time.Time
}
