package postgres

import (
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
)

type evaluationTableModel struct {
	ID        int64      `db:"id"`
	ProjectID string     `db:"project_public_id"`
	JurorID   string     `db:"juror_id"`
	Scores    string     `db:"scores"`
	Feedback  string     `db:"feedback"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type evaluationInsertModel struct {
	ProjectID string    `db:"project_public_id"`
	JurorID   string    `db:"juror_id"`
	Scores    string    `db:"scores"`
	Feedback  string    `db:"feedback"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func encodeScores(value map[string]float64) string {
	if len(value) == 0 {
		return "{}"
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

func decodeScores(raw string) map[string]float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]float64{}
	}
	out := make(map[string]float64)
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		return map[string]float64{}
	}
	return out
}
