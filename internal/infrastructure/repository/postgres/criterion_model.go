package postgres

import "time"

type criterionTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	EventID   string     `db:"event_public_id"`
	Name      string     `db:"name"`
	Weight    float64    `db:"weight"`
	ScaleMin  float64    `db:"scale_min"`
	ScaleMax  float64    `db:"scale_max"`
	CreatedBy string     `db:"created_by"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
