package postgres

import "time"

type auditTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	EventID   string    `db:"event_public_id"`
	Action    string    `db:"action"`
	ActorID   string    `db:"actor_id"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

type auditInsertModel struct {
	PublicID  string    `db:"public_id"`
	EventID   string    `db:"event_public_id"`
	Action    string    `db:"action"`
	ActorID   string    `db:"actor_id"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}
