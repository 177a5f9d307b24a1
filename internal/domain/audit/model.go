package audit

import (
	"fmt"
	"time"
)

// Actions recorded in the audit trail.
const (
	ActionPublishResults     = "publishResults"
	ActionRepublishResults   = "republishResults"
	ActionForceUnlockProject = "forceUnlockProject"
	ActionSubmitProject      = "submitProject"
	ActionLockProject        = "lockProject"
)

// Record is a single immutable audit entry. Payload carries
// action-specific detail such as a republish reason or a row count.
type Record struct {
	ID        string
	EventID   string
	Action    string
	ActorID   string
	Payload   map[string]any
	CreatedAt time.Time
}

func (r Record) Validate() error {
	if r.EventID == "" {
		return fmt.Errorf("event id is required")
	}
	if r.Action == "" {
		return fmt.Errorf("action is required")
	}
	if r.ActorID == "" {
		return fmt.Errorf("actor id is required")
	}
	return nil
}
