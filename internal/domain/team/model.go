package team

import (
	"fmt"
	"time"
)

// Team groups the participants behind one project inside an event.
type Team struct {
	ID          string
	EventID     string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.EventID == "" {
		return fmt.Errorf("team event id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
