package project

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

// Project is a team's entry in one event. Only submitted projects
// participate in score aggregation.
type Project struct {
	ID               string
	EventID          string
	TeamID           string
	Name             string
	Description      string
	RepoURL          string
	DemoURL          string
	Status           Status
	SubmittedAt      *time.Time
	ForceUnlockUntil *time.Time
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}
	if p.EventID == "" {
		return fmt.Errorf("project event id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("project team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	switch p.Status {
	case StatusDraft, StatusSubmitted:
	default:
		return fmt.Errorf("invalid project status %q", p.Status)
	}

	return nil
}

// UnlockActive reports whether a temporary re-edit window granted by an
// organizer is still open at the given instant.
func (p Project) UnlockActive(now time.Time) bool {
	return p.ForceUnlockUntil != nil && now.Before(*p.ForceUnlockUntil)
}
