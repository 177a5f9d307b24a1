package event

import (
	"fmt"
	"time"
)

// Event is one hackathon instance with its own teams, projects, criteria and timeline.
type Event struct {
	ID                  string
	Name                string
	Timezone            string
	SubmissionDeadline  *time.Time
	RatingStartAt       *time.Time
	RatingEndAt         *time.Time
	ResultsPublishedAt  *time.Time
	CreatedBy           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}

	return nil
}

// ResultsPublished reports whether a leaderboard snapshot exists for the event.
func (e Event) ResultsPublished() bool {
	return e.ResultsPublishedAt != nil && !e.ResultsPublishedAt.IsZero()
}
