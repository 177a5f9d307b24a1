package memory

import (
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/project"
	"github.com/jamjudge/jamjudge-api/internal/domain/team"
)

const (
	EventIDGarudaHacks = "garuda-hacks-2026"

	seedOrganizerID = "usr-organizer-demo"
)

func SeedEvents() []event.Event {
	deadline := time.Date(2026, time.June, 20, 16, 59, 0, 0, time.UTC)
	ratingStart := time.Date(2026, time.June, 20, 17, 0, 0, 0, time.UTC)
	ratingEnd := time.Date(2026, time.June, 21, 12, 0, 0, 0, time.UTC)

	return []event.Event{
		{
			ID:                 EventIDGarudaHacks,
			Name:               "Garuda Hacks 2026",
			Timezone:           "Asia/Jakarta",
			SubmissionDeadline: &deadline,
			RatingStartAt:      &ratingStart,
			RatingEndAt:        &ratingEnd,
			CreatedBy:          seedOrganizerID,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-kwetiau", EventID: EventIDGarudaHacks, Name: "Kwetiau Koders", CreatedBy: seedOrganizerID},
		{ID: "team-rendang", EventID: EventIDGarudaHacks, Name: "Rendang Runtime", CreatedBy: seedOrganizerID},
		{ID: "team-satay", EventID: EventIDGarudaHacks, Name: "Satay Stack", CreatedBy: seedOrganizerID},
	}
}

func SeedProjects() []project.Project {
	return []project.Project{
		{
			ID:          "proj-pasarlink",
			EventID:     EventIDGarudaHacks,
			TeamID:      "team-kwetiau",
			Name:        "PasarLink",
			Description: "Marketplace connector for traditional market vendors.",
			Status:      project.StatusDraft,
			CreatedBy:   seedOrganizerID,
		},
		{
			ID:          "proj-sawahsense",
			EventID:     EventIDGarudaHacks,
			TeamID:      "team-rendang",
			Name:        "SawahSense",
			Description: "Paddy field moisture monitoring dashboard.",
			Status:      project.StatusDraft,
			CreatedBy:   seedOrganizerID,
		},
		{
			ID:          "proj-ojekroute",
			EventID:     EventIDGarudaHacks,
			TeamID:      "team-satay",
			Name:        "OjekRoute",
			Description: "Multi-stop route planner for courier fleets.",
			Status:      project.StatusDraft,
			CreatedBy:   seedOrganizerID,
		},
	}
}

func SeedCriteria() []criterion.Criterion {
	return []criterion.Criterion{
		{ID: "crit-innovation", EventID: EventIDGarudaHacks, Name: "Innovation", Weight: 3, ScaleMin: 0, ScaleMax: 10, CreatedBy: seedOrganizerID},
		{ID: "crit-execution", EventID: EventIDGarudaHacks, Name: "Technical Execution", Weight: 3, ScaleMin: 0, ScaleMax: 10, CreatedBy: seedOrganizerID},
		{ID: "crit-design", EventID: EventIDGarudaHacks, Name: "Design", Weight: 2, ScaleMin: 0, ScaleMax: 10, CreatedBy: seedOrganizerID},
		{ID: "crit-impact", EventID: EventIDGarudaHacks, Name: "Impact", Weight: 2, ScaleMin: 0, ScaleMax: 10, CreatedBy: seedOrganizerID},
	}
}
