package evaluation

import (
	"fmt"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
)

// Evaluation is one juror's set of per-criterion scores for one project.
// The (project, juror) pair is the identity key: a juror saving twice
// overwrites their earlier record instead of adding a second one.
type Evaluation struct {
	ProjectID string
	JurorID   string
	Scores    map[string]float64
	Feedback  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Evaluation) Validate() error {
	if e.ProjectID == "" {
		return fmt.Errorf("evaluation project id is required")
	}
	if e.JurorID == "" {
		return fmt.Errorf("evaluation juror id is required")
	}

	return nil
}

// NormalizedScore is the weighted average across the criteria this juror
// actually scored. Pairs referencing an unknown criterion id contribute
// to neither the weighted sum nor the weight total; a juror whose scored
// criteria carry no matched weight normalizes to zero.
func (e Evaluation) NormalizedScore(weights criterion.WeightTable) float64 {
	weightedSum := 0.0
	weightTotal := 0.0
	for criterionID, raw := range e.Scores {
		weight, ok := weights[criterionID]
		if !ok {
			continue
		}
		weightedSum += raw * weight
		weightTotal += weight
	}

	if weightTotal <= 0 {
		return 0
	}

	return weightedSum / weightTotal
}
