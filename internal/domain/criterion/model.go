package criterion

import (
	"fmt"
	"time"
)

// Criterion is a named, weighted evaluation dimension for an event.
// Weights are organizer-defined and are not required to sum to any
// particular total; aggregation normalizes per evaluation.
type Criterion struct {
	ID        string
	EventID   string
	Name      string
	Weight    float64
	ScaleMin  float64
	ScaleMax  float64
	CreatedBy string
	CreatedAt time.Time
}

func (c Criterion) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("criterion id is required")
	}
	if c.EventID == "" {
		return fmt.Errorf("criterion event id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("criterion name is required")
	}
	if c.Weight <= 0 {
		return fmt.Errorf("criterion weight must be > 0")
	}
	if c.ScaleMax < c.ScaleMin {
		return fmt.Errorf("criterion scale max must be >= scale min")
	}

	return nil
}

// WeightTable maps criterion id to its weight for one event.
type WeightTable map[string]float64

func BuildWeightTable(items []Criterion) WeightTable {
	table := make(WeightTable, len(items))
	for _, item := range items {
		if item.Weight <= 0 {
			continue
		}
		table[item.ID] = item.Weight
	}

	return table
}
