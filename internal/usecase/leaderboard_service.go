package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/evaluation"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/result"
	"github.com/jamjudge/jamjudge-api/internal/domain/team"
	"github.com/jamjudge/jamjudge-api/internal/domain/user"

	projectdomain "github.com/jamjudge/jamjudge-api/internal/domain/project"
)

type PreviewScoresInput struct {
	EventID   string
	Principal user.Principal
}

type LeaderboardService struct {
	eventRepo      event.Repository
	projectRepo    projectdomain.Repository
	teamRepo       team.Repository
	criterionRepo  criterion.Repository
	evaluationRepo evaluation.Repository
	resultRepo     result.Repository
	maxWorkers     int
}

func NewLeaderboardService(
	eventRepo event.Repository,
	projectRepo projectdomain.Repository,
	teamRepo team.Repository,
	criterionRepo criterion.Repository,
	evaluationRepo evaluation.Repository,
	resultRepo result.Repository,
	maxWorkers int,
) *LeaderboardService {
	if maxWorkers <= 0 {
		maxWorkers = defaultPublishMaxWorkers
	}
	return &LeaderboardService{
		eventRepo:      eventRepo,
		projectRepo:    projectRepo,
		teamRepo:       teamRepo,
		criterionRepo:  criterionRepo,
		evaluationRepo: evaluationRepo,
		resultRepo:     resultRepo,
		maxWorkers:     maxWorkers,
	}
}

// Get returns the published snapshot for an event. Unpublished events
// return an empty board; callers distinguish that from "published with
// no rows" via the event's resultsPublishedAt field.
func (s *LeaderboardService) Get(ctx context.Context, eventID string) ([]result.PublicResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Get")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	evt, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	if !evt.ResultsPublished() {
		return []result.PublicResult{}, nil
	}

	rows, err := s.resultRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list published results: %w", err)
	}
	return rows, nil
}

// Preview recomputes live aggregated scores without persisting anything,
// so organizers can inspect standings before publishing.
func (s *LeaderboardService) Preview(ctx context.Context, input PreviewScoresInput) ([]result.AggregatedScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Preview")
	defer span.End()

	if err := requireRole(input.Principal, user.RoleOrganizer); err != nil {
		return nil, err
	}

	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	_, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	criteria, err := s.criterionRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list criteria by event: %w", err)
	}
	weights := criterion.BuildWeightTable(criteria)

	projects, err := s.projectRepo.ListSubmittedByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list submitted projects: %w", err)
	}
	if len(projects) == 0 {
		return []result.AggregatedScore{}, nil
	}

	teams, err := s.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list teams by event: %w", err)
	}
	teamNames := make(map[string]string, len(teams))
	for _, item := range teams {
		teamNames[item.ID] = item.Name
	}

	workers := pool.NewWithResults[result.AggregatedScore]().WithErrors().WithMaxGoroutines(s.maxWorkers)
	for _, item := range projects {
		item := item
		workers.Go(func() (result.AggregatedScore, error) {
			evaluations, err := s.evaluationRepo.ListByProject(ctx, item.ID)
			if err != nil {
				return result.AggregatedScore{}, fmt.Errorf("list evaluations for project %s: %w", item.ID, err)
			}
			var total float64
			for _, eval := range evaluations {
				total += eval.NormalizedScore(weights)
			}
			score := 0.0
			if len(evaluations) > 0 {
				score = total / float64(len(evaluations))
			}
			teamName, ok := teamNames[item.TeamID]
			if !ok || teamName == "" {
				teamName = unknownTeamName
			}
			return result.AggregatedScore{
				ProjectID:       item.ID,
				ProjectName:     item.Name,
				TeamID:          item.TeamID,
				TeamName:        teamName,
				TotalScore:      score,
				EvaluationCount: len(evaluations),
			}, nil
		})
	}
	scores, err := workers.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].TotalScore != scores[j].TotalScore {
			return scores[i].TotalScore > scores[j].TotalScore
		}
		return scores[i].ProjectID < scores[j].ProjectID
	})
	return scores, nil
}
