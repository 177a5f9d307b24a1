package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/jamjudge/jamjudge-api/internal/domain/audit"
	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/evaluation"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/project"
	"github.com/jamjudge/jamjudge-api/internal/domain/result"
	"github.com/jamjudge/jamjudge-api/internal/domain/team"
	"github.com/jamjudge/jamjudge-api/internal/domain/user"
	idgen "github.com/jamjudge/jamjudge-api/internal/platform/id"
)

const (
	defaultPublishMaxWorkers = 4
	defaultRepublishReason   = "results republished"
	unknownTeamName          = "Unknown Team"
)

type PublishResultsInput struct {
	EventID   string
	Principal user.Principal
}

type RepublishResultsInput struct {
	EventID   string
	Reason    string
	Principal user.Principal
}

type PublishResultsOutput struct {
	EventID   string `json:"event_id"`
	Published int    `json:"published"`
}

type ResultService struct {
	eventRepo      event.Repository
	projectRepo    project.Repository
	teamRepo       team.Repository
	criterionRepo  criterion.Repository
	evaluationRepo evaluation.Repository
	resultRepo     result.Repository
	auditRepo      audit.Repository
	idGen          idgen.Generator
	now            func() time.Time
	maxWorkers     int
}

func NewResultService(
	eventRepo event.Repository,
	projectRepo project.Repository,
	teamRepo team.Repository,
	criterionRepo criterion.Repository,
	evaluationRepo evaluation.Repository,
	resultRepo result.Repository,
	auditRepo audit.Repository,
	idGen idgen.Generator,
	maxWorkers int,
) *ResultService {
	if maxWorkers <= 0 {
		maxWorkers = defaultPublishMaxWorkers
	}
	return &ResultService{
		eventRepo:      eventRepo,
		projectRepo:    projectRepo,
		teamRepo:       teamRepo,
		criterionRepo:  criterionRepo,
		evaluationRepo: evaluationRepo,
		resultRepo:     resultRepo,
		auditRepo:      auditRepo,
		idGen:          idGen,
		now:            time.Now,
		maxWorkers:     maxWorkers,
	}
}

func (s *ResultService) Publish(ctx context.Context, input PublishResultsInput) (PublishResultsOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Publish")
	defer span.End()

	return s.publish(ctx, input.EventID, input.Principal, audit.ActionPublishResults, "")
}

// Republish runs the identical publication logic but records its audit
// entry before the snapshot swap, tagged with the caller's reason.
func (s *ResultService) Republish(ctx context.Context, input RepublishResultsInput) (PublishResultsOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Republish")
	defer span.End()

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = defaultRepublishReason
	}
	return s.publish(ctx, input.EventID, input.Principal, audit.ActionRepublishResults, reason)
}

func (s *ResultService) publish(ctx context.Context, eventID string, principal user.Principal, action, reason string) (PublishResultsOutput, error) {
	if err := requireRole(principal, user.RoleOrganizer); err != nil {
		return PublishResultsOutput{}, err
	}

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return PublishResultsOutput{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	_, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return PublishResultsOutput{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return PublishResultsOutput{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	if action == audit.ActionRepublishResults {
		if err := s.appendAudit(ctx, eventID, action, principal.UserID, map[string]any{"reason": reason}); err != nil {
			return PublishResultsOutput{}, err
		}
	}

	scores, err := s.aggregateEvent(ctx, eventID)
	if err != nil {
		return PublishResultsOutput{}, err
	}
	if len(scores) == 0 {
		return PublishResultsOutput{}, fmt.Errorf("%w: event has no submitted projects", ErrFailedPrecondition)
	}

	publishedAt := s.now().UTC()
	rows := rankScores(eventID, scores, publishedAt)

	if err := s.resultRepo.ReplaceByEvent(ctx, eventID, rows, publishedAt); err != nil {
		return PublishResultsOutput{}, fmt.Errorf("replace published results: %w", err)
	}

	if action == audit.ActionPublishResults {
		if err := s.appendAudit(ctx, eventID, action, principal.UserID, map[string]any{"published": len(rows)}); err != nil {
			return PublishResultsOutput{}, err
		}
	}

	return PublishResultsOutput{EventID: eventID, Published: len(rows)}, nil
}

// aggregateEvent computes one AggregatedScore per submitted project.
// Evaluation reads fan out across a worker pool; they are plain reads
// outside the replacement transaction, so the output is a point-in-time
// snapshot rather than a serialized view.
func (s *ResultService) aggregateEvent(ctx context.Context, eventID string) ([]result.AggregatedScore, error) {
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
		return nil, nil
	}

	teams, err := s.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list teams by event: %w", err)
	}
	teamNames := make(map[string]string, len(teams))
	for _, item := range teams {
		teamNames[item.ID] = item.Name
	}

	workerCount := s.maxWorkers
	if workerCount > len(projects) {
		workerCount = len(projects)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	scores := make([]result.AggregatedScore, len(projects))
	errs := make([]error, len(projects))

	var workers sync.WaitGroup
	for i, item := range projects {
		i, item := i, item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			scores[i], errs[i] = s.aggregateProject(ctx, item, weights, teamNames)
		}); err != nil {
			workers.Done()
			errs[i] = fmt.Errorf("submit aggregation task: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}

func (s *ResultService) aggregateProject(ctx context.Context, item project.Project, weights criterion.WeightTable, teamNames map[string]string) (result.AggregatedScore, error) {
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
}

// rankScores assigns positional ranks 1..N by descending score, ties
// broken by project id so repeated runs over unchanged data produce the
// same ordering.
func rankScores(eventID string, scores []result.AggregatedScore, publishedAt time.Time) []result.PublicResult {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].TotalScore != scores[j].TotalScore {
			return scores[i].TotalScore > scores[j].TotalScore
		}
		return scores[i].ProjectID < scores[j].ProjectID
	})

	rows := make([]result.PublicResult, len(scores))
	for i, item := range scores {
		rows[i] = result.PublicResult{
			EventID:         eventID,
			ProjectID:       item.ProjectID,
			ProjectName:     item.ProjectName,
			TeamName:        item.TeamName,
			TotalScore:      item.TotalScore,
			Rank:            i + 1,
			EvaluationCount: item.EvaluationCount,
			UpdatedAt:       publishedAt,
		}
	}
	return rows
}

func (s *ResultService) appendAudit(ctx context.Context, eventID, action, actorID string, payload map[string]any) error {
	recID, err := s.idGen.NewID()
	if err != nil {
		return fmt.Errorf("generate audit id: %w", err)
	}
	rec := audit.Record{
		ID:        recID,
		EventID:   eventID,
		Action:    action,
		ActorID:   actorID,
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}
	if err := s.auditRepo.Append(ctx, rec); err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}
	return nil
}
