package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/evaluation"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/project"
	"github.com/jamjudge/jamjudge-api/internal/domain/user"
)

type SaveEvaluationInput struct {
	ProjectID string
	Scores    map[string]float64
	Feedback  string
	Principal user.Principal
}

type GetEvaluationInput struct {
	ProjectID string
	Principal user.Principal
}

type EvaluationService struct {
	evaluationRepo evaluation.Repository
	projectRepo    project.Repository
	eventRepo      event.Repository
	criterionRepo  criterion.Repository
	now            func() time.Time
}

func NewEvaluationService(
	evaluationRepo evaluation.Repository,
	projectRepo project.Repository,
	eventRepo event.Repository,
	criterionRepo criterion.Repository,
) *EvaluationService {
	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		projectRepo:    projectRepo,
		eventRepo:      eventRepo,
		criterionRepo:  criterionRepo,
		now:            time.Now,
	}
}

// Save upserts the caller's evaluation for a project. One evaluation
// per (project, juror) pair; a second save overwrites the first.
func (s *EvaluationService) Save(ctx context.Context, input SaveEvaluationInput) (evaluation.Evaluation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EvaluationService.Save")
	defer span.End()

	if err := requireRole(input.Principal, user.RoleJury); err != nil {
		return evaluation.Evaluation{}, err
	}

	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return evaluation.Evaluation{}, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}
	if len(input.Scores) == 0 {
		return evaluation.Evaluation{}, fmt.Errorf("%w: at least one score is required", ErrInvalidInput)
	}

	item, exists, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("get project: %w", err)
	}
	if !exists {
		return evaluation.Evaluation{}, fmt.Errorf("%w: project=%s", ErrNotFound, projectID)
	}
	if item.Status != project.StatusSubmitted {
		return evaluation.Evaluation{}, fmt.Errorf("%w: only submitted projects can be evaluated", ErrFailedPrecondition)
	}

	evt, exists, err := s.eventRepo.GetByID(ctx, item.EventID)
	if err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return evaluation.Evaluation{}, fmt.Errorf("%w: event=%s", ErrNotFound, item.EventID)
	}

	now := s.now().UTC()
	if evt.RatingStartAt != nil && now.Before(*evt.RatingStartAt) {
		return evaluation.Evaluation{}, fmt.Errorf("%w: rating period has not started", ErrFailedPrecondition)
	}
	if evt.RatingEndAt != nil && now.After(*evt.RatingEndAt) {
		return evaluation.Evaluation{}, fmt.Errorf("%w: rating period has ended", ErrFailedPrecondition)
	}

	criteria, err := s.criterionRepo.ListByEvent(ctx, item.EventID)
	if err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("list criteria by event: %w", err)
	}
	byID := make(map[string]criterion.Criterion, len(criteria))
	for _, c := range criteria {
		byID[c.ID] = c
	}
	for criterionID, score := range input.Scores {
		c, ok := byID[criterionID]
		if !ok {
			return evaluation.Evaluation{}, fmt.Errorf("%w: unknown criterion %s", ErrInvalidInput, criterionID)
		}
		if score < c.ScaleMin || score > c.ScaleMax {
			return evaluation.Evaluation{}, fmt.Errorf("%w: score for %s must be between %g and %g", ErrInvalidInput, c.Name, c.ScaleMin, c.ScaleMax)
		}
	}

	eval := evaluation.Evaluation{
		ProjectID: projectID,
		JurorID:   input.Principal.UserID,
		Scores:    input.Scores,
		Feedback:  strings.TrimSpace(input.Feedback),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, found, err := s.evaluationRepo.GetByProjectAndJuror(ctx, projectID, input.Principal.UserID); err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("get evaluation: %w", err)
	} else if found {
		eval.CreatedAt = existing.CreatedAt
	}

	if err := s.evaluationRepo.Upsert(ctx, eval); err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("upsert evaluation: %w", err)
	}
	return eval, nil
}

// Get returns the caller's own evaluation for a project.
func (s *EvaluationService) Get(ctx context.Context, input GetEvaluationInput) (evaluation.Evaluation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EvaluationService.Get")
	defer span.End()

	if err := requireRole(input.Principal, user.RoleJury); err != nil {
		return evaluation.Evaluation{}, err
	}

	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return evaluation.Evaluation{}, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}

	eval, found, err := s.evaluationRepo.GetByProjectAndJuror(ctx, projectID, input.Principal.UserID)
	if err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("get evaluation: %w", err)
	}
	if !found {
		return evaluation.Evaluation{}, fmt.Errorf("%w: evaluation for project=%s", ErrNotFound, projectID)
	}
	return eval, nil
}
