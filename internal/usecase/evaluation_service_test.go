package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/evaluation"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/project"
	"github.com/jamjudge/jamjudge-api/internal/domain/user"
)

var juryPrincipal = user.Principal{UserID: "j1", Email: "jury@example.com", Role: user.RoleJury}

func newEvaluationFixture() (*EvaluationService, *stubEvaluationRepository) {
	ratingStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ratingEnd := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
	eventRepo := &stubEventRepository{
		byID: map[string]event.Event{
			testEventID: {ID: testEventID, Name: "Hackfest", RatingStartAt: &ratingStart, RatingEndAt: &ratingEnd},
		},
	}
	projectRepo := &stubProjectRepository{
		byID: map[string]project.Project{
			"p1": {ID: "p1", EventID: testEventID, TeamID: "t1", Name: "Alpha", Status: project.StatusSubmitted},
			"p2": {ID: "p2", EventID: testEventID, TeamID: "t2", Name: "Beta", Status: project.StatusDraft},
		},
	}
	criterionRepo := &stubCriterionRepository{
		byEvent: map[string][]criterion.Criterion{
			testEventID: {
				{ID: "crit-a", EventID: testEventID, Name: "Innovation", Weight: 2, ScaleMin: 0, ScaleMax: 10},
			},
		},
	}
	evaluationRepo := &stubEvaluationRepository{byProject: map[string][]evaluation.Evaluation{}}

	svc := NewEvaluationService(evaluationRepo, projectRepo, eventRepo, criterionRepo)
	svc.now = func() time.Time { return time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC) }
	return svc, evaluationRepo
}

func TestEvaluationService_Save_UpsertsByJuror(t *testing.T) {
	t.Parallel()

	svc, evaluationRepo := newEvaluationFixture()
	ctx := context.Background()

	first, err := svc.Save(ctx, SaveEvaluationInput{
		ProjectID: "p1",
		Scores:    map[string]float64{"crit-a": 6},
		Feedback:  "solid demo",
		Principal: juryPrincipal,
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	second, err := svc.Save(ctx, SaveEvaluationInput{
		ProjectID: "p1",
		Scores:    map[string]float64{"crit-a": 8},
		Principal: juryPrincipal,
	})
	if err != nil {
		t.Fatalf("second Save error: %v", err)
	}

	items := evaluationRepo.byProject["p1"]
	if len(items) != 1 {
		t.Fatalf("expected one evaluation per juror, got %d", len(items))
	}
	if items[0].Scores["crit-a"] != 8 {
		t.Fatalf("expected overwritten score, got %+v", items[0].Scores)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected preserved creation time on overwrite")
	}
}

func TestEvaluationService_Save_RejectsOutsideRatingWindow(t *testing.T) {
	t.Parallel()

	svc, _ := newEvaluationFixture()
	svc.now = func() time.Time { return time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC) }

	_, err := svc.Save(context.Background(), SaveEvaluationInput{
		ProjectID: "p1",
		Scores:    map[string]float64{"crit-a": 6},
		Principal: juryPrincipal,
	})
	if !errors.Is(err, ErrFailedPrecondition) {
		t.Fatalf("expected failed precondition, got %v", err)
	}
}

func TestEvaluationService_Save_RejectsDraftProject(t *testing.T) {
	t.Parallel()

	svc, _ := newEvaluationFixture()

	_, err := svc.Save(context.Background(), SaveEvaluationInput{
		ProjectID: "p2",
		Scores:    map[string]float64{"crit-a": 6},
		Principal: juryPrincipal,
	})
	if !errors.Is(err, ErrFailedPrecondition) {
		t.Fatalf("expected failed precondition, got %v", err)
	}
}

func TestEvaluationService_Save_RejectsUnknownCriterion(t *testing.T) {
	t.Parallel()

	svc, _ := newEvaluationFixture()

	_, err := svc.Save(context.Background(), SaveEvaluationInput{
		ProjectID: "p1",
		Scores:    map[string]float64{"crit-x": 6},
		Principal: juryPrincipal,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestEvaluationService_Save_RejectsScoreOutsideScale(t *testing.T) {
	t.Parallel()

	svc, _ := newEvaluationFixture()

	_, err := svc.Save(context.Background(), SaveEvaluationInput{
		ProjectID: "p1",
		Scores:    map[string]float64{"crit-a": 11},
		Principal: juryPrincipal,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestEvaluationService_Save_RequiresJuryRole(t *testing.T) {
	t.Parallel()

	svc, _ := newEvaluationFixture()

	_, err := svc.Save(context.Background(), SaveEvaluationInput{
		ProjectID: "p1",
		Scores:    map[string]float64{"crit-a": 6},
		Principal: user.Principal{UserID: "u-1", Role: user.RoleParticipant},
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestEvaluationService_Get_OwnEvaluationOnly(t *testing.T) {
	t.Parallel()

	svc, evaluationRepo := newEvaluationFixture()
	evaluationRepo.byProject["p1"] = []evaluation.Evaluation{
		{ProjectID: "p1", JurorID: "j1", Scores: map[string]float64{"crit-a": 7}},
		{ProjectID: "p1", JurorID: "j2", Scores: map[string]float64{"crit-a": 3}},
	}

	got, err := svc.Get(context.Background(), GetEvaluationInput{ProjectID: "p1", Principal: juryPrincipal})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.JurorID != "j1" || got.Scores["crit-a"] != 7 {
		t.Fatalf("unexpected evaluation: %+v", got)
	}

	_, err = svc.Get(context.Background(), GetEvaluationInput{
		ProjectID: "p1",
		Principal: user.Principal{UserID: "j3", Role: user.RoleJury},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for juror without evaluation, got %v", err)
	}
}
