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
	"github.com/jamjudge/jamjudge-api/internal/domain/result"
	"github.com/jamjudge/jamjudge-api/internal/domain/team"
	"github.com/jamjudge/jamjudge-api/internal/domain/user"
)

func newLeaderboardFixture(publishedAt *time.Time) (*LeaderboardService, *stubResultRepository) {
	eventRepo := &stubEventRepository{
		byID: map[string]event.Event{
			testEventID: {ID: testEventID, Name: "Hackfest", ResultsPublishedAt: publishedAt},
		},
	}
	projectRepo := &stubProjectRepository{
		byID: map[string]project.Project{
			"p1": {ID: "p1", EventID: testEventID, TeamID: "t1", Name: "Alpha", Status: project.StatusSubmitted},
			"p2": {ID: "p2", EventID: testEventID, TeamID: "t2", Name: "Beta", Status: project.StatusSubmitted},
		},
	}
	teamRepo := &stubTeamRepository{
		byEvent: map[string][]team.Team{
			testEventID: {
				{ID: "t1", EventID: testEventID, Name: "Team One"},
				{ID: "t2", EventID: testEventID, Name: "Team Two"},
			},
		},
	}
	criterionRepo := &stubCriterionRepository{
		byEvent: map[string][]criterion.Criterion{
			testEventID: {
				{ID: "crit-a", EventID: testEventID, Name: "Innovation", Weight: 1, ScaleMax: 10},
			},
		},
	}
	evaluationRepo := &stubEvaluationRepository{
		byProject: map[string][]evaluation.Evaluation{
			"p1": {{ProjectID: "p1", JurorID: "j1", Scores: map[string]float64{"crit-a": 4}}},
			"p2": {{ProjectID: "p2", JurorID: "j1", Scores: map[string]float64{"crit-a": 9}}},
		},
	}
	resultRepo := &stubResultRepository{rows: map[string][]result.PublicResult{}}

	svc := NewLeaderboardService(eventRepo, projectRepo, teamRepo, criterionRepo, evaluationRepo, resultRepo, 2)
	return svc, resultRepo
}

func TestLeaderboardService_Get_UnpublishedEventIsEmpty(t *testing.T) {
	t.Parallel()

	svc, _ := newLeaderboardFixture(nil)

	rows, err := svc.Get(context.Background(), testEventID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty leaderboard before publish, got %+v", rows)
	}
}

func TestLeaderboardService_Get_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	publishedAt := time.Date(2026, 5, 3, 18, 0, 0, 0, time.UTC)
	svc, resultRepo := newLeaderboardFixture(&publishedAt)
	resultRepo.rows[testEventID] = []result.PublicResult{
		{EventID: testEventID, ProjectID: "p2", Rank: 1, TotalScore: 9},
		{EventID: testEventID, ProjectID: "p1", Rank: 2, TotalScore: 4},
	}

	rows, err := svc.Get(context.Background(), testEventID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(rows) != 2 || rows[0].ProjectID != "p2" {
		t.Fatalf("unexpected snapshot: %+v", rows)
	}
}

func TestLeaderboardService_Preview_ComputesLiveScores(t *testing.T) {
	t.Parallel()

	svc, resultRepo := newLeaderboardFixture(nil)

	scores, err := svc.Preview(context.Background(), PreviewScoresInput{EventID: testEventID, Principal: organizerPrincipal})
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 preview rows, got %d", len(scores))
	}
	if scores[0].ProjectID != "p2" || scores[0].TotalScore != 9 {
		t.Fatalf("unexpected top preview row: %+v", scores[0])
	}
	if scores[1].ProjectID != "p1" || scores[1].TotalScore != 4 {
		t.Fatalf("unexpected second preview row: %+v", scores[1])
	}

	// Preview never persists anything.
	if len(resultRepo.rows[testEventID]) != 0 {
		t.Fatalf("expected no stored rows after preview")
	}
}

func TestLeaderboardService_Preview_RequiresOrganizer(t *testing.T) {
	t.Parallel()

	svc, _ := newLeaderboardFixture(nil)

	_, err := svc.Preview(context.Background(), PreviewScoresInput{
		EventID:   testEventID,
		Principal: user.Principal{UserID: "j1", Role: user.RoleJury},
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
