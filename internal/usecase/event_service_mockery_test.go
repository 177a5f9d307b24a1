package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	criterionmock "github.com/jamjudge/jamjudge-api/internal/mocks/domain/criterion"
	eventmock "github.com/jamjudge/jamjudge-api/internal/mocks/domain/event"
	"github.com/stretchr/testify/mock"
)

func TestEventService_ListCriteria_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	eventRepo := eventmock.NewRepository(t)
	criterionRepo := criterionmock.NewRepository(t)

	service := NewEventService(eventRepo, criterionRepo)
	eventID := "garuda-hacks-2026"
	expectedCriteria := []criterion.Criterion{
		{
			ID:       "crit-innovation",
			EventID:  eventID,
			Name:     "Innovation",
			Weight:   3,
			ScaleMin: 0,
			ScaleMax: 10,
		},
		{
			ID:       "crit-design",
			EventID:  eventID,
			Name:     "Design",
			Weight:   2,
			ScaleMin: 0,
			ScaleMax: 10,
		},
	}

	eventRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), eventID).
		Return(event.Event{ID: eventID, Name: "Garuda Hacks 2026"}, true, nil).
		Once()
	criterionRepo.
		On("ListByEvent", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), eventID).
		Return(expectedCriteria, nil).
		Once()

	got, err := service.ListCriteria(ctx, eventID)
	if err != nil {
		t.Fatalf("list criteria: %v", err)
	}
	if len(got) != len(expectedCriteria) {
		t.Fatalf("unexpected criteria count: got=%d want=%d", len(got), len(expectedCriteria))
	}
	if got[0].ID != expectedCriteria[0].ID {
		t.Fatalf("unexpected criterion id: got=%s want=%s", got[0].ID, expectedCriteria[0].ID)
	}
	if got[1].Weight != expectedCriteria[1].Weight {
		t.Fatalf("unexpected criterion weight: got=%v want=%v", got[1].Weight, expectedCriteria[1].Weight)
	}
}

func TestEventService_ListCriteria_EventNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := eventmock.NewRepository(t)
	criterionRepo := criterionmock.NewRepository(t)

	service := NewEventService(eventRepo, criterionRepo)
	eventID := "missing-event"

	eventRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), eventID).
		Return(event.Event{}, false, nil).
		Once()

	_, err := service.ListCriteria(ctx, eventID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventService_GetByID_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := eventmock.NewRepository(t)
	criterionRepo := criterionmock.NewRepository(t)

	service := NewEventService(eventRepo, criterionRepo)
	eventID := "garuda-hacks-2026"
	deadline := time.Date(2026, 6, 20, 16, 59, 0, 0, time.UTC)
	expected := event.Event{
		ID:                 eventID,
		Name:               "Garuda Hacks 2026",
		Timezone:           "Asia/Jakarta",
		SubmissionDeadline: &deadline,
	}

	eventRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), eventID).
		Return(expected, true, nil).
		Once()

	got, err := service.GetByID(ctx, eventID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.ID != expected.ID {
		t.Fatalf("unexpected event id: got=%s want=%s", got.ID, expected.ID)
	}
	if got.Timezone != expected.Timezone {
		t.Fatalf("unexpected timezone: got=%s want=%s", got.Timezone, expected.Timezone)
	}
}

func TestEventService_GetByID_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := eventmock.NewRepository(t)
	criterionRepo := criterionmock.NewRepository(t)

	service := NewEventService(eventRepo, criterionRepo)
	eventID := "garuda-hacks-2026"
	repoErr := errors.New("connection reset")

	eventRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), eventID).
		Return(event.Event{}, false, repoErr).
		Once()

	_, err := service.GetByID(ctx, eventID)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
