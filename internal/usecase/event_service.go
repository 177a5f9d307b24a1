package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
)

type EventService struct {
	eventRepo     event.Repository
	criterionRepo criterion.Repository
}

func NewEventService(eventRepo event.Repository, criterionRepo criterion.Repository) *EventService {
	return &EventService{
		eventRepo:     eventRepo,
		criterionRepo: criterionRepo,
	}
}

func (s *EventService) GetByID(ctx context.Context, eventID string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.GetByID")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	return item, nil
}

func (s *EventService) ListCriteria(ctx context.Context, eventID string) ([]criterion.Criterion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListCriteria")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
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

	items, err := s.criterionRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list criteria by event: %w", err)
	}
	return items, nil
}
