package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/audit"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/project"
	"github.com/jamjudge/jamjudge-api/internal/domain/user"
	idgen "github.com/jamjudge/jamjudge-api/internal/platform/id"
)

const (
	minForceUnlockReasonLength = 10
	defaultForceUnlockMinutes  = 60
)

type SubmitProjectInput struct {
	ProjectID string
	Principal user.Principal
}

type SubmitProjectOutput struct {
	ProjectID   string    `json:"project_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ForceUnlockProjectInput struct {
	ProjectID     string
	Reason        string
	UnlockMinutes int
	Principal     user.Principal
}

type ForceUnlockProjectOutput struct {
	ProjectID        string `json:"project_id"`
	ForceUnlockUntil int64  `json:"force_unlock_until"`
}

type LockProjectInput struct {
	ProjectID string
	Principal user.Principal
}

type LockProjectOutput struct {
	ProjectID string `json:"project_id"`
}

type ProjectService struct {
	projectRepo project.Repository
	eventRepo   event.Repository
	auditRepo   audit.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewProjectService(
	projectRepo project.Repository,
	eventRepo event.Repository,
	auditRepo audit.Repository,
	idGen idgen.Generator,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		eventRepo:   eventRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

// Submit moves a draft project to submitted. Resubmission of an already
// submitted project, and any submission after the event's deadline,
// succeed only while a force-unlock window is active on the project.
func (s *ProjectService) Submit(ctx context.Context, input SubmitProjectInput) (SubmitProjectOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectService.Submit")
	defer span.End()

	if err := requireRole(input.Principal, user.RoleParticipant, user.RoleOrganizer); err != nil {
		return SubmitProjectOutput{}, err
	}

	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return SubmitProjectOutput{}, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}

	item, exists, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return SubmitProjectOutput{}, fmt.Errorf("get project: %w", err)
	}
	if !exists {
		return SubmitProjectOutput{}, fmt.Errorf("%w: project=%s", ErrNotFound, projectID)
	}

	now := s.now().UTC()
	if item.Status == project.StatusSubmitted && !item.UnlockActive(now) {
		return SubmitProjectOutput{}, fmt.Errorf("%w: project is already submitted", ErrFailedPrecondition)
	}

	evt, exists, err := s.eventRepo.GetByID(ctx, item.EventID)
	if err != nil {
		return SubmitProjectOutput{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return SubmitProjectOutput{}, fmt.Errorf("%w: event=%s", ErrNotFound, item.EventID)
	}

	if evt.SubmissionDeadline != nil && now.After(*evt.SubmissionDeadline) && !item.UnlockActive(now) {
		return SubmitProjectOutput{}, fmt.Errorf("%w: submission deadline has passed", ErrFailedPrecondition)
	}

	if err := s.projectRepo.MarkSubmitted(ctx, projectID, now); err != nil {
		return SubmitProjectOutput{}, fmt.Errorf("mark project submitted: %w", err)
	}

	if err := s.appendAudit(ctx, item.EventID, audit.ActionSubmitProject, input.Principal.UserID, map[string]any{
		"project_id": projectID,
	}); err != nil {
		return SubmitProjectOutput{}, err
	}

	return SubmitProjectOutput{ProjectID: projectID, SubmittedAt: now}, nil
}

// ForceUnlock grants a submitted project a temporary re-edit window.
func (s *ProjectService) ForceUnlock(ctx context.Context, input ForceUnlockProjectInput) (ForceUnlockProjectOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectService.ForceUnlock")
	defer span.End()

	if err := requireRole(input.Principal, user.RoleOrganizer); err != nil {
		return ForceUnlockProjectOutput{}, err
	}

	projectID := strings.TrimSpace(input.ProjectID)
	reason := strings.TrimSpace(input.Reason)
	if projectID == "" {
		return ForceUnlockProjectOutput{}, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}
	if len(reason) < minForceUnlockReasonLength {
		return ForceUnlockProjectOutput{}, fmt.Errorf("%w: reason must be at least %d characters", ErrInvalidInput, minForceUnlockReasonLength)
	}
	minutes := input.UnlockMinutes
	if minutes == 0 {
		minutes = defaultForceUnlockMinutes
	}
	if minutes < 0 {
		return ForceUnlockProjectOutput{}, fmt.Errorf("%w: unlock minutes must be positive", ErrInvalidInput)
	}

	item, exists, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return ForceUnlockProjectOutput{}, fmt.Errorf("get project: %w", err)
	}
	if !exists {
		return ForceUnlockProjectOutput{}, fmt.Errorf("%w: project=%s", ErrNotFound, projectID)
	}
	if item.Status != project.StatusSubmitted {
		return ForceUnlockProjectOutput{}, fmt.Errorf("%w: only submitted projects can be force-unlocked", ErrFailedPrecondition)
	}

	until := s.now().UTC().Add(time.Duration(minutes) * time.Minute)
	if err := s.projectRepo.SetForceUnlock(ctx, projectID, &until); err != nil {
		return ForceUnlockProjectOutput{}, fmt.Errorf("set force unlock: %w", err)
	}

	if err := s.appendAudit(ctx, item.EventID, audit.ActionForceUnlockProject, input.Principal.UserID, map[string]any{
		"project_id":         projectID,
		"reason":             reason,
		"force_unlock_until": until.UnixMilli(),
	}); err != nil {
		return ForceUnlockProjectOutput{}, err
	}

	return ForceUnlockProjectOutput{ProjectID: projectID, ForceUnlockUntil: until.UnixMilli()}, nil
}

// Lock clears an active force-unlock window ahead of its expiry.
func (s *ProjectService) Lock(ctx context.Context, input LockProjectInput) (LockProjectOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectService.Lock")
	defer span.End()

	if err := requireRole(input.Principal, user.RoleOrganizer); err != nil {
		return LockProjectOutput{}, err
	}

	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return LockProjectOutput{}, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}

	item, exists, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return LockProjectOutput{}, fmt.Errorf("get project: %w", err)
	}
	if !exists {
		return LockProjectOutput{}, fmt.Errorf("%w: project=%s", ErrNotFound, projectID)
	}
	if item.ForceUnlockUntil == nil {
		return LockProjectOutput{}, fmt.Errorf("%w: project has no unlock window", ErrFailedPrecondition)
	}

	if err := s.projectRepo.SetForceUnlock(ctx, projectID, nil); err != nil {
		return LockProjectOutput{}, fmt.Errorf("clear force unlock: %w", err)
	}

	if err := s.appendAudit(ctx, item.EventID, audit.ActionLockProject, input.Principal.UserID, map[string]any{
		"project_id": projectID,
	}); err != nil {
		return LockProjectOutput{}, err
	}

	return LockProjectOutput{ProjectID: projectID}, nil
}

func (s *ProjectService) appendAudit(ctx context.Context, eventID, action, actorID string, payload map[string]any) error {
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
