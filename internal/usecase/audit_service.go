package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jamjudge/jamjudge-api/internal/domain/audit"
	"github.com/jamjudge/jamjudge-api/internal/domain/user"
)

const defaultAuditListLimit = 100

type ListAuditsInput struct {
	EventID   string
	Limit     int
	Principal user.Principal
}

type AuditService struct {
	auditRepo audit.Repository
}

func NewAuditService(auditRepo audit.Repository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

func (s *AuditService) ListByEvent(ctx context.Context, input ListAuditsInput) ([]audit.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditService.ListByEvent")
	defer span.End()

	if err := requireRole(input.Principal, user.RoleOrganizer); err != nil {
		return nil, err
	}

	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultAuditListLimit
	}

	items, err := s.auditRepo.ListByEvent(ctx, eventID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return items, nil
}
