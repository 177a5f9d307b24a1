package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jamjudge/jamjudge-api/internal/domain/audit"
	"github.com/jamjudge/jamjudge-api/internal/domain/user"
)

func TestAuditService_ListByEvent(t *testing.T) {
	t.Parallel()

	auditRepo := &stubAuditRepository{
		records: []audit.Record{
			{ID: "a1", EventID: testEventID, Action: audit.ActionPublishResults, ActorID: "org-1"},
			{ID: "a2", EventID: "other-event", Action: audit.ActionPublishResults, ActorID: "org-2"},
			{ID: "a3", EventID: testEventID, Action: audit.ActionForceUnlockProject, ActorID: "org-1"},
		},
	}
	svc := NewAuditService(auditRepo)

	items, err := svc.ListByEvent(context.Background(), ListAuditsInput{EventID: testEventID, Principal: organizerPrincipal})
	if err != nil {
		t.Fatalf("ListByEvent error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	for _, item := range items {
		if item.EventID != testEventID {
			t.Fatalf("unexpected record for foreign event: %+v", item)
		}
	}
}

func TestAuditService_ListByEvent_RequiresOrganizer(t *testing.T) {
	t.Parallel()

	svc := NewAuditService(&stubAuditRepository{})

	_, err := svc.ListByEvent(context.Background(), ListAuditsInput{
		EventID:   testEventID,
		Principal: user.Principal{UserID: "u-1", Role: user.RoleParticipant},
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
