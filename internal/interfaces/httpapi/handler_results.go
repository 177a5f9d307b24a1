package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/jamjudge/jamjudge-api/internal/domain/audit"
	"github.com/jamjudge/jamjudge-api/internal/domain/result"
	"github.com/jamjudge/jamjudge-api/internal/usecase"
)

func (h *Handler) PublishResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishResults")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	eventID := r.PathValue("eventID")
	out, err := h.resultService.Publish(ctx, usecase.PublishResultsInput{
		EventID:   eventID,
		Principal: principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "publish results failed", "event_id", eventID, "actor_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "results published", "event_id", eventID, "actor_id", principal.UserID, "published", out.Published)
	writeSuccess(ctx, w, http.StatusOK, publishResultsDTO{EventID: out.EventID, Published: out.Published})
}

func (h *Handler) RepublishResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RepublishResults")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	var req republishResultsRequest
	if r.Body != nil && r.ContentLength != 0 {
		decoder := sonic.ConfigDefault.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
			return
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	out, err := h.resultService.Republish(ctx, usecase.RepublishResultsInput{
		EventID:   eventID,
		Reason:    req.Reason,
		Principal: principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "republish results failed", "event_id", eventID, "actor_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "results republished", "event_id", eventID, "actor_id", principal.UserID, "published", out.Published)
	writeSuccess(ctx, w, http.StatusOK, publishResultsDTO{EventID: out.EventID, Published: out.Published})
}

func (h *Handler) PreviewScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewScores")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	eventID := r.PathValue("eventID")
	scores, err := h.leaderboardService.Preview(ctx, usecase.PreviewScoresInput{
		EventID:   eventID,
		Principal: principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "preview scores failed", "event_id", eventID, "actor_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]previewScoreDTO, 0, len(scores))
	for _, score := range scores {
		items = append(items, previewScoreToDTO(ctx, score))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListAuditsByEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAuditsByEvent")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	eventID := r.PathValue("eventID")
	records, err := h.auditService.ListByEvent(ctx, usecase.ListAuditsInput{
		EventID:   eventID,
		Principal: principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list audits failed", "event_id", eventID, "actor_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]auditRecordDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, auditRecordToDTO(ctx, rec))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type republishResultsRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type publishResultsDTO struct {
	EventID   string `json:"eventId"`
	Published int    `json:"published"`
}

type previewScoreDTO struct {
	ProjectID       string  `json:"projectId"`
	ProjectName     string  `json:"projectName"`
	TeamID          string  `json:"teamId"`
	TeamName        string  `json:"teamName"`
	TotalScore      float64 `json:"totalScore"`
	EvaluationCount int     `json:"evaluationCount"`
}

type auditRecordDTO struct {
	ID        string         `json:"id"`
	EventID   string         `json:"eventId"`
	Action    string         `json:"action"`
	ActorID   string         `json:"actorId"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt string         `json:"createdAt"`
}

func previewScoreToDTO(ctx context.Context, v result.AggregatedScore) previewScoreDTO {
	ctx, span := startSpan(ctx, "httpapi.previewScoreToDTO")
	defer span.End()

	return previewScoreDTO{
		ProjectID:       v.ProjectID,
		ProjectName:     v.ProjectName,
		TeamID:          v.TeamID,
		TeamName:        v.TeamName,
		TotalScore:      v.TotalScore,
		EvaluationCount: v.EvaluationCount,
	}
}

func auditRecordToDTO(ctx context.Context, v audit.Record) auditRecordDTO {
	ctx, span := startSpan(ctx, "httpapi.auditRecordToDTO")
	defer span.End()

	return auditRecordDTO{
		ID:        v.ID,
		EventID:   v.EventID,
		Action:    v.Action,
		ActorID:   v.ActorID,
		Payload:   v.Payload,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
