package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/jamjudge/jamjudge-api/internal/domain/evaluation"
	"github.com/jamjudge/jamjudge-api/internal/usecase"
)

func (h *Handler) SaveEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveEvaluation")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	var req saveEvaluationRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	projectID := r.PathValue("projectID")
	item, err := h.evaluationService.Save(ctx, usecase.SaveEvaluationInput{
		ProjectID: projectID,
		Scores:    req.Scores,
		Feedback:  req.Feedback,
		Principal: principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save evaluation failed", "project_id", projectID, "juror_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, evaluationToDTO(ctx, item))
}

func (h *Handler) GetMyEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyEvaluation")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	projectID := r.PathValue("projectID")
	item, err := h.evaluationService.Get(ctx, usecase.GetEvaluationInput{
		ProjectID: projectID,
		Principal: principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get evaluation failed", "project_id", projectID, "juror_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, evaluationToDTO(ctx, item))
}

type saveEvaluationRequest struct {
	Scores   map[string]float64 `json:"scores" validate:"required,min=1"`
	Feedback string             `json:"feedback" validate:"omitempty,max=2000"`
}

type evaluationDTO struct {
	ProjectID string             `json:"projectId"`
	JurorID   string             `json:"jurorId"`
	Scores    map[string]float64 `json:"scores"`
	Feedback  string             `json:"feedback,omitempty"`
	UpdatedAt string             `json:"updatedAt"`
}

func evaluationToDTO(ctx context.Context, v evaluation.Evaluation) evaluationDTO {
	ctx, span := startSpan(ctx, "httpapi.evaluationToDTO")
	defer span.End()

	return evaluationDTO{
		ProjectID: v.ProjectID,
		JurorID:   v.JurorID,
		Scores:    v.Scores,
		Feedback:  v.Feedback,
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
