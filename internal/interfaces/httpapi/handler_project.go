package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/jamjudge/jamjudge-api/internal/usecase"
)

func (h *Handler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitProject")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	projectID := r.PathValue("projectID")
	out, err := h.projectService.Submit(ctx, usecase.SubmitProjectInput{
		ProjectID: projectID,
		Principal: principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit project failed", "project_id", projectID, "actor_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submitProjectDTO{
		ProjectID:   out.ProjectID,
		SubmittedAt: out.SubmittedAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) ForceUnlockProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ForceUnlockProject")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	var req forceUnlockRequest
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
	out, err := h.projectService.ForceUnlock(ctx, usecase.ForceUnlockProjectInput{
		ProjectID:     projectID,
		Reason:        req.Reason,
		UnlockMinutes: req.UnlockMinutes,
		Principal:     principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "force unlock failed", "project_id", projectID, "actor_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "project force-unlocked", "project_id", projectID, "actor_id", principal.UserID, "until_ms", out.ForceUnlockUntil)
	writeSuccess(ctx, w, http.StatusOK, forceUnlockDTO{
		ProjectID:        out.ProjectID,
		ForceUnlockUntil: out.ForceUnlockUntil,
	})
}

func (h *Handler) LockProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LockProject")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return
	}

	projectID := r.PathValue("projectID")
	out, err := h.projectService.Lock(ctx, usecase.LockProjectInput{
		ProjectID: projectID,
		Principal: principal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "lock project failed", "project_id", projectID, "actor_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lockProjectDTO{ProjectID: out.ProjectID})
}

type forceUnlockRequest struct {
	Reason        string `json:"reason" validate:"required,min=10,max=500"`
	UnlockMinutes int    `json:"unlockMinutes" validate:"omitempty,min=1,max=1440"`
}

type submitProjectDTO struct {
	ProjectID   string `json:"projectId"`
	SubmittedAt string `json:"submittedAt"`
}

type forceUnlockDTO struct {
	ProjectID        string `json:"projectId"`
	ForceUnlockUntil int64  `json:"forceUnlockUntil"`
}

type lockProjectDTO struct {
	ProjectID string `json:"projectId"`
}
