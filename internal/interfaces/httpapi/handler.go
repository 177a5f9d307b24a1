package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/result"
	"github.com/jamjudge/jamjudge-api/internal/usecase"
)

type Handler struct {
	eventService       *usecase.EventService
	resultService      *usecase.ResultService
	projectService     *usecase.ProjectService
	evaluationService  *usecase.EvaluationService
	leaderboardService *usecase.LeaderboardService
	auditService       *usecase.AuditService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	eventService *usecase.EventService,
	resultService *usecase.ResultService,
	projectService *usecase.ProjectService,
	evaluationService *usecase.EvaluationService,
	leaderboardService *usecase.LeaderboardService,
	auditService *usecase.AuditService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		eventService:       eventService,
		resultService:      resultService,
		projectService:     projectService,
		evaluationService:  evaluationService,
		leaderboardService: leaderboardService,
		auditService:       auditService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	item, err := h.eventService.GetByID(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(ctx, item))
}

func (h *Handler) ListCriteriaByEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCriteriaByEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	criteria, err := h.eventService.ListCriteria(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list criteria failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]criterionDTO, 0, len(criteria))
	for _, c := range criteria {
		items = append(items, criterionToDTO(ctx, c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	eventID := r.PathValue("eventID")
	rows, err := h.leaderboardService.Get(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]publicResultDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, publicResultToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type eventDTO struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Timezone           string  `json:"timezone"`
	SubmissionDeadline *string `json:"submissionDeadline,omitempty"`
	RatingStartAt      *string `json:"ratingStartAt,omitempty"`
	RatingEndAt        *string `json:"ratingEndAt,omitempty"`
	ResultsPublishedAt *string `json:"resultsPublishedAt,omitempty"`
}

type criterionDTO struct {
	ID       string  `json:"id"`
	EventID  string  `json:"eventId"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	ScaleMin float64 `json:"scaleMin"`
	ScaleMax float64 `json:"scaleMax"`
}

type publicResultDTO struct {
	EventID         string  `json:"eventId"`
	ProjectID       string  `json:"projectId"`
	ProjectName     string  `json:"projectName"`
	TeamName        string  `json:"teamName"`
	TotalScore      float64 `json:"totalScore"`
	Rank            int     `json:"rank"`
	EvaluationCount int     `json:"evaluationCount"`
	UpdatedAt       string  `json:"updatedAt"`
}

func eventToDTO(ctx context.Context, v event.Event) eventDTO {
	ctx, span := startSpan(ctx, "httpapi.eventToDTO")
	defer span.End()

	return eventDTO{
		ID:                 v.ID,
		Name:               v.Name,
		Timezone:           v.Timezone,
		SubmissionDeadline: formatOptionalTime(v.SubmissionDeadline),
		RatingStartAt:      formatOptionalTime(v.RatingStartAt),
		RatingEndAt:        formatOptionalTime(v.RatingEndAt),
		ResultsPublishedAt: formatOptionalTime(v.ResultsPublishedAt),
	}
}

func criterionToDTO(ctx context.Context, v criterion.Criterion) criterionDTO {
	ctx, span := startSpan(ctx, "httpapi.criterionToDTO")
	defer span.End()

	return criterionDTO{
		ID:       v.ID,
		EventID:  v.EventID,
		Name:     v.Name,
		Weight:   v.Weight,
		ScaleMin: v.ScaleMin,
		ScaleMax: v.ScaleMax,
	}
}

func publicResultToDTO(ctx context.Context, v result.PublicResult) publicResultDTO {
	ctx, span := startSpan(ctx, "httpapi.publicResultToDTO")
	defer span.End()

	return publicResultDTO{
		EventID:         v.EventID,
		ProjectID:       v.ProjectID,
		ProjectName:     v.ProjectName,
		TeamName:        v.TeamName,
		TotalScore:      v.TotalScore,
		Rank:            v.Rank,
		EvaluationCount: v.EvaluationCount,
		UpdatedAt:       v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func formatOptionalTime(v *time.Time) *string {
	if v == nil || v.IsZero() {
		return nil
	}
	s := v.UTC().Format(time.RFC3339)
	return &s
}
