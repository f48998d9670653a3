package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/espocity/league/internal/usecase"
)

func (h *Handler) ListStages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStages")
	defer span.End()

	stages, err := h.stageService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list stages failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]stageDTO, 0, len(stages))
	for _, s := range stages {
		items = append(items, stageToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStage")
	defer span.End()

	stageID := strings.TrimSpace(r.PathValue("stageID"))
	found, err := h.stageService.Get(ctx, stageID)
	if err != nil {
		h.logger.WarnContext(ctx, "get stage failed", "stage_id", stageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stageToDTO(found))
}

func (h *Handler) CreateStage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStage")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createStageRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must use the YYYY-MM-DD format", usecase.ErrInvalidInput))
		return
	}

	created, err := h.stageService.Create(ctx, principal, req.Name, date)
	if err != nil {
		h.logger.WarnContext(ctx, "create stage failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, stageToDTO(created))
}

func (h *Handler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateStage")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	stageID := strings.TrimSpace(r.PathValue("stageID"))

	var req updateStageRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: date must use the YYYY-MM-DD format", usecase.ErrInvalidInput))
			return
		}
		date = &parsed
	}

	updated, err := h.stageService.Update(ctx, principal, stageID, req.Name, date)
	if err != nil {
		h.logger.WarnContext(ctx, "update stage failed", "user_id", principal.UserID, "stage_id", stageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stageToDTO(updated))
}

func (h *Handler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStage")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	stageID := strings.TrimSpace(r.PathValue("stageID"))

	if err := h.stageService.Delete(ctx, principal, stageID); err != nil {
		h.logger.WarnContext(ctx, "delete stage failed", "user_id", principal.UserID, "stage_id", stageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ListStageMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStageMatches")
	defer span.End()

	stageID := strings.TrimSpace(r.PathValue("stageID"))
	matches, err := h.stageService.ListMatches(ctx, stageID)
	if err != nil {
		h.logger.WarnContext(ctx, "list stage matches failed", "stage_id", stageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(matches))
}
