package httpapi

import (
	"fmt"
	"net/http"

	"github.com/espocity/league/internal/usecase"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	ranked, err := h.standingsService.Leaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardEntryDTO, 0, len(ranked))
	for i, u := range ranked {
		items = append(items, leaderboardEntryDTO{
			Rank:              i + 1,
			UserID:            u.ID,
			Username:          u.Username,
			Score:             u.Score,
			CorrectResults:    u.CorrectResults,
			LoneWolfVictories: u.LoneWolfVictories,
			Defeats:           u.Defeats,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecomputeStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeStats")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	result, err := h.standingsService.RecomputeAll(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "recompute stats failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recomputeResultDTO{
		Users:  result.Users,
		Failed: result.Failed,
	})
}

func (h *Handler) SyncFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncFixtures")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	report, err := h.ingestionService.Import(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "sync fixtures failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
