package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/espocity/league/internal/usecase"
)

func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlaceBet")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req placeBetRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	placed, err := h.betService.Place(ctx, principal, req.MatchID, *req.PredictedHome, *req.PredictedAway)
	if err != nil {
		h.logger.WarnContext(ctx, "place bet failed", "user_id", principal.UserID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, betToDTO(placed))
}

func (h *Handler) GetBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBet")
	defer span.End()

	betID := strings.TrimSpace(r.PathValue("betID"))
	found, err := h.betService.Get(ctx, betID)
	if err != nil {
		h.logger.WarnContext(ctx, "get bet failed", "bet_id", betID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, betToDTO(found))
}

func (h *Handler) AmendBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AmendBet")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	betID := strings.TrimSpace(r.PathValue("betID"))

	var req amendBetRequest
	if err := h.decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	amended, err := h.betService.Amend(ctx, principal, betID, *req.PredictedHome, *req.PredictedAway)
	if err != nil {
		h.logger.WarnContext(ctx, "amend bet failed", "user_id", principal.UserID, "bet_id", betID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, betToDTO(amended))
}

func (h *Handler) ListUserBets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUserBets")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	bets, err := h.betService.ListByUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list user bets failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]betDTO, 0, len(bets))
	for _, b := range bets {
		items = append(items, betToDTO(b))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
