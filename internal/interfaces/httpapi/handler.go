package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/espocity/league/internal/platform/logging"
	"github.com/espocity/league/internal/usecase"
)

type Handler struct {
	accountService   *usecase.AccountService
	teamService      *usecase.TeamService
	stageService     *usecase.StageService
	matchService     *usecase.MatchService
	betService       *usecase.BetService
	standingsService *usecase.StandingsService
	ingestionService *usecase.IngestionService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	accountService *usecase.AccountService,
	teamService *usecase.TeamService,
	stageService *usecase.StageService,
	matchService *usecase.MatchService,
	betService *usecase.BetService,
	standingsService *usecase.StandingsService,
	ingestionService *usecase.IngestionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		accountService:   accountService,
		teamService:      teamService,
		stageService:     stageService,
		matchService:     matchService,
		betService:       betService,
		standingsService: standingsService,
		ingestionService: ingestionService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(body io.Reader, target any) error {
	decoder := jsoniter.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
