package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	otelsql "github.com/uptrace/opentelemetry-go-extra/otelsql"
	otelsqlx "github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/espocity/league/external/fixturefeed"
	"github.com/espocity/league/internal/config"
	"github.com/espocity/league/internal/domain/bet"
	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/scoring"
	"github.com/espocity/league/internal/domain/stage"
	"github.com/espocity/league/internal/domain/team"
	"github.com/espocity/league/internal/domain/user"
	"github.com/espocity/league/internal/infrastructure/auth"
	"github.com/espocity/league/internal/infrastructure/repository/memory"
	"github.com/espocity/league/internal/infrastructure/repository/postgres"
	"github.com/espocity/league/internal/interfaces/httpapi"
	"github.com/espocity/league/internal/platform/cache"
	idgen "github.com/espocity/league/internal/platform/id"
	"github.com/espocity/league/internal/platform/logging"
	"github.com/espocity/league/internal/platform/resilience"
	"github.com/espocity/league/internal/usecase"
)

type repositories struct {
	users      user.Repository
	teams      team.Repository
	stages     stage.Repository
	matches    match.Repository
	bets       bet.Repository
	settlement scoring.SettlementRepository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build repositories: %w", err)
	}

	tokens, err := auth.NewTokenManager(cfg.AuthTokenSecret, cfg.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("build token manager: %w", err)
	}
	hasher := auth.NewBcryptHasher(0)

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	ids := idgen.NewRandomGenerator()

	accountSvc := usecase.NewAccountService(repos.users, ids, hasher, tokens)
	teamSvc := usecase.NewTeamService(repos.teams, ids)
	stageSvc := usecase.NewStageService(repos.stages, repos.matches, ids)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.stages, repos.settlement, ids, cacheStore, logger)
	betSvc := usecase.NewBetService(repos.bets, repos.matches, ids)
	standingsSvc := usecase.NewStandingsService(repos.users, repos.bets, cacheStore, logger)
	ingestionSvc := usecase.NewIngestionService(buildFixtureSource(cfg, logger), repos.teams, repos.stages, repos.matches, ids, logger)

	handler := httpapi.NewHandler(accountSvc, teamSvc, stageSvc, matchSvc, betSvc, standingsSvc, ingestionSvc, logger)
	router := httpapi.NewRouter(handler, tokens, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// An empty DB_URL selects the seeded in-memory store, which keeps local
// development and CI runs free of external dependencies.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		store := memory.NewStore()
		store.Seed()
		logger.Info("using in-memory repositories", "seeded", true)

		return repositories{
			users:      memory.NewUserRepository(store),
			teams:      memory.NewTeamRepository(store),
			stages:     memory.NewStageRepository(store),
			matches:    memory.NewMatchRepository(store),
			bets:       memory.NewBetRepository(store),
			settlement: memory.NewSettlementRepository(store),
		}, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect postgres: %w", err)
	}
	logger.Info("using postgres repositories", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		users:      postgres.NewUserRepository(db),
		teams:      postgres.NewTeamRepository(db),
		stages:     postgres.NewStageRepository(db),
		matches:    postgres.NewMatchRepository(db),
		bets:       postgres.NewBetRepository(db),
		settlement: postgres.NewSettlementRepository(db),
	}, nil
}

func buildFixtureSource(cfg config.Config, logger *logging.Logger) usecase.FixtureSource {
	if !cfg.FeedEnabled {
		return disabledFixtureSource{}
	}

	return fixturefeed.NewClient(fixturefeed.ClientConfig{
		BaseURL:    cfg.FeedBaseURL,
		Token:      cfg.FeedToken,
		Timeout:    cfg.FeedTimeout,
		MaxRetries: cfg.FeedMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FeedCircuitEnabled,
			FailureThreshold: cfg.FeedCircuitFailureCount,
			OpenTimeout:      cfg.FeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
		},
	})
}

type disabledFixtureSource struct{}

func (disabledFixtureSource) Fixtures(context.Context) ([]fixturefeed.Fixture, error) {
	return nil, errors.New("fixture feed is not configured")
}
