package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedCatalogRoutes(mux, handler, verifier)
	registerAuthorizedBettingRoutes(mux, handler, verifier)
	registerInternalRoutes(mux, handler, verifier)
}

// Admin-only operations rely on the usecase layer rejecting non-admin
// principals, so their routes only require a valid bearer token here.
func registerAuthorizedCatalogRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /v1/stages", RequireAuth(verifier, http.HandlerFunc(handler.ListStages)))
	mux.Handle("POST /v1/stages", RequireAuth(verifier, http.HandlerFunc(handler.CreateStage)))
	mux.Handle("GET /v1/stages/{stageID}", RequireAuth(verifier, http.HandlerFunc(handler.GetStage)))
	mux.Handle("PUT /v1/stages/{stageID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateStage)))
	mux.Handle("DELETE /v1/stages/{stageID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteStage)))
	mux.Handle("GET /v1/stages/{stageID}/matches", RequireAuth(verifier, http.HandlerFunc(handler.ListStageMatches)))
	mux.Handle("GET /v1/matches", RequireAuth(verifier, http.HandlerFunc(handler.ListMatches)))
	mux.Handle("POST /v1/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("GET /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.GetMatch)))
	mux.Handle("POST /v1/matches/{matchID}/result", RequireAuth(verifier, http.HandlerFunc(handler.RecordMatchResult)))
}

func registerAuthorizedBettingRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/bets", RequireAuth(verifier, http.HandlerFunc(handler.PlaceBet)))
	mux.Handle("GET /v1/bets/{betID}", RequireAuth(verifier, http.HandlerFunc(handler.GetBet)))
	mux.Handle("PATCH /v1/bets/{betID}", RequireAuth(verifier, http.HandlerFunc(handler.AmendBet)))
	mux.Handle("GET /v1/users/{userID}/bets", RequireAuth(verifier, http.HandlerFunc(handler.ListUserBets)))
	mux.Handle("GET /v1/leaderboard", RequireAuth(verifier, http.HandlerFunc(handler.GetLeaderboard)))
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/internal/stats/recompute", RequireAuth(verifier, http.HandlerFunc(handler.RecomputeStats)))
	mux.Handle("POST /v1/internal/sync/fixtures", RequireAuth(verifier, http.HandlerFunc(handler.SyncFixtures)))
}
