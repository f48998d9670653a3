package httpapi

import (
	"time"

	"github.com/espocity/league/internal/domain/bet"
	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/stage"
	"github.com/espocity/league/internal/domain/team"
	"github.com/espocity/league/internal/domain/user"
)

type userDTO struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Phone             string    `json:"phone"`
	IsAdmin           bool      `json:"isAdmin"`
	Score             int       `json:"score"`
	CorrectResults    int       `json:"correctResults"`
	LoneWolfVictories int       `json:"loneWolfVictories"`
	Defeats           int       `json:"defeats"`
	CreatedAt         time.Time `json:"createdAt"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:                u.ID,
		Username:          u.Username,
		Phone:             u.Phone,
		IsAdmin:           u.IsAdmin,
		Score:             u.Score,
		CorrectResults:    u.CorrectResults,
		LoneWolfVictories: u.LoneWolfVictories,
		Defeats:           u.Defeats,
		CreatedAt:         u.CreatedAt,
	}
}

type sessionDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      userDTO   `json:"user"`
}

type teamDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl"`
	StadiumName string `json:"stadiumName"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:          t.ID,
		Name:        t.Name,
		LogoURL:     t.LogoURL,
		StadiumName: t.StadiumName,
	}
}

type stageDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func stageToDTO(s stage.Stage) stageDTO {
	return stageDTO{
		ID:   s.ID,
		Name: s.Name,
		Date: s.Date.Format("2006-01-02"),
	}
}

type matchDTO struct {
	ID         string    `json:"id"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	StageID    string    `json:"stageId,omitempty"`
	KickoffAt  time.Time `json:"kickoffAt"`
	Place      string    `json:"place,omitempty"`
	HomeScore  *int      `json:"homeScore"`
	AwayScore  *int      `json:"awayScore"`
	Finished   bool      `json:"finished"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		StageID:    m.StageID,
		KickoffAt:  m.KickoffAt,
		Place:      m.Place,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Finished:   m.HasResult(),
	}
}

func matchesToDTOs(matches []match.Match) []matchDTO {
	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}
	return items
}

type betDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	MatchID       string    `json:"matchId"`
	PredictedHome int       `json:"predictedHome"`
	PredictedAway int       `json:"predictedAway"`
	PointsAwarded int       `json:"pointsAwarded"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func betToDTO(b bet.Bet) betDTO {
	return betDTO{
		ID:            b.ID,
		UserID:        b.UserID,
		MatchID:       b.MatchID,
		PredictedHome: b.PredictedHome,
		PredictedAway: b.PredictedAway,
		PointsAwarded: b.PointsAwarded,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type leaderboardEntryDTO struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"userId"`
	Username          string `json:"username"`
	Score             int    `json:"score"`
	CorrectResults    int    `json:"correctResults"`
	LoneWolfVictories int    `json:"loneWolfVictories"`
	Defeats           int    `json:"defeats"`
}

type recomputeResultDTO struct {
	Users  int `json:"users"`
	Failed int `json:"failed"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	StadiumName string `json:"stadium_name" validate:"omitempty,max=100"`
}

type createStageRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type updateStageRequest struct {
	Name string `json:"name" validate:"omitempty,max=100"`
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type createMatchRequest struct {
	HomeTeamID string    `json:"home_team_id" validate:"required"`
	AwayTeamID string    `json:"away_team_id" validate:"required"`
	StageID    string    `json:"stage_id" validate:"omitempty"`
	KickoffAt  time.Time `json:"kickoff_at" validate:"required"`
	Place      string    `json:"place" validate:"omitempty,max=100"`
}

type matchResultRequest struct {
	HomeScore *int `json:"home_score" validate:"required,gte=0"`
	AwayScore *int `json:"away_score" validate:"required,gte=0"`
}

type placeBetRequest struct {
	MatchID       string `json:"match_id" validate:"required"`
	PredictedHome *int   `json:"predicted_home" validate:"required,gte=0"`
	PredictedAway *int   `json:"predicted_away" validate:"required,gte=0"`
}

type amendBetRequest struct {
	PredictedHome *int `json:"predicted_home" validate:"required,gte=0"`
	PredictedAway *int `json:"predicted_away" validate:"required,gte=0"`
}
