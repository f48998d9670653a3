package memory

import (
	"time"

	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/stage"
	"github.com/espocity/league/internal/domain/team"
)

const (
	StageIDGroupRound1 = "stage-group-round-1"
	StageIDGroupRound2 = "stage-group-round-2"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-germany", Name: "Germany", StadiumName: "Allianz Arena"},
		{ID: "team-scotland", Name: "Scotland", StadiumName: "Hampden Park"},
		{ID: "team-hungary", Name: "Hungary", StadiumName: "Puskas Arena"},
		{ID: "team-switzerland", Name: "Switzerland", StadiumName: "St. Jakob-Park"},
		{ID: "team-spain", Name: "Spain", StadiumName: "Santiago Bernabeu"},
		{ID: "team-croatia", Name: "Croatia", StadiumName: "Stadion Maksimir"},
		{ID: "team-italy", Name: "Italy", StadiumName: "Stadio Olimpico"},
		{ID: "team-albania", Name: "Albania", StadiumName: "Arena Kombetare"},
	}
}

func SeedStages() []stage.Stage {
	return []stage.Stage{
		{ID: StageIDGroupRound1, Name: "Group Stage Round 1", Date: time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)},
		{ID: StageIDGroupRound2, Name: "Group Stage Round 2", Date: time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC)},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:         "match-ger-sco",
			HomeTeamID: "team-germany",
			AwayTeamID: "team-scotland",
			StageID:    StageIDGroupRound1,
			KickoffAt:  time.Date(2026, 6, 12, 19, 0, 0, 0, time.UTC),
			Place:      "Munich",
		},
		{
			ID:         "match-hun-sui",
			HomeTeamID: "team-hungary",
			AwayTeamID: "team-switzerland",
			StageID:    StageIDGroupRound1,
			KickoffAt:  time.Date(2026, 6, 13, 13, 0, 0, 0, time.UTC),
			Place:      "Cologne",
		},
		{
			ID:         "match-esp-cro",
			HomeTeamID: "team-spain",
			AwayTeamID: "team-croatia",
			StageID:    StageIDGroupRound1,
			KickoffAt:  time.Date(2026, 6, 13, 16, 0, 0, 0, time.UTC),
			Place:      "Berlin",
		},
		{
			ID:         "match-ita-alb",
			HomeTeamID: "team-italy",
			AwayTeamID: "team-albania",
			StageID:    StageIDGroupRound1,
			KickoffAt:  time.Date(2026, 6, 13, 19, 0, 0, 0, time.UTC),
			Place:      "Dortmund",
		},
		{
			ID:         "match-ger-hun",
			HomeTeamID: "team-germany",
			AwayTeamID: "team-hungary",
			StageID:    StageIDGroupRound2,
			KickoffAt:  time.Date(2026, 6, 17, 16, 0, 0, 0, time.UTC),
			Place:      "Stuttgart",
		},
		{
			ID:         "match-sco-sui",
			HomeTeamID: "team-scotland",
			AwayTeamID: "team-switzerland",
			StageID:    StageIDGroupRound2,
			KickoffAt:  time.Date(2026, 6, 17, 19, 0, 0, 0, time.UTC),
			Place:      "Cologne",
		},
	}
}

// Seed loads the static fixtures into the store. Existing entries with the
// same IDs are overwritten.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range SeedTeams() {
		s.teams[item.ID] = item
	}
	for _, item := range SeedStages() {
		s.stages[item.ID] = item
	}
	for _, item := range SeedMatches() {
		s.matches[item.ID] = item
	}
}
