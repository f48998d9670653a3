package usecase

import (
	"fmt"
	"time"

	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/user"
)

// seqIDGenerator hands out deterministic IDs for tests.
type seqIDGenerator struct {
	prefix string
	next   int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next), nil
}

var (
	testKickoff = time.Date(2026, 6, 12, 19, 0, 0, 0, time.UTC)

	beforeKickoff = testKickoff.Add(-time.Hour)
	afterKickoff  = testKickoff.Add(time.Minute)
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func testMatch(id string) match.Match {
	return match.Match{
		ID:         id,
		HomeTeamID: "team-home",
		AwayTeamID: "team-away",
		StageID:    "stage-1",
		KickoffAt:  testKickoff,
	}
}

func testUser(id, username string) user.User {
	return user.User{
		ID:       id,
		Username: username,
		IsActive: true,
	}
}

func adminPrincipal() user.Principal {
	return user.Principal{UserID: "admin-1", Username: "admin", Admin: true}
}

func memberPrincipal(userID string) user.Principal {
	return user.Principal{UserID: userID, Username: "member-" + userID}
}
