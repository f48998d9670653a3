// Package memory holds in-process repository implementations backed by one
// shared store. They serve tests and local development without Postgres.
package memory

import (
	"sync"
	"time"

	"github.com/espocity/league/internal/domain/bet"
	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/stage"
	"github.com/espocity/league/internal/domain/team"
	"github.com/espocity/league/internal/domain/user"
)

// Store is the shared backing state for every memory repository. A single
// mutex guards all entity maps so the settlement repository can update
// matches, bets and users as one atomic step.
type Store struct {
	mu      sync.RWMutex
	users   map[string]user.User
	teams   map[string]team.Team
	stages  map[string]stage.Stage
	matches map[string]match.Match
	bets    map[string]bet.Bet
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]user.User),
		teams:   make(map[string]team.Team),
		stages:  make(map[string]stage.Stage),
		matches: make(map[string]match.Match),
		bets:    make(map[string]bet.Bet),
		now:     time.Now,
	}
}
