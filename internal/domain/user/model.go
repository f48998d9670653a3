package user

import "time"

// User is a registered bettor. Score is the running total of points awarded
// across the user's settled bets; the tie-break counters are overwritten in
// full by the stats recomputation, never adjusted incrementally.
type User struct {
	ID                string
	Username          string
	Phone             string
	PasswordHash      string
	IsActive          bool
	IsAdmin           bool
	Score             int
	CorrectResults    int
	LoneWolfVictories int
	Defeats           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TieBreakStats is the full set of secondary ranking counters for one user.
type TieBreakStats struct {
	CorrectResults    int
	LoneWolfVictories int
	Defeats           int
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID   string
	Username string
	Admin    bool
}
