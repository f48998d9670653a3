package match

import "time"

// Match is one fixture. HomeScore and AwayScore stay nil together until the
// final result is recorded; a settled match has both populated.
type Match struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	StageID    string
	KickoffAt  time.Time
	Place      string
	HomeScore  *int
	AwayScore  *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasResult reports whether the final score has been recorded.
func (m Match) HasResult() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// BettingOpen reports whether predictions may still be created or amended.
// Kickoff is the single cutover instant: at kickoff, betting is closed.
func (m Match) BettingOpen(now time.Time) bool {
	return now.Before(m.KickoffAt)
}
