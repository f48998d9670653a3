package stage

import "time"

// Stage is a named, dated round grouping matches. It carries no scoring
// semantics of its own.
type Stage struct {
	ID        string
	Name      string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
