package team

import "time"

// Team is a static reference entity seeded before the season starts.
type Team struct {
	ID          string
	Name        string
	LogoURL     string
	StadiumName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
