package repository

import "time"

// Value is one persisted setting, stored as JSON text.
type Value struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Run records one finished dialog.
type Run struct {
	ID         string
	Dialog     string
	Result     string
	StartedAt  time.Time
	FinishedAt time.Time
}
