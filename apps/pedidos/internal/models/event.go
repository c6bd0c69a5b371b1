package models

import "time"

// DeadlineEvent is one supplier order cutoff. Events are materialized
// once at catalog load and never mutated afterwards.
type DeadlineEvent struct {
	Provider string
	Brand    string
	Country  string
	Tenant   string
	// Date is the deadline calendar date at midnight UTC. Deadlines are
	// all-day; there is no time-of-day component.
	Date time.Time
}
