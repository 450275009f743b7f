package company

import "time"

// Policy holds the per-company attendance settings the lateness classifier
// runs against. Immutable for the lifetime of a classification call.
type Policy struct {
	ID            string
	CompanyID     string
	StartWorkTime string // HH:MM:SS
	EndWorkTime   string // HH:MM:SS
	MaxLateTime   time.Duration
}
