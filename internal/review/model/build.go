package model

import (
	"errors"
	"time"
)

// Build statuses reported for every BuildSections call.
const (
	BuildSuccess      = "success"
	BuildUnclassified = "unclassified"
	BuildError        = "error"
)

// BuildStatus maps the result of a review build to its status.
func BuildStatus(err error) string {
	switch {
	case err == nil:
		return BuildSuccess
	case errors.Is(err, ErrUnclassified):
		return BuildUnclassified
	default:
		return BuildError
	}
}

// BuildRecord summarises one review build for the audit trail.
type BuildRecord struct {
	Network        NetworkID
	Classification string
	Status         string
	Sections       []string
	Transfers      int
	Guarantees     int
	Duration       time.Duration
	BuiltAt        time.Time
}
