package stats

import "errors"

var (
	// ErrStatsRowNotFound indicates no row exists for the (resource,
	// language) pair
	ErrStatsRowNotFound = errors.New("stats row not found")
)
