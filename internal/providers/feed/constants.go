package feed

import "time"

const (
	defaultHTTPTimeout = 15 * time.Second
	defaultMaxPages    = 50
	// Consecutive failed fetches before the breaker opens.
	defaultTripAfter   = 3
	defaultOpenTimeout = 60 * time.Second

	injuriesPath     = "/injuries"
	maddenPath       = "/madden/ratings"
	pffPath          = "/pff/ratings"
	lineRankingsPath = "/pff/ol-rankings"
)
