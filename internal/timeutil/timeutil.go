package timeutil

import (
	"math"
	"time"
)

// UnixSeconds converts t to fractional seconds since the Unix epoch.
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// FromUnixSeconds converts fractional epoch seconds back to a UTC time.
func FromUnixSeconds(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
}

// Age returns how long ago the given epoch timestamp was, relative to now.
func Age(now time.Time, seconds float64) time.Duration {
	return time.Duration((UnixSeconds(now) - seconds) * float64(time.Second))
}
