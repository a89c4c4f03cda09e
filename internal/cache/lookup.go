package cache

import (
	"encoding/json"
	"time"
)

// Status classifies the result of a cache lookup.
type Status int

const (
	// StatusMiss means no usable entry: absent, or present but expired.
	StatusMiss Status = iota
	// StatusHit means a fresh entry was found.
	StatusHit
	// StatusUnreadable means the entry could not be read or parsed. Callers
	// treat it as a miss; Err carries the cause for logging.
	StatusUnreadable
)

func (s Status) String() string {
	switch s {
	case StatusHit:
		return "hit"
	case StatusUnreadable:
		return "unreadable"
	default:
		return "miss"
	}
}

// Lookup is the outcome of reading one cache key.
type Lookup struct {
	Status   Status
	Expired  bool
	Data     json.RawMessage
	StoredAt time.Time
	// Age is measured against the store's clock at lookup time.
	Age      time.Duration
	Err      error
}

// Hit reports whether the lookup produced a fresh payload.
func (l Lookup) Hit() bool {
	return l.Status == StatusHit
}

// Outcome labels the lookup for logs and metrics: hit, miss, expired or unreadable.
func (l Lookup) Outcome() string {
	if l.Status == StatusMiss && l.Expired {
		return "expired"
	}
	return l.Status.String()
}
