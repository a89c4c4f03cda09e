package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/nfl-data-service/internal/timeutil"
)

var errMissingData = errors.New("cache entry has no data")

// Entry is the stored form of a cached payload. Timestamp is fractional
// seconds since the Unix epoch at write time.
type Entry struct {
	Timestamp float64         `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

func encodeEntry(now time.Time, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	raw, err := json.MarshalIndent(Entry{
		Timestamp: timeutil.UnixSeconds(now),
		Data:      data,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode entry: %w", err)
	}
	return raw, nil
}

// decodeEntry parses raw and judges freshness against ttl at now. An entry
// is expired only when its age is strictly greater than ttl.
func decodeEntry(raw []byte, now time.Time, ttl time.Duration) Lookup {
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Lookup{Status: StatusUnreadable, Err: fmt.Errorf("decode entry: %w", err)}
	}
	if len(entry.Data) == 0 {
		return Lookup{Status: StatusUnreadable, Err: errMissingData}
	}

	storedAt := timeutil.FromUnixSeconds(entry.Timestamp)
	age := timeutil.Age(now, entry.Timestamp)
	if age > ttl {
		return Lookup{Status: StatusMiss, Expired: true, StoredAt: storedAt, Age: age}
	}
	return Lookup{Status: StatusHit, Data: entry.Data, StoredAt: storedAt, Age: age}
}
