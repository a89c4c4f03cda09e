package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteCacheFile stores data under dir/key.json using the on-disk cache entry
// shape, stamped with timestamp (seconds since the epoch).
func WriteCacheFile(t *testing.T, dir, key string, timestamp float64, data any) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"timestamp": timestamp, "data": data})
	if err != nil {
		t.Fatalf("encode cache entry: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create cache dir: %v", err)
	}
	path := filepath.Join(dir, key+".json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write cache file %s: %v", path, err)
	}
	return path
}
