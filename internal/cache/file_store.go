package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/preston-bernstein/nfl-data-service/internal/logging"
)

// FileStore keeps one JSON file per key under dir. The directory is created
// on first write.
type FileStore struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

// NewFileStore constructs a file-backed store rooted at dir.
func NewFileStore(dir string, logger *slog.Logger, opts ...Option) *FileStore {
	o := buildOptions(opts)
	return &FileStore{
		dir:    dir,
		now:    o.now,
		logger: logger,
	}
}

// Dir exposes the store root.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file that holds key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Lookup reads key and judges it against ttl. Read and parse failures are
// logged and reported as StatusUnreadable.
func (s *FileStore) Lookup(ctx context.Context, key string, ttl time.Duration) Lookup {
	raw, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Lookup{Status: StatusMiss}
		}
		result := Lookup{Status: StatusUnreadable, Err: err}
		s.logUnreadable(ctx, key, result)
		return result
	}

	result := decodeEntry(raw, s.now(), ttl)
	if result.Status == StatusUnreadable {
		s.logUnreadable(ctx, key, result)
	}
	return result
}

// Save writes payload under key with the current timestamp. The file is
// replaced atomically via a temp file and rename.
func (s *FileStore) Save(ctx context.Context, key string, payload any) error {
	if err := s.write(key, payload); err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "cache write failed", err,
			slog.String(logging.FieldCacheKey, key),
			slog.String("path", s.Path(key)),
		)
		return err
	}
	return nil
}

func (s *FileStore) write(key string, payload any) error {
	data, err := encodeEntry(s.now(), payload)
	if err != nil {
		return err
	}

	target := s.Path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

func (s *FileStore) logUnreadable(ctx context.Context, key string, result Lookup) {
	logging.Warn(logging.FromContext(ctx, s.logger), "cache entry unreadable",
		slog.String(logging.FieldCacheKey, key),
		slog.String("path", s.Path(key)),
		slog.Any("error", result.Err),
	)
}
