package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Store reads and writes the persisted high score.
type Store interface {
	Load() (uint32, error)
	Save(high uint32) error
}

// FileStore keeps the high score as a plain-text integer in a single file.
// Safe for concurrent use; SSH sessions share one instance.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// ErrNoRecord is returned by Load when no high score has been saved yet.
var ErrNoRecord = errors.New("no high score recorded")

// fileName is the name of the file inside the application data directory.
const fileName = "highscore"

// NewFileStore returns a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns <user config dir>/<vendor>/<app>/highscore.
func DefaultPath(vendor, app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, vendor, app, fileName), nil
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

// Load parses the stored value. A missing file yields ErrNoRecord.
func (s *FileStore) Load() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) read() (uint32, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNoRecord
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse high score %q: %w", data, err)
	}
	return uint32(v), nil
}

// Save writes high atomically: a failed write leaves the old file intact.
// A larger value already on disk, saved by another game sharing the file,
// is kept.
func (s *FileStore) Save(high uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, err := s.read(); err == nil && cur >= high {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.FormatUint(uint64(high), 10)); err != nil {
		tmp.Close()
		return fmt.Errorf("write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

// LoadHighScore loads the high score, logging and returning 0 on any failure.
func LoadHighScore(store Store, log *zap.Logger) uint32 {
	if store == nil {
		return 0
	}
	v, err := store.Load()
	switch {
	case errors.Is(err, ErrNoRecord):
		log.Debug("no saved high score")
		return 0
	case err != nil:
		log.Warn("load high score", zap.Error(err))
		return 0
	}
	return v
}

// SaveHighScore persists high, logging failures.
func SaveHighScore(store Store, high uint32, log *zap.Logger) {
	if store == nil {
		return
	}
	if err := store.Save(high); err != nil {
		log.Warn("save high score", zap.Uint32("high", high), zap.Error(err))
		return
	}
	log.Debug("high score saved", zap.Uint32("high", high))
}
