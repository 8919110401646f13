package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/colonyops/multipaste/internal/core/recent"
)

// RecentFile is the root JSON structure of the recent documents file.
type RecentFile struct {
	Entries []recent.Entry `json:"entries"`
}

// RecentStore implements recent.Store using a JSON file for persistence.
type RecentStore struct {
	path string
	mu   sync.RWMutex
}

// NewRecentStore creates a recent documents store at the given path.
func NewRecentStore(path string) *RecentStore {
	return &RecentStore{path: path}
}

// List returns all entries, most recent first.
func (s *RecentStore) List(ctx context.Context) ([]recent.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}

	return file.Entries, nil
}

// Touch moves path to the front, pruning old entries to stay within limit.
func (s *RecentStore) Touch(ctx context.Context, path string, at time.Time, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	entry := recent.Entry{Path: path, UsedAt: at, Launches: 1}
	kept := make([]recent.Entry, 0, len(file.Entries)+1)
	for _, e := range file.Entries {
		if e.Path == path {
			entry.Launches = e.Launches + 1
			continue
		}
		kept = append(kept, e)
	}

	file.Entries = append([]recent.Entry{entry}, kept...)
	if limit > 0 && len(file.Entries) > limit {
		file.Entries = file.Entries[:limit]
	}

	return s.save(file)
}

// Clear removes all entries.
func (s *RecentStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(RecentFile{Entries: []recent.Entry{}})
}

// load reads the recent file from disk.
// Returns an empty RecentFile if the file doesn't exist.
func (s *RecentStore) load() (RecentFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return RecentFile{}, nil
		}
		return RecentFile{}, err
	}

	if len(data) == 0 {
		return RecentFile{}, nil
	}

	var file RecentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return RecentFile{}, err
	}

	return file, nil
}

// save writes the recent file to disk atomically.
func (s *RecentStore) save(file RecentFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
