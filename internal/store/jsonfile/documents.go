// Package jsonfile stores clipboard documents as JSON files on disk.
package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/multipaste/internal/core/document"
)

// DefaultPattern matches every JSON document below a library directory.
const DefaultPattern = "**/*.json"

// ErrFileOpen marks a document file that could not be opened, read, or written.
var ErrFileOpen = errors.New("cannot open file")

// FileOpenError reports an I/O failure on a document file.
type FileOpenError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() []error {
	return []error{ErrFileOpen, e.Err}
}

// DocumentStore reads and writes document files.
type DocumentStore struct{}

// NewDocumentStore creates a document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Load reads and decodes the document at path. Open failures are reported as
// *FileOpenError; content errors come from document.Parse and are returned
// unwrapped so callers can tell them apart.
func (s *DocumentStore) Load(path string) (document.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Result{}, &FileOpenError{Op: "read", Path: path, Err: err}
	}

	return document.Decode(data)
}

// Save writes doc to path atomically, creating parent directories as needed.
func (s *DocumentStore) Save(path string, doc document.Document) error {
	data, err := document.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &FileOpenError{Op: "write", Path: path, Err: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &FileOpenError{Op: "write", Path: path, Err: err}
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &FileOpenError{Op: "write", Path: path, Err: err}
	}

	return nil
}

// List returns the documents below dir matching pattern, as paths joined with
// dir, sorted. A missing directory yields no documents.
func (s *DocumentStore) List(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(m)))
	}
	sort.Strings(paths)

	return paths, nil
}
