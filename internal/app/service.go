// Package app owns the live workspace and connects it to document files, the
// bundled examples, and the clipboard. The TUI and the CLI commands drive the
// workspace exclusively through a Service.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/multipaste/internal/clipboard"
	"github.com/colonyops/multipaste/internal/core/clip"
	"github.com/colonyops/multipaste/internal/core/document"
	"github.com/colonyops/multipaste/internal/core/logging"
	"github.com/colonyops/multipaste/internal/core/recent"
	"github.com/colonyops/multipaste/internal/examples"
	"github.com/colonyops/multipaste/internal/store/jsonfile"
)

var (
	// ErrNoPath is returned by Save when the workspace has never been saved
	// or opened from a file.
	ErrNoPath = errors.New("document has no file path")

	// ErrEmptyClipboard is returned by PasteCell when there is nothing to paste.
	ErrEmptyClipboard = errors.New("clipboard is empty")
)

// LoadReport describes the outcome of Open, Import, or ImportExample.
type LoadReport struct {
	Source string
	Author string
	Tabs   int
	Cells  int
	// Dropped counts cells that appeared before any tab.
	Dropped  int
	Warnings []string
	// AddedDefault is set when the loaded document had no tabs and a Default
	// tab was created to keep the workspace non-empty.
	AddedDefault bool
}

// Service is the single owner of the live workspace.
type Service struct {
	ws     *clip.Workspace
	store  *jsonfile.DocumentStore
	clip   clipboard.Clipboard
	author string
	log    zerolog.Logger
	recent recent.Store

	path  string
	dirty bool
	rev   Revision
}

// Revision identifies the workspace state a snapshot was taken from. gen
// changes whenever the workspace is replaced by Open, edits counts mutations
// within one generation.
type Revision struct {
	gen   uint64
	edits uint64
}

// NewService creates a service with a fresh workspace.
func NewService(store *jsonfile.DocumentStore, cb clipboard.Clipboard, author string, log zerolog.Logger) *Service {
	if author == "" {
		author = document.DefaultAuthor
	}
	return &Service{
		ws:     clip.NewWorkspace(),
		store:  store,
		clip:   cb,
		author: author,
		log:    log,
	}
}

// SetRecent makes the service remember every document it reads or writes in
// store.
func (s *Service) SetRecent(store recent.Store) {
	s.recent = store
}

// Recent returns the recently used document paths, most recent first. It is
// empty when no recent store is set.
func (s *Service) Recent(ctx context.Context) ([]string, error) {
	if s.recent == nil {
		return nil, nil
	}
	entries, err := s.recent.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent documents: %w", err)
	}
	return recent.Paths(entries), nil
}

// remember records path in the recent store. Failures are logged only.
func (s *Service) remember(ctx context.Context, path string) {
	if s.recent == nil {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if err := s.recent.Touch(ctx, path, time.Now(), recent.DefaultLimit); err != nil {
		s.log.Warn().Ctx(ctx).Err(err).Msg("record recent document")
	}
}

// Workspace returns the live workspace. Callers must mutate it through the
// Service so the dirty flag stays accurate.
func (s *Service) Workspace() *clip.Workspace { return s.ws }

// Path returns the file the workspace was opened from or last saved to.
func (s *Service) Path() string { return s.path }

// Dirty reports whether the workspace has unsaved changes.
func (s *Service) Dirty() bool { return s.dirty }

// Author returns the author tag written to saved documents.
func (s *Service) Author() string { return s.author }

// Document returns the serialization view of the workspace.
func (s *Service) Document() document.Document {
	return document.Write(s.author, s.ws.Tabs())
}

// Snapshot returns the serialization view together with the current revision
// for a later MarkSaved.
func (s *Service) Snapshot() (document.Document, Revision) {
	return s.Document(), s.rev
}

func (s *Service) touch() {
	s.dirty = true
	s.rev.edits++
}

// replaced starts a new generation after the workspace was swapped for another
// document. Snapshots of the previous workspace no longer mark it saved.
func (s *Service) replaced(path string) {
	s.path = path
	s.dirty = false
	s.rev = Revision{gen: s.rev.gen + 1}
}

// Load reads and decodes the document at path without touching the
// workspace. It is safe to call off the UI goroutine.
func (s *Service) Load(ctx context.Context, path string) (document.Result, error) {
	res, err := s.store.Load(path)
	if err != nil {
		s.log.Error().Ctx(logging.WithDocument(ctx, path)).Err(err).Msg("load document")
		return document.Result{}, err
	}
	s.remember(ctx, path)
	return res, nil
}

// LoadExample decodes a bundled example document.
func (s *Service) LoadExample(ctx context.Context, name string) (document.Result, error) {
	data, err := examples.Open(name)
	if err != nil {
		return document.Result{}, err
	}

	res, err := document.Decode(data)
	if err != nil {
		s.log.Error().Ctx(logging.WithDocument(ctx, exampleSource(name))).Err(err).Msg("decode bundled example")
		return document.Result{}, fmt.Errorf("example %s: %w", name, err)
	}
	return res, nil
}

func exampleSource(name string) string {
	return "example:" + name
}

// Open replaces the workspace with the document at path. On error the
// workspace is left untouched.
func (s *Service) Open(ctx context.Context, path string) (LoadReport, error) {
	res, err := s.Load(ctx, path)
	if err != nil {
		return LoadReport{}, err
	}
	return s.ApplyOpen(ctx, path, res), nil
}

// ApplyOpen replaces the workspace with a loaded document and binds the
// workspace to path.
func (s *Service) ApplyOpen(ctx context.Context, path string, res document.Result) LoadReport {
	applied, addedDefault := s.ws.Replace(res.Events)
	s.replaced(path)

	report := s.report(logging.WithDocument(ctx, path), path, res, applied)
	report.AddedDefault = addedDefault
	return report
}

// OpenOrCreate opens path, or starts an empty workspace bound to path when the
// file does not exist yet.
func (s *Service) OpenOrCreate(ctx context.Context, path string) (LoadReport, error) {
	report, err := s.Open(ctx, path)
	if err == nil {
		return report, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return LoadReport{}, err
	}

	s.log.Debug().Ctx(logging.WithDocument(ctx, path)).Msg("document does not exist, starting empty")
	s.ws = clip.NewWorkspace()
	s.replaced(path)
	return LoadReport{Source: path}, nil
}

// Import appends the tabs of the document at path after the existing tabs.
func (s *Service) Import(ctx context.Context, path string) (LoadReport, error) {
	res, err := s.Load(ctx, path)
	if err != nil {
		return LoadReport{}, err
	}
	return s.ApplyImport(ctx, path, res), nil
}

// ImportExample appends the tabs of a bundled example document.
func (s *Service) ImportExample(ctx context.Context, name string) (LoadReport, error) {
	res, err := s.LoadExample(ctx, name)
	if err != nil {
		return LoadReport{}, err
	}
	return s.ApplyImport(ctx, exampleSource(name), res), nil
}

// ApplyImport appends the tabs of a loaded document. source names the
// document in logs and in the report.
func (s *Service) ApplyImport(ctx context.Context, source string, res document.Result) LoadReport {
	applied := s.ws.Apply(res.Events)
	if applied.Tabs > 0 {
		s.touch()
	}
	return s.report(logging.WithDocument(ctx, source), source, res, applied)
}

func (s *Service) report(ctx context.Context, source string, res document.Result, applied clip.ApplyResult) LoadReport {
	for _, w := range res.Warnings {
		s.log.Warn().Ctx(ctx).Msg(w)
	}
	if applied.Dropped > 0 {
		s.log.Warn().Ctx(ctx).Int("dropped", applied.Dropped).Msg("cells without a tab were skipped")
	}

	s.log.Info().Ctx(ctx).
		Int("tabs", applied.Tabs).
		Int("cells", applied.Cells).
		Msg("document loaded")

	return LoadReport{
		Source:   source,
		Author:   res.Author,
		Tabs:     applied.Tabs,
		Cells:    applied.Cells,
		Dropped:  applied.Dropped,
		Warnings: res.Warnings,
	}
}

// Save writes the workspace to its current path.
func (s *Service) Save(ctx context.Context) error {
	if s.path == "" {
		return ErrNoPath
	}
	return s.SaveAs(ctx, s.path)
}

// SaveAs writes the workspace to path and makes path the current file.
func (s *Service) SaveAs(ctx context.Context, path string) error {
	doc, rev := s.Snapshot()
	if err := s.Write(ctx, path, doc); err != nil {
		return err
	}
	s.MarkSaved(path, rev)
	return nil
}

// Write stores doc at path without touching the workspace. It is safe to call
// off the UI goroutine with a Document snapshot.
func (s *Service) Write(ctx context.Context, path string, doc document.Document) error {
	ctx = logging.WithDocument(ctx, path)

	if err := s.store.Save(path, doc); err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("save document")
		return err
	}

	s.log.Info().Ctx(ctx).Int("tabs", doc.TotalTabs).Msg("document saved")
	s.remember(ctx, path)
	return nil
}

// MarkSaved records a successful write of the snapshot taken at rev to path.
// The workspace stays dirty when it changed after the snapshot. A snapshot of
// a workspace that has since been replaced by Open is ignored, so the current
// document keeps its own path.
func (s *Service) MarkSaved(path string, rev Revision) bool {
	if rev.gen != s.rev.gen {
		s.log.Debug().Str("path", path).Msg("save finished for a replaced workspace")
		return false
	}
	s.path = path
	if rev.edits == s.rev.edits {
		s.dirty = false
	}
	return true
}

// CopyCell puts the text of a cell on the clipboard.
func (s *Service) CopyCell(ctx context.Context, tabIdx, cellIdx int) (clip.Cell, error) {
	t, err := s.ws.Tab(tabIdx)
	if err != nil {
		return clip.Cell{}, err
	}
	c, err := t.Cell(cellIdx)
	if err != nil {
		return clip.Cell{}, err
	}

	if err := s.CopyText(ctx, c.Name, c.Text); err != nil {
		return clip.Cell{}, err
	}
	return c, nil
}

// CopyText puts text on the clipboard. name labels the text in logs and
// errors.
func (s *Service) CopyText(ctx context.Context, name, text string) error {
	if err := s.clip.Copy(ctx, text); err != nil {
		s.log.Error().Ctx(ctx).Err(err).Str("cell", name).Msg("copy to clipboard")
		return fmt.Errorf("copy %q: %w", name, err)
	}

	s.log.Debug().Ctx(ctx).Str("cell", name).Msg("copied cell")
	return nil
}

// PasteText reads the clipboard. An empty clipboard yields ErrEmptyClipboard.
func (s *Service) PasteText(ctx context.Context) (string, error) {
	text, err := s.clip.Paste(ctx)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("paste from clipboard")
		return "", fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return "", ErrEmptyClipboard
	}
	return text, nil
}

// PasteCell appends a new cell holding the clipboard contents to a tab and
// returns its index. An empty name defaults to the first line of the text.
func (s *Service) PasteCell(ctx context.Context, tabIdx int, name string) (int, error) {
	if _, err := s.ws.Tab(tabIdx); err != nil {
		return 0, err
	}

	text, err := s.PasteText(ctx)
	if err != nil {
		return 0, err
	}
	return s.AddCellFromText(tabIdx, name, text)
}

// AddCellFromText appends a cell to a tab and returns its index. An empty
// name defaults to the first line of the text.
func (s *Service) AddCellFromText(tabIdx int, name, text string) (int, error) {
	if strings.TrimSpace(name) == "" {
		name = CellNameFromText(text)
	}
	return s.AddCell(tabIdx, name, text)
}

// CellNameFromText derives a cell name from the first non-blank line of text.
func CellNameFromText(text string) string {
	const maxLen = 32

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r := []rune(line)
		if len(r) > maxLen {
			return string(r[:maxLen-1]) + "…"
		}
		return line
	}
	return "Pasted"
}
