package jsonfile

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const (
	debounceDelay   = 50 * time.Millisecond
	muteWindow      = 500 * time.Millisecond
	eventBufferSize = 16
)

// DocumentEvent reports that the watched document changed on disk.
type DocumentEvent struct {
	Path      string
	Timestamp time.Time
}

// DocumentWatcher reports changes to the currently open document made by
// other processes. Writes announced with Mute are not reported.
type DocumentWatcher struct {
	watcher *fsnotify.Watcher
	log     zerolog.Logger
	events  chan DocumentEvent

	mu       sync.Mutex
	dir      string
	path     string
	muted    map[string]time.Time
	debounce *time.Timer
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDocumentWatcher starts a watcher with no document.
func NewDocumentWatcher(log zerolog.Logger) (*DocumentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	dw := &DocumentWatcher{
		watcher: watcher,
		log:     log,
		events:  make(chan DocumentEvent, eventBufferSize),
		muted:   make(map[string]time.Time),
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}

	dw.wg.Add(1)
	go dw.run()

	return dw, nil
}

// Events returns the channel change events are delivered on. It is closed by
// Close.
func (dw *DocumentWatcher) Events() <-chan DocumentEvent {
	return dw.events
}

// Watch switches the watched document to path. The parent directory is
// watched so atomic renames are seen.
func (dw *DocumentWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dir != dw.dir {
		if dw.dir != "" {
			_ = dw.watcher.Remove(dw.dir)
		}
		if err := dw.watcher.Add(dir); err != nil {
			dw.dir, dw.path = "", ""
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dw.dir = dir
	}
	dw.path = abs

	return nil
}

// Mute suppresses events for path for a short window. Call it around writes
// made by this process.
func (dw *DocumentWatcher) Mute(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}

	dw.mu.Lock()
	dw.muted[abs] = dw.now().Add(muteWindow)
	dw.mu.Unlock()
}

// Close stops watching and closes the events channel.
func (dw *DocumentWatcher) Close() error {
	dw.cancel()

	dw.mu.Lock()
	if dw.debounce != nil {
		dw.debounce.Stop()
	}
	dw.mu.Unlock()

	err := dw.watcher.Close()
	dw.wg.Wait()

	dw.mu.Lock()
	close(dw.events)
	dw.mu.Unlock()

	return err
}

// run processes filesystem events from fsnotify.
func (dw *DocumentWatcher) run() {
	defer dw.wg.Done()

	for {
		select {
		case <-dw.ctx.Done():
			return
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			dw.handleEvent(event)
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.log.Warn().Err(err).Msg("document watcher error")
		}
	}
}

// handleEvent debounces writes, creates, and renames of the watched file.
func (dw *DocumentWatcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.path == "" || filepath.Clean(event.Name) != dw.path {
		return
	}

	path := dw.path
	if dw.debounce != nil {
		dw.debounce.Stop()
	}
	dw.debounce = time.AfterFunc(debounceDelay, func() {
		dw.notify(path)
	})
}

// notify delivers an event unless path is muted or no longer watched.
func (dw *DocumentWatcher) notify(path string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	dw.debounce = nil
	if dw.ctx.Err() != nil || path != dw.path {
		return
	}

	now := dw.now()
	if until, ok := dw.muted[path]; ok {
		if now.Before(until) {
			dw.log.Debug().Str("path", path).Msg("ignoring own write")
			return
		}
		delete(dw.muted, path)
	}

	select {
	case dw.events <- DocumentEvent{Path: path, Timestamp: now}:
	default:
		// Channel full, drop event to prevent blocking
	}
}
