package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/multipaste/internal/store/jsonfile"
	"github.com/colonyops/multipaste/pkg/tuitest"
)

type fakeWatcher struct {
	watched []string
	muted   []string
	events  chan jsonfile.DocumentEvent
}

// newFakeWatcher returns a watcher whose event channel is already closed, so
// pending waits resolve immediately.
func newFakeWatcher() *fakeWatcher {
	events := make(chan jsonfile.DocumentEvent)
	close(events)
	return &fakeWatcher{events: events}
}

func (f *fakeWatcher) Watch(path string) error {
	f.watched = append(f.watched, path)
	return nil
}

func (f *fakeWatcher) Mute(path string) { f.muted = append(f.muted, path) }

func (f *fakeWatcher) Events() <-chan jsonfile.DocumentEvent { return f.events }

// collect runs cmd and any batched commands, returning the messages they
// produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findLoaded(msgs []tea.Msg) (documentLoadedMsg, bool) {
	for _, msg := range msgs {
		if loaded, ok := msg.(documentLoadedMsg); ok {
			return loaded, true
		}
	}
	return documentLoadedMsg{}, false
}

const watchedDoc = `{"Data": [{"Tab Name": "Work", "Tab Data": [{"Cell Name": "a", "Text Data": "b"}]}]}`

func TestModel_DocumentChangedReloadsCleanWorkspace(t *testing.T) {
	watcher := newFakeWatcher()
	m, svc, _ := newTestModel(t, Options{Watcher: watcher})

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(watchedDoc), 0o644))

	m, _ = send(m, m.loadCmd(loadOpen, path)())
	assert.Equal(t, []string{path}, watcher.watched)

	updated := `{"Data": [{"Tab Name": "Work", "Tab Data": []}, {"Tab Name": "New", "Tab Data": []}]}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	m, cmd := send(m, documentChangedMsg{path: path})
	loaded, ok := findLoaded(collect(cmd))
	require.True(t, ok, "a reload is started")
	assert.Equal(t, loadReload, loaded.mode)

	m, _ = send(m, loaded)
	assert.Equal(t, []string{"Work", "New"}, svc.Workspace().TabNames())
	assert.False(t, svc.Dirty())
	assert.Contains(t, lastToast(t, m).Message, "Reloaded doc.json")
}

func TestModel_DocumentChangedKeepsDirtyWorkspace(t *testing.T) {
	watcher := newFakeWatcher()
	m, svc, _ := newTestModel(t, Options{Watcher: watcher})

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(watchedDoc), 0o644))
	m, _ = send(m, m.loadCmd(loadOpen, path)())
	svc.AddTab("Unsaved")

	m, cmd := send(m, documentChangedMsg{path: path})
	_, ok := findLoaded(collect(cmd))
	assert.False(t, ok)

	assert.Contains(t, lastToast(t, m).Message, "changed on disk")
	assert.Equal(t, []string{"Work", "Unsaved"}, svc.Workspace().TabNames())
}

func TestModel_DocumentChangedIgnoresOtherFiles(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Watcher: newFakeWatcher()})

	_, cmd := send(m, documentChangedMsg{path: "/elsewhere/doc.json"})
	_, ok := findLoaded(collect(cmd))
	assert.False(t, ok)
}

func TestModel_SaveMutesWatcher(t *testing.T) {
	watcher := newFakeWatcher()
	m, svc, _ := newTestModel(t, Options{Watcher: watcher})
	svc.AddTab("Work")

	path := filepath.Join(t.TempDir(), "out.json")
	msg := m.saveCmd(path)()
	assert.Equal(t, []string{path, path}, watcher.muted)

	_, _ = send(m, msg)
	assert.Equal(t, []string{path}, watcher.watched)
	assert.False(t, svc.Dirty())
}

func TestModel_SaveFinishingAfterOpenKeepsOpenedDocument(t *testing.T) {
	watcher := newFakeWatcher()
	m, svc, _ := newTestModel(t, Options{Watcher: watcher})
	svc.AddTab("Draft")

	old := filepath.Join(t.TempDir(), "old.json")
	saveCmd := m.saveCmd(old)

	opened := filepath.Join(t.TempDir(), "opened.json")
	require.NoError(t, os.WriteFile(opened, []byte(watchedDoc), 0o644))
	m, _ = send(m, m.loadCmd(loadOpen, opened)())

	_, _ = send(m, saveCmd())
	assert.Equal(t, opened, svc.Path())
	assert.Equal(t, []string{opened}, watcher.watched)
	assert.Equal(t, []string{"Work"}, svc.Workspace().TabNames())
}

func TestModel_OpenFromRecent(t *testing.T) {
	m, svc, _ := newTestModel(t, Options{})

	dir := t.TempDir()
	store := jsonfile.NewRecentStore(filepath.Join(dir, "recent.json"))
	svc.SetRecent(store)

	path := filepath.Join(dir, "snippets.json")
	require.NoError(t, os.WriteFile(path, []byte(watchedDoc), 0o644))
	require.NoError(t, store.Touch(t.Context(), path, time.Now(), 0))

	m, cmd := send(m, tuitest.KeyPress('o'))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())
	require.Equal(t, stateFormInput, m.state)
	assert.Contains(t, tuitest.StripANSI(m.render()), "snippets.json")

	// Enter moves from the recent list to the path input, then submits.
	m, _ = send(m, tuitest.KeyEnter())
	m, cmd = send(m, tuitest.KeyEnter())
	require.NotNil(t, cmd)
	assert.Equal(t, stateNormal, m.state)

	_, _ = send(m, cmd())
	assert.Equal(t, path, svc.Path())
	assert.Equal(t, []string{"Work"}, svc.Workspace().TabNames())
}

func TestModel_OpenWithoutRecentAsksForPath(t *testing.T) {
	m, svc, _ := newTestModel(t, Options{})

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(watchedDoc), 0o644))

	m, cmd := send(m, tuitest.KeyPress('o'))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())
	require.Equal(t, stateFormInput, m.state)

	m, _ = send(m, tuitest.Type(path)...)
	m, cmd = send(m, tuitest.KeyEnter())
	require.NotNil(t, cmd)

	_, _ = send(m, cmd())
	assert.Equal(t, path, svc.Path())
}
