package jsonfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/multipaste/internal/core/clip"
	"github.com/colonyops/multipaste/internal/core/document"
)

func TestDocumentStore_SaveLoad(t *testing.T) {
	store := NewDocumentStore()
	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.json")

	ws := clip.NewWorkspace()
	ws.Tabs()[0].AddCell("greeting", "hello")
	ws.AddTab("other")

	require.NoError(t, store.Save(path, document.Write("me", ws.Tabs())))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	res, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "me", res.Author)
	assert.Equal(t, []clip.Event{
		clip.TabEvent("Default"),
		clip.CellEvent("greeting", "hello"),
		clip.TabEvent("other"),
	}, res.Events)
}

func TestDocumentStore_Save_Overwrites(t *testing.T) {
	store := NewDocumentStore()
	path := filepath.Join(t.TempDir(), "doc.json")

	require.NoError(t, store.Save(path, document.Write("a", []*clip.Tab{clip.NewTab("one")})))
	require.NoError(t, store.Save(path, document.Write("b", nil)))

	res, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "b", res.Author)
	assert.Empty(t, res.Events)
}

func TestDocumentStore_Load_Errors(t *testing.T) {
	store := NewDocumentStore()
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Load(filepath.Join(dir, "missing.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFileOpen)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.False(t, errors.Is(err, document.ErrJSONSyntax))

		var foe *FileOpenError
		require.ErrorAs(t, err, &foe)
		assert.Equal(t, "read", foe.Op)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := store.Load(dir)
		assert.ErrorIs(t, err, ErrFileOpen)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		res, err := store.Load(path)
		assert.ErrorIs(t, err, document.ErrJSONSyntax)
		assert.False(t, errors.Is(err, ErrFileOpen))
		assert.Empty(t, res.Events)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := store.Load(path)
		assert.ErrorIs(t, err, document.ErrJSONSyntax)
	})

	t.Run("not an object", func(t *testing.T) {
		path := filepath.Join(dir, "array.json")
		require.NoError(t, os.WriteFile(path, []byte(`[1,2]`), 0o644))

		_, err := store.Load(path)
		assert.ErrorIs(t, err, document.ErrMalformedDocument)
	})
}

func TestDocumentStore_Save_Unwritable(t *testing.T) {
	store := NewDocumentStore()
	dir := t.TempDir()

	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := store.Save(filepath.Join(blocker, "doc.json"), document.Write("me", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileOpen)
}

func TestDocumentStore_List(t *testing.T) {
	store := NewDocumentStore()
	dir := t.TempDir()

	for _, name := range []string{"b.json", "a.json", "sub/c.json", "notes.txt"} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}

	paths, err := store.List(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "sub", "c.json"),
	}, paths)

	paths, err = store.List(dir, "*.json")
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	paths, err = store.List(filepath.Join(dir, "missing"), "")
	require.NoError(t, err)
	assert.Empty(t, paths)

	_, err = store.List(dir, "[")
	assert.Error(t, err)
}
