package examples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/multipaste/internal/core/document"
)

func TestAllExamplesDecode(t *testing.T) {
	for _, e := range List() {
		t.Run(e.Name, func(t *testing.T) {
			data, err := Open(e.Name)
			require.NoError(t, err)

			res, err := document.Decode(data)
			require.NoError(t, err)
			assert.Empty(t, res.Warnings)
			assert.Positive(t, res.TabCount())
			assert.Equal(t, res.DeclaredTabs, res.TabCount())
		})
	}
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open("cobol")
	assert.ErrorIs(t, err, ErrUnknownExample)
}

func TestList_ReturnsCopy(t *testing.T) {
	list := List()
	list[0].Name = "changed"

	assert.Equal(t, "c", List()[0].Name)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	path, err := Export("python", dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "python.json"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	embedded, err := Open("python")
	require.NoError(t, err)
	assert.Equal(t, embedded, written)

	_, err = Export("python", dir, false)
	assert.Error(t, err, "existing file must not be overwritten")

	_, err = Export("python", dir, true)
	assert.NoError(t, err)
}
