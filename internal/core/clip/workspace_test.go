package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkspace_HasDefaultTab(t *testing.T) {
	ws := NewWorkspace()

	require.Equal(t, 1, ws.Len())
	assert.Equal(t, DefaultTabName, ws.Tabs()[0].Name)
	assert.NotEmpty(t, ws.Tabs()[0].ID)
}

func TestWorkspace_NewTab_Numbering(t *testing.T) {
	ws := NewWorkspace()

	assert.Equal(t, "Tab 2", ws.NewTab().Name)
	assert.Equal(t, "Tab 3", ws.NewTab().Name)
	assert.Equal(t, []string{"Default", "Tab 2", "Tab 3"}, ws.TabNames())
}

func TestWorkspace_RemoveTab(t *testing.T) {
	ws := NewWorkspace()
	second := ws.AddTab("second")

	added, err := ws.RemoveTab(0)
	require.NoError(t, err)
	assert.False(t, added)
	require.Equal(t, 1, ws.Len())
	assert.Equal(t, second.ID, ws.Tabs()[0].ID)
}

func TestWorkspace_RemoveLastTab_CreatesDefault(t *testing.T) {
	ws := NewWorkspace()
	ws.Tabs()[0].Name = "only"
	oldID := ws.Tabs()[0].ID

	added, err := ws.RemoveTab(0)
	require.NoError(t, err)
	assert.True(t, added)
	require.Equal(t, 1, ws.Len())
	assert.Equal(t, DefaultTabName, ws.Tabs()[0].Name)
	assert.NotEqual(t, oldID, ws.Tabs()[0].ID)
	assert.Empty(t, ws.Tabs()[0].Cells)
}

func TestWorkspace_RemoveTab_OutOfRange(t *testing.T) {
	ws := NewWorkspace()

	for _, i := range []int{-1, 1, 10} {
		_, err := ws.RemoveTab(i)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
	assert.Equal(t, 1, ws.Len())
}

func TestWorkspace_RenameTab(t *testing.T) {
	ws := NewWorkspace()

	require.NoError(t, ws.RenameTab(0, "work"))
	assert.Equal(t, "work", ws.Tabs()[0].Name)

	ws.AddTab(" padded ")
	require.NoError(t, ws.RenameTab(1, " still padded "))
	assert.Equal(t, []string{"work", " still padded "}, ws.TabNames(), "names are stored verbatim")
	assert.ErrorIs(t, ws.RenameTab(3, "x"), ErrOutOfRange)
}

func TestWorkspace_MoveTab(t *testing.T) {
	ws := NewWorkspace()
	ws.AddTab("b")
	ws.AddTab("c")

	require.NoError(t, ws.MoveTab(0, 2))
	assert.Equal(t, []string{"b", "c", "Default"}, ws.TabNames())

	require.NoError(t, ws.MoveTab(2, 0))
	assert.Equal(t, []string{"Default", "b", "c"}, ws.TabNames())

	assert.ErrorIs(t, ws.MoveTab(0, 3), ErrOutOfRange)
}

func TestWorkspace_FindAndIndex(t *testing.T) {
	ws := NewWorkspace()
	b := ws.AddTab("b")
	ws.AddTab("b")

	assert.Equal(t, 1, ws.FindTab("b"))
	assert.Equal(t, -1, ws.FindTab("missing"))
	assert.Equal(t, 1, ws.IndexOf(b.ID))
	assert.Equal(t, -1, ws.IndexOf("nope"))
}

func TestWorkspace_Apply_AppendsInOrder(t *testing.T) {
	ws := NewWorkspace()

	res := ws.Apply([]Event{
		TabEvent("one"),
		CellEvent("a", "1"),
		CellEvent("b", "2"),
		TabEvent("two"),
		TabEvent("three"),
		CellEvent("c", "3"),
	})

	assert.Equal(t, ApplyResult{Tabs: 3, Cells: 3}, res)
	assert.Equal(t, []string{"Default", "one", "two", "three"}, ws.TabNames())
	assert.Equal(t, []Cell{{Name: "a", Text: "1"}, {Name: "b", Text: "2"}}, ws.Tabs()[1].Cells)
	assert.Empty(t, ws.Tabs()[2].Cells)
	assert.Equal(t, []Cell{{Name: "c", Text: "3"}}, ws.Tabs()[3].Cells)
}

func TestWorkspace_Apply_DropsOrphanCells(t *testing.T) {
	ws := NewWorkspace()

	res := ws.Apply([]Event{CellEvent("orphan", "x"), TabEvent("t")})

	assert.Equal(t, 1, res.Dropped)
	assert.Empty(t, ws.Tabs()[0].Cells, "orphan cells must not attach to pre-existing tabs")
}

func TestWorkspace_Replace(t *testing.T) {
	ws := NewWorkspace()
	ws.AddTab("old")

	res, added := ws.Replace([]Event{TabEvent("new"), CellEvent("c", "t")})
	assert.False(t, added)
	assert.Equal(t, 1, res.Tabs)
	assert.Equal(t, []string{"new"}, ws.TabNames())

	_, added = ws.Replace(nil)
	assert.True(t, added)
	assert.Equal(t, []string{DefaultTabName}, ws.TabNames())
}

func TestZeroWorkspace_Replace(t *testing.T) {
	var ws Workspace
	_, added := ws.Replace(nil)
	assert.True(t, added)
	assert.Equal(t, 1, ws.Len())
}
