package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/multipaste/internal/core/config"
	"github.com/colonyops/multipaste/internal/core/document"
	"github.com/colonyops/multipaste/internal/printer"
	"github.com/colonyops/multipaste/internal/store/jsonfile"
	"github.com/colonyops/multipaste/pkg/tuitest"
)

const sampleDoc = `{
  "Author Name": "someone",
  "Total Tabs": 2,
  "Data": [
    {"Tab Name": "Work", "Total Cells": 2, "Tab Data": [
      {"Text Data": "hello world", "Cell Name": "Greeting"},
      {"Text Data": "see you", "Cell Name": "Farewell"}
    ]},
    {"Tab Name": "Shell", "Total Cells": 1, "Tab Data": [
      {"Text Data": "ls -la", "Cell Name": "List"}
    ]}
  ]
}`

type harness struct {
	flags  *Flags
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dataDir := t.TempDir()
	cfg, err := config.Load("", dataDir)
	require.NoError(t, err)

	return &harness{flags: &Flags{DataDir: dataDir, Config: cfg}}
}

// run executes args against an app with the given registrations.
func (h *harness) run(t *testing.T, register func(*cli.Command) *cli.Command, args ...string) error {
	t.Helper()
	h.stdout.Reset()
	h.stderr.Reset()

	app := register(&cli.Command{
		Name:      "multipaste",
		Writer:    &h.stdout,
		ErrWriter: &h.stderr,
	})

	ctx := printer.NewContext(context.Background(), printer.New(&h.stderr))
	return app.Run(ctx, append([]string{"multipaste"}, args...))
}

func (h *harness) writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	dir := h.flags.Config.LibraryDir
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadDoc(t *testing.T, path string) document.Result {
	t.Helper()
	res, err := jsonfile.NewDocumentStore().Load(path)
	require.NoError(t, err)
	return res
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Greeting", "Farewell", "List"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single typo", in: "Greting", want: "Greeting"},
		{name: "case insensitive", in: "farewell", want: "Farewell"},
		{name: "short name", in: "Lst", want: "List"},
		{name: "nothing close", in: "Completely different", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggest(tt.in, candidates))
		})
	}
}

func TestShowCmd(t *testing.T) {
	h := newHarness(t)
	h.writeDoc(t, "snippets.json", sampleDoc)
	show := NewShowCmd(h.flags)

	require.NoError(t, h.run(t, show.Register, "show", "snippets"))

	out := tuitest.StripANSI(h.stdout.String())
	assert.Contains(t, out, "Work (2 cells)")
	assert.Contains(t, out, "  Greeting\n    hello world\n")
	assert.Contains(t, out, "Shell (1 cells)")
}

func TestShowCmd_JSONSingleTab(t *testing.T) {
	h := newHarness(t)
	h.writeDoc(t, "snippets.json", sampleDoc)
	show := NewShowCmd(h.flags)

	require.NoError(t, h.run(t, show.Register, "show", "--json", "--tab", "Shell", "snippets"))

	res, err := document.Decode(h.stdout.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "someone", res.Author)
	assert.Equal(t, 1, res.TabCount())
	assert.Equal(t, 1, res.CellCount())
}

func TestShowCmd_UnknownTabSuggests(t *testing.T) {
	h := newHarness(t)
	h.writeDoc(t, "snippets.json", sampleDoc)
	show := NewShowCmd(h.flags)

	err := h.run(t, show.Register, "show", "--tab", "Shel", "snippets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "Shell"?`)
}

func TestShowCmd_SyntaxError(t *testing.T) {
	h := newHarness(t)
	h.writeDoc(t, "broken.json", `{"Data": [`)
	show := NewShowCmd(h.flags)

	err := h.run(t, show.Register, "show", "broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, document.ErrJSONSyntax)
}

func TestGetCmd_Print(t *testing.T) {
	h := newHarness(t)
	h.writeDoc(t, "snippets.json", sampleDoc)
	get := NewGetCmd(h.flags)

	require.NoError(t, h.run(t, get.Register, "get", "--print", "snippets", "Shell", "List"))
	assert.Equal(t, "ls -la\n", h.stdout.String())
}

func TestGetCmd_CopiesWithCommand(t *testing.T) {
	h := newHarness(t)
	h.writeDoc(t, "snippets.json", sampleDoc)
	sink := filepath.Join(t.TempDir(), "clipboard.txt")
	h.flags.Config.Clipboard.CopyCommand = "cat > " + sink
	get := NewGetCmd(h.flags)

	require.NoError(t, h.run(t, get.Register, "get", "snippets", "Work", "Farewell"))

	got, err := os.ReadFile(sink)
	require.NoError(t, err)
	assert.Equal(t, "see you", string(got))
	assert.Contains(t, h.stderr.String(), `Copied "Farewell"`)
}

func TestGetCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing args", args: []string{"snippets", "Work"}, wantErr: "expected <file> <tab> <cell>"},
		{name: "unknown tab", args: []string{"snippets", "Wrok", "Greeting"}, wantErr: `tab "Wrok" not found, did you mean "Work"?`},
		{name: "unknown cell", args: []string{"snippets", "Work", "Greetings"}, wantErr: `cell "Greetings" not found, did you mean "Greeting"?`},
		{name: "no suggestion", args: []string{"snippets", "Work", "zzzzzzzzzzzz"}, wantErr: `cell "zzzzzzzzzzzz" not found`},
		{name: "missing file", args: []string{"nope", "Work", "Greeting"}, wantErr: "open "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.writeDoc(t, "snippets.json", sampleDoc)
			get := NewGetCmd(h.flags)

			err := h.run(t, get.Register, append([]string{"get", "--print"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAddCmd_CreatesDocument(t *testing.T) {
	h := newHarness(t)
	add := NewAddCmd(h.flags)
	add.isTerminal = func() bool { return false }

	require.NoError(t, h.run(t, add.Register, "add", "--tab", "Work", "--name", "Greeting", "--text", "hi", "fresh"))

	path := filepath.Join(h.flags.Config.LibraryDir, "fresh.json")
	res := loadDoc(t, path)
	assert.Equal(t, 1, res.TabCount())
	assert.Equal(t, 1, res.CellCount())

	require.NoError(t, h.run(t, add.Register, "add", "--tab", "Other", "--name", "Second", "--text", "x", "fresh"))
	res = loadDoc(t, path)
	assert.Equal(t, 2, res.TabCount())
	assert.Equal(t, 2, res.CellCount())
}

func TestAddCmd_ReadsStdin(t *testing.T) {
	h := newHarness(t)
	path := h.writeDoc(t, "snippets.json", sampleDoc)

	add := NewAddCmd(h.flags)
	add.isTerminal = func() bool { return false }
	add.stdin = strings.NewReader("git status\ngit diff\n")

	require.NoError(t, h.run(t, add.Register, "add", "--tab", "Shell", "snippets"))

	show := NewShowCmd(h.flags)
	require.NoError(t, h.run(t, show.Register, "show", "--json", "--tab", "Shell", path))

	res, err := document.Decode(h.stdout.Bytes())
	require.NoError(t, err)
	require.Equal(t, 2, res.CellCount())

	last := res.Events[len(res.Events)-1]
	assert.Equal(t, "git status", last.CellName)
	assert.Equal(t, "git status\ngit diff", last.CellText)
}

func TestAddCmd_Paste(t *testing.T) {
	h := newHarness(t)
	h.writeDoc(t, "snippets.json", sampleDoc)
	h.flags.Config.Clipboard.CopyCommand = "cat > /dev/null"
	h.flags.Config.Clipboard.PasteCommand = "printf 'docker ps\\n-a'"
	add := NewAddCmd(h.flags)
	add.isTerminal = func() bool { return true }

	require.NoError(t, h.run(t, add.Register, "add", "--paste", "--tab", " Shell ", "snippets"))
	assert.Contains(t, h.stderr.String(), `Added "docker ps" to Shell`)

	res := loadDoc(t, filepath.Join(h.flags.Config.LibraryDir, "snippets.json"))
	assert.Equal(t, 2, res.TabCount())
	last := res.Events[len(res.Events)-1]
	assert.Equal(t, "docker ps", last.CellName)
	assert.Equal(t, "docker ps\n-a", last.CellText)
}

func TestAddCmd_PasteEmptyClipboard(t *testing.T) {
	h := newHarness(t)
	h.flags.Config.Clipboard.CopyCommand = "cat > /dev/null"
	h.flags.Config.Clipboard.PasteCommand = "true"
	add := NewAddCmd(h.flags)

	err := h.run(t, add.Register, "add", "--paste", "fresh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clipboard is empty")
}

func TestAddCmd_EmptyText(t *testing.T) {
	h := newHarness(t)
	add := NewAddCmd(h.flags)
	add.isTerminal = func() bool { return false }
	add.stdin = strings.NewReader("")

	err := h.run(t, add.Register, "add", "--name", "Empty", "fresh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cell text is empty")
}

func TestAddCmd_Batch(t *testing.T) {
	h := newHarness(t)
	add := NewAddCmd(h.flags)
	add.isTerminal = func() bool { return false }
	add.stdin = strings.NewReader(`{"cells": [
		{"tab": "Work", "name": "One", "text": "1"},
		{"tab": "Work", "text": "second cell"},
		{"tab": "Home", "name": "Three", "text": "3"}
	]}`)

	require.NoError(t, h.run(t, add.Register, "add", "--batch", "batch"))
	assert.Contains(t, h.stdout.String(), `"added": 3`)

	res := loadDoc(t, filepath.Join(h.flags.Config.LibraryDir, "batch.json"))
	assert.Equal(t, 2, res.TabCount())
	assert.Equal(t, 3, res.CellCount())
}

func TestAddCmd_BatchInvalidJSON(t *testing.T) {
	h := newHarness(t)
	add := NewAddCmd(h.flags)
	add.isTerminal = func() bool { return false }
	add.stdin = strings.NewReader(`{"cells": [`)

	err := h.run(t, add.Register, "add", "--batch", "batch")
	require.Error(t, err)
	assert.Contains(t, h.stderr.String(), `"message": "invalid batch input"`)
}

func TestLsCmd(t *testing.T) {
	h := newHarness(t)
	h.writeDoc(t, "snippets.json", sampleDoc)
	h.writeDoc(t, "broken.json", `[1]`)
	ls := NewLsCmd(h.flags)

	require.NoError(t, h.run(t, ls.Register, "ls"))

	out := h.stdout.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "snippets.json")
	assert.Contains(t, out, "not a multipaste document")
}

func TestLsCmd_Empty(t *testing.T) {
	h := newHarness(t)
	ls := NewLsCmd(h.flags)

	require.NoError(t, h.run(t, ls.Register, "ls"))
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.stderr.String(), "No documents found")
}

func TestExamplesCmd(t *testing.T) {
	h := newHarness(t)
	ex := NewExamplesCmd(h.flags)

	require.NoError(t, h.run(t, ex.Register, "examples", "ls"))
	assert.Contains(t, h.stdout.String(), "python")

	dir := t.TempDir()
	require.NoError(t, h.run(t, ex.Register, "examples", "export", "python", dir))
	res := loadDoc(t, filepath.Join(dir, "python.json"))
	assert.Positive(t, res.TabCount())

	err := h.run(t, ex.Register, "examples", "export", "python", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, h.run(t, ex.Register, "examples", "export", "--force", "python", dir))

	err = h.run(t, ex.Register, "examples", "export", "pyton", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "python"?`)
}

func TestConfigValidateCmd_Valid(t *testing.T) {
	h := newHarness(t)
	cv := NewConfigValidateCmd(h.flags)

	require.NoError(t, h.run(t, cv.Register, "config", "validate"))
	assert.Contains(t, h.stderr.String(), "Configuration is valid")

	require.NoError(t, h.run(t, cv.Register, "config", "validate", "--format", "json"))
	assert.Contains(t, h.stdout.String(), `"valid": true`)
}

func TestLsCmd_Recent(t *testing.T) {
	h := newHarness(t)
	path := h.writeDoc(t, "snippets.json", sampleDoc)
	ls := NewLsCmd(h.flags)

	require.NoError(t, h.run(t, ls.Register, "ls", "--recent"))
	assert.Contains(t, h.stderr.String(), "No recent documents")

	show := NewShowCmd(h.flags)
	require.NoError(t, h.run(t, show.Register, "show", "snippets"))

	require.NoError(t, h.run(t, ls.Register, "ls", "--recent", "--json"))
	assert.Contains(t, h.stdout.String(), path)
	assert.Contains(t, h.stdout.String(), `"tabs": 2`)

	require.NoError(t, h.run(t, ls.Register, "ls", "--recent", "--clear"))
	assert.Contains(t, h.stderr.String(), "Cleared recent documents")

	require.NoError(t, h.run(t, ls.Register, "ls", "--recent"))
	assert.Contains(t, h.stderr.String(), "No recent documents")
}

func TestLsCmd_ClearNeedsRecent(t *testing.T) {
	h := newHarness(t)
	ls := NewLsCmd(h.flags)

	err := h.run(t, ls.Register, "ls", "--clear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--clear only applies to --recent")
}
