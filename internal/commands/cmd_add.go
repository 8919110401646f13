package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/multipaste/internal/app"
	"github.com/colonyops/multipaste/internal/core/clip"
	"github.com/colonyops/multipaste/internal/core/logging"
	"github.com/colonyops/multipaste/internal/printer"
	"github.com/colonyops/multipaste/pkg/iojson"
)

// BatchCell is one cell of a batch add.
type BatchCell struct {
	Tab  string `json:"tab"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// BatchInput is the JSON accepted by add --batch.
type BatchInput struct {
	Cells []BatchCell `json:"cells"`
}

// BatchResult is printed after a batch add.
type BatchResult struct {
	Path  string `json:"path"`
	Added int    `json:"added"`
}

type AddCmd struct {
	flags *Flags

	// flags
	tab   string
	name  string
	text  string
	paste bool
	batch bool
	fr    *iojson.FileReader[BatchInput]

	stdin      io.Reader
	isTerminal func() bool
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{
		flags: flags,
		fr:    &iojson.FileReader[BatchInput]{},
		stdin: os.Stdin,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a cell to a document",
		UsageText: "multipaste add <file> [--tab NAME] [--name NAME] [--text TEXT | --paste | < file]",
		Description: `Adds a cell to a tab of the document and saves it.

The document and the tab are created when they do not exist. Without --tab the
cell goes to the first tab. Without --text the cell text is read from stdin.
When --name is missing and stdin is a terminal, an interactive form asks for
the name and text; otherwise the name defaults to the first line of the text.
With --paste the cell text is the current clipboard contents.

With --batch, cells are read as JSON from --file or stdin:

  {"cells": [{"tab": "Work", "name": "Greeting", "text": "hello"}]}`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "tab",
				Aliases:     []string{"t"},
				Usage:       "tab to add the cell to",
				Destination: &cmd.tab,
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "cell name",
				Destination: &cmd.name,
			},
			&cli.StringFlag{
				Name:        "text",
				Usage:       "cell text (reads stdin when omitted)",
				Destination: &cmd.text,
			},
			&cli.BoolFlag{
				Name:        "paste",
				Aliases:     []string{"p"},
				Usage:       "use the clipboard contents as the cell text",
				Destination: &cmd.paste,
			},
			&cli.BoolFlag{
				Name:        "batch",
				Usage:       "add cells from JSON input",
				Destination: &cmd.batch,
			},
			cmd.fr.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	path, err := documentArg(cmd.flags, c.Args().First())
	if err != nil {
		return err
	}
	ctx = logging.WithCommand(ctx, "add")

	svc := newService(cmd.flags)
	report, err := svc.OpenOrCreate(ctx, path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	created := report.Tabs == 0

	if cmd.batch {
		return cmd.runBatch(ctx, c, svc, created)
	}

	p := printer.Ctx(ctx)
	name, text := strings.TrimSpace(cmd.name), cmd.text

	if cmd.paste {
		tabIdx, err := ensureTab(svc, strings.TrimSpace(cmd.tab), created)
		if err != nil {
			return err
		}
		cellIdx, err := svc.PasteCell(ctx, tabIdx, name)
		if err != nil {
			return err
		}
		return saveAdded(ctx, svc, tabIdx, cellIdx)
	}

	switch {
	case name == "" && cmd.isTerminal():
		if err := runCellForm(&name, &text); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Cancelled()
				return nil
			}
			return err
		}
		name = strings.TrimSpace(name)
	case text == "":
		if cmd.isTerminal() {
			return fmt.Errorf("--text is required when stdin is a terminal")
		}
		bits, err := io.ReadAll(cmd.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSuffix(string(bits), "\n")
	}

	if text == "" {
		return fmt.Errorf("cell text is empty")
	}

	tabIdx, err := ensureTab(svc, strings.TrimSpace(cmd.tab), created)
	if err != nil {
		return err
	}
	cellIdx, err := svc.AddCellFromText(tabIdx, name, text)
	if err != nil {
		return err
	}
	return saveAdded(ctx, svc, tabIdx, cellIdx)
}

// saveAdded saves the document and reports the cell at tabIdx/cellIdx.
func saveAdded(ctx context.Context, svc *app.Service, tabIdx, cellIdx int) error {
	if err := svc.Save(ctx); err != nil {
		return fmt.Errorf("save %s: %w", svc.Path(), err)
	}

	t, _ := svc.Workspace().Tab(tabIdx)
	c, _ := t.Cell(cellIdx)
	printer.Ctx(ctx).Successf("Added %q to %s in %s", c.Name, t.Name, svc.Path())
	return nil
}

func (cmd *AddCmd) runBatch(ctx context.Context, c *cli.Command, svc *app.Service, created bool) error {
	if cmd.stdin != os.Stdin {
		cmd.fr.Stdin = cmd.stdin
	}

	in, err := cmd.fr.Read()
	if err != nil {
		_ = iojson.WriteErrorTo(c.Root().ErrWriter, "invalid batch input", map[string]any{"error": err.Error()})
		return err
	}
	if len(in.Cells) == 0 {
		return fmt.Errorf("batch input has no cells")
	}

	for i, bc := range in.Cells {
		if bc.Text == "" {
			return fmt.Errorf("cell %d: text is empty", i)
		}
		tabIdx, err := ensureTab(svc, strings.TrimSpace(bc.Tab), created)
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		created = false

		if _, err := svc.AddCellFromText(tabIdx, strings.TrimSpace(bc.Name), bc.Text); err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
	}

	if err := svc.Save(ctx); err != nil {
		return fmt.Errorf("save %s: %w", svc.Path(), err)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, BatchResult{
		Path:  svc.Path(),
		Added: len(in.Cells),
	})
}

// ensureTab returns the index of the named tab, creating it when missing. An
// empty name selects the first tab. In a freshly created document the empty
// Default tab is renamed instead of kept next to the new one.
func ensureTab(svc *app.Service, name string, created bool) (int, error) {
	if name == "" {
		return 0, nil
	}

	ws := svc.Workspace()
	if i := ws.FindTab(name); i >= 0 {
		return i, nil
	}

	if created && ws.Len() == 1 {
		if t, _ := ws.Tab(0); t.Name == clip.DefaultTabName && t.Len() == 0 {
			return 0, svc.RenameTab(0, name)
		}
	}

	return svc.AddTab(name), nil
}

func runCellForm(name, text *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cell name").
				Description("Shown in the cell list").
				Validate(validateName).
				Value(name),
			huh.NewText().
				Title("Text").
				Description("Copied to the clipboard when the cell is selected").
				Validate(validateText).
				Value(text),
		),
	).WithTheme(huh.ThemeCharm()).Run()
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func validateText(s string) error {
	if s == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}
