package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/multipaste/internal/core/logging"
	"github.com/colonyops/multipaste/internal/printer"
)

type GetCmd struct {
	flags *Flags

	// flags
	print bool
}

// NewGetCmd creates a new get command
func NewGetCmd(flags *Flags) *GetCmd {
	return &GetCmd{flags: flags}
}

// Register adds the get command to the application
func (cmd *GetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "get",
		Usage:     "Copy a cell to the clipboard",
		UsageText: "multipaste get <file> <tab> <cell> [--print]",
		Description: `Looks up a cell by tab and cell name and copies its text to the clipboard.

Use --print to write the text to stdout instead, e.g. for piping.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "print",
				Aliases:     []string{"p"},
				Usage:       "print the cell text instead of copying it",
				Destination: &cmd.print,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *GetCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 3 {
		return fmt.Errorf("expected <file> <tab> <cell>, got %d arguments", c.Args().Len())
	}

	path, err := documentArg(cmd.flags, c.Args().Get(0))
	if err != nil {
		return err
	}
	tabName, cellName := c.Args().Get(1), c.Args().Get(2)
	ctx = logging.WithCommand(ctx, "get")

	svc := newService(cmd.flags)
	if _, err := svc.Open(ctx, path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	ws := svc.Workspace()
	tabIdx := ws.FindTab(tabName)
	if tabIdx < 0 {
		return notFound("tab", tabName, ws.TabNames())
	}

	t, _ := ws.Tab(tabIdx)
	cellIdx := t.FindCell(cellName)
	if cellIdx < 0 {
		return notFound("cell", cellName, t.CellNames())
	}

	if cmd.print {
		cell, _ := t.Cell(cellIdx)
		_, err := fmt.Fprintln(c.Root().Writer, cell.Text)
		return err
	}

	cell, err := svc.CopyCell(ctx, tabIdx, cellIdx)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Copied %q to the clipboard", cell.Name)
	return nil
}
