package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/multipaste/internal/examples"
	"github.com/colonyops/multipaste/internal/printer"
)

type ExamplesCmd struct {
	flags *Flags

	// flags
	force bool
}

// NewExamplesCmd creates a new examples command
func NewExamplesCmd(flags *Flags) *ExamplesCmd {
	return &ExamplesCmd{flags: flags}
}

// Register adds the examples command to the application
func (cmd *ExamplesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "examples",
		Usage: "Bundled example documents",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List bundled examples",
				UsageText: "multipaste examples ls",
				Action:    cmd.runList,
			},
			{
				Name:      "export",
				Usage:     "Write a bundled example to a directory",
				UsageText: "multipaste examples export <name> [dir] [--force]",
				Description: `Copies the named example into dir as <name>.json so it can be edited.

dir defaults to library_dir. Existing files are kept unless --force is given.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "force",
						Aliases:     []string{"f"},
						Usage:       "overwrite an existing file",
						Destination: &cmd.force,
					},
				},
				Action: cmd.runExport,
			},
		},
	})

	return app
}

func (cmd *ExamplesCmd) runList(_ context.Context, c *cli.Command) error {
	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCATEGORY\tTITLE")
	for _, e := range examples.List() {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Category, e.Title)
	}
	return w.Flush()
}

func (cmd *ExamplesCmd) runExport(ctx context.Context, c *cli.Command) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("example name is required")
	}

	if _, err := examples.Lookup(name); err != nil {
		var names []string
		for _, e := range examples.List() {
			names = append(names, e.Name)
		}
		return notFound("example", name, names)
	}

	dir := c.Args().Get(1)
	if dir == "" {
		dir = cmd.flags.Config.LibraryDir
	}

	dest, err := examples.Export(name, dir, cmd.force)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Exported %s to %s", name, dest)
	return nil
}
