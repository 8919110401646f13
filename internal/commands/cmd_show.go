package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/multipaste/internal/core/clip"
	"github.com/colonyops/multipaste/internal/core/document"
	"github.com/colonyops/multipaste/internal/core/logging"
	"github.com/colonyops/multipaste/internal/core/styles"
	"github.com/colonyops/multipaste/internal/printer"
	"github.com/colonyops/multipaste/pkg/iojson"
)

type ShowCmd struct {
	flags *Flags

	// flags
	tab        string
	jsonOutput bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print the tabs and cells of a document",
		UsageText: "multipaste show <file> [--tab NAME] [--json]",
		Description: `Prints every tab of the document with its cells.

<file> is a path, or a bare name resolved inside library_dir.
Use --json to print the document normalized to the saved file format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "tab",
				Aliases:     []string{"t"},
				Usage:       "only show the named tab",
				Destination: &cmd.tab,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the normalized document as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	path, err := documentArg(cmd.flags, c.Args().First())
	if err != nil {
		return err
	}
	ctx = logging.WithCommand(ctx, "show")

	svc := newService(cmd.flags)
	report, err := svc.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	p := printer.Ctx(ctx)
	for _, w := range report.Warnings {
		p.Warnf("%s", w)
	}

	ws := svc.Workspace()
	tabs := ws.Tabs()
	if cmd.tab != "" {
		i := ws.FindTab(cmd.tab)
		if i < 0 {
			return notFound("tab", cmd.tab, ws.TabNames())
		}
		tabs = tabs[i : i+1]
	}

	if cmd.jsonOutput {
		author := report.Author
		if author == "" {
			author = svc.Author()
		}
		doc := document.Write(author, tabs)
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, doc)
	}

	writeTabs(c.Root().Writer, tabs)
	return nil
}

func writeTabs(w io.Writer, tabs []*clip.Tab) {
	for i, t := range tabs {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = lipgloss.Fprintf(w, "%s %s\n",
			styles.TextPrimaryBoldStyle.Render(t.Name),
			styles.TextMutedStyle.Render(fmt.Sprintf("(%d cells)", t.Len())),
		)
		for _, c := range t.Cells {
			_, _ = lipgloss.Fprintf(w, "  %s\n", styles.TextForegroundBoldStyle.Render(c.Name))
			for _, line := range strings.Split(c.Text, "\n") {
				_, _ = fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}
}
