package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/multipaste/internal/core/document"
	"github.com/colonyops/multipaste/internal/core/recent"
	"github.com/colonyops/multipaste/internal/printer"
	"github.com/colonyops/multipaste/internal/store/jsonfile"
	"github.com/colonyops/multipaste/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	pattern    string
	recent     bool
	clear      bool
	jsonOutput bool
}

// documentEntry is one row of the ls output.
type documentEntry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Tabs  int    `json:"tabs"`
	Cells int    `json:"cells"`
	Error string `json:"error,omitempty"`
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List documents in the library directory",
		UsageText: "multipaste ls [--pattern GLOB | --recent [--clear]] [--json]",
		Description: `Lists the documents found below library_dir with their tab and cell counts.

Use --recent to list recently opened or saved documents instead, most recent first.
--recent --clear forgets them.
Documents that fail to load are still listed, with the error in place of the counts.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "pattern",
				Usage:       "doublestar glob relative to the library directory",
				Value:       jsonfile.DefaultPattern,
				Destination: &cmd.pattern,
			},
			&cli.BoolFlag{
				Name:        "recent",
				Aliases:     []string{"r"},
				Usage:       "list recently used documents",
				Destination: &cmd.recent,
			},
			&cli.BoolFlag{
				Name:        "clear",
				Usage:       "with --recent, forget the recent documents",
				Destination: &cmd.clear,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.clear {
		return cmd.clearRecent(ctx)
	}

	dir := cmd.flags.Config.LibraryDir
	store := jsonfile.NewDocumentStore()

	paths, err := cmd.documents(ctx, store, dir)
	if err != nil {
		return err
	}

	entries := make([]documentEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, describe(store, dir, p))
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, entries)
	}

	if len(entries) == 0 {
		if cmd.recent {
			printer.Ctx(ctx).Infof("No recent documents")
		} else {
			printer.Ctx(ctx).Infof("No documents found in %s", dir)
		}
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTABS\tCELLS\tPATH")
	for _, e := range entries {
		if e.Error != "" {
			_, _ = fmt.Fprintf(w, "%s\t-\t-\t%s (%s)\n", e.Name, e.Path, e.Error)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", e.Name, e.Tabs, e.Cells, e.Path)
	}
	return w.Flush()
}

func (cmd *LsCmd) clearRecent(ctx context.Context) error {
	if !cmd.recent {
		return errors.New("--clear only applies to --recent")
	}
	if err := recentStore(cmd.flags).Clear(ctx); err != nil {
		return fmt.Errorf("clear recent documents: %w", err)
	}
	printer.Ctx(ctx).Successf("Cleared recent documents")
	return nil
}

func (cmd *LsCmd) documents(ctx context.Context, store *jsonfile.DocumentStore, dir string) ([]string, error) {
	if cmd.recent {
		entries, err := recentStore(cmd.flags).List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list recent documents: %w", err)
		}
		return recent.Paths(entries), nil
	}

	paths, err := store.List(dir, cmd.pattern)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return paths, nil
}

func describe(store *jsonfile.DocumentStore, dir, path string) documentEntry {
	name, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(name, "..") {
		name = filepath.Base(path)
	}

	e := documentEntry{Name: name, Path: path}

	res, err := store.Load(path)
	if err != nil {
		e.Error = loadErrorSummary(err)
		return e
	}

	e.Tabs = res.TabCount()
	e.Cells = res.CellCount()
	return e
}

// loadErrorSummary maps a load failure to a short label.
func loadErrorSummary(err error) string {
	switch {
	case errors.Is(err, document.ErrJSONSyntax):
		return "syntax error"
	case errors.Is(err, document.ErrMalformedDocument):
		return "not a multipaste document"
	default:
		return "unreadable"
	}
}
