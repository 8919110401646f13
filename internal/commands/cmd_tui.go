package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/multipaste/internal/core/logging"
	"github.com/colonyops/multipaste/internal/core/notify"
	"github.com/colonyops/multipaste/internal/store/jsonfile"
	"github.com/colonyops/multipaste/internal/tui"
)

// notificationHistory caps the notifications kept for the history dialog.
const notificationHistory = 200

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	ctx = logging.WithCommand(ctx, "tui")

	svc := newService(cmd.flags)

	var warnings []string
	for _, w := range cfg.Warnings() {
		warnings = append(warnings, w.Message)
	}

	if path := cfg.DocumentPath(c.Args().First()); path != "" {
		report, err := svc.OpenOrCreate(ctx, path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		warnings = append(warnings, report.Warnings...)
		if report.Dropped > 0 {
			warnings = append(warnings, fmt.Sprintf("%d cells before the first tab were skipped", report.Dropped))
		}
	}

	opts := tui.Options{
		ConfirmClose:  cfg.ConfirmClose,
		ResolvePath:   cfg.DocumentPath,
		Notifications: notify.NewMemoryStore(notificationHistory),
		Warnings:      warnings,
	}

	watcher, err := jsonfile.NewDocumentWatcher(logging.Component(logging.CmpWatcher))
	if err != nil {
		log.Warn().Err(err).Msg("document watcher unavailable")
	} else {
		defer func() { _ = watcher.Close() }()
		opts.Watcher = watcher
	}

	m := tui.New(svc, opts)

	log.Info().Ctx(ctx).Str("document", svc.Path()).Msg("starting tui")

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
