// Package clipboard copies cell text to, and reads text from, the system
// clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/colonyops/multipaste/internal/core/config"
	"github.com/colonyops/multipaste/pkg/executil"
)

// ErrUnavailable is returned when no clipboard mechanism is usable.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard copies text out of and pastes text into the application.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
	Paste(ctx context.Context) (string, error)
}

// New returns a Command clipboard when a copy command is configured and the
// System clipboard otherwise.
func New(cfg config.ClipboardConfig) Clipboard {
	if cfg.CopyCommand != "" {
		return NewCommand(&executil.RealExecutor{}, cfg.CopyCommand, cfg.PasteCommand)
	}
	return System{}
}

// System uses the platform clipboard (pbcopy, xclip/xsel, wl-clipboard, or the
// Windows API).
type System struct{}

func (System) Copy(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

func (System) Paste(_ context.Context) (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// Command pipes text through user-configured shell commands.
type Command struct {
	exec     executil.Executor
	copyCmd  string
	pasteCmd string
}

// NewCommand creates a command clipboard. An empty pasteCmd disables Paste.
func NewCommand(exec executil.Executor, copyCmd, pasteCmd string) *Command {
	return &Command{exec: exec, copyCmd: copyCmd, pasteCmd: pasteCmd}
}

func (c *Command) Copy(ctx context.Context, text string) error {
	if c.copyCmd == "" {
		return ErrUnavailable
	}
	if _, err := c.exec.Sh(ctx, strings.NewReader(text), c.copyCmd); err != nil {
		return fmt.Errorf("copy command: %w", err)
	}
	return nil
}

func (c *Command) Paste(ctx context.Context) (string, error) {
	if c.pasteCmd == "" {
		return "", fmt.Errorf("%w: no paste_command configured", ErrUnavailable)
	}
	out, err := c.exec.Sh(ctx, nil, c.pasteCmd)
	if err != nil {
		return "", fmt.Errorf("paste command: %w", err)
	}
	return string(out), nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) Copy(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

func (m *Memory) Paste(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
