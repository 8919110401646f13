// Package executil runs the external shell commands configured for clipboard
// access.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const maxStderrLen = 500

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf *bytes.Buffer
	n   int64
	max int64
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		return len(p), nil
	}
	remaining := w.max - w.n
	origLen := len(p)
	if int64(origLen) > remaining {
		p = p[:remaining]
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// Executor runs shell command lines.
type Executor interface {
	// Sh runs cmdline with `sh -c`, feeding stdin (may be nil), and returns
	// its stdout.
	Sh(ctx context.Context, stdin io.Reader, cmdline string) ([]byte, error)
}

// RealExecutor calls actual shell commands.
type RealExecutor struct{}

// Sh executes cmdline through sh. On failure, stderr is returned as the error
// message, capped at 500 bytes so large or ANSI-polluted output cannot
// corrupt logs or the TUI. The original *exec.ExitError is preserved via
// wrapping so callers can inspect exit codes with errors.As.
func (e *RealExecutor) Sh(ctx context.Context, stdin io.Reader, cmdline string) ([]byte, error) {
	c := exec.CommandContext(ctx, "sh", "-c", cmdline)
	c.Stdin = stdin

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &limitedWriter{buf: &stderr, max: maxStderrLen}

	if err := c.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return stdout.Bytes(), fmt.Errorf("%s: %w", msg, err)
		}
		return stdout.Bytes(), err
	}
	return stdout.Bytes(), nil
}
