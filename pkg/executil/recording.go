package executil

import (
	"context"
	"io"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd   string
	Stdin string
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors maps to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps command lines to their stdout.
	Outputs map[string][]byte

	// Errors maps command lines to their error.
	Errors map[string]error
}

// Sh records the command line and its stdin and returns configured
// output/error.
func (e *RecordingExecutor) Sh(ctx context.Context, stdin io.Reader, cmdline string) ([]byte, error) {
	var in string
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		in = string(data)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{Cmd: cmdline, Stdin: in})

	var out []byte
	var err error

	if e.Outputs != nil {
		out = e.Outputs[cmdline]
	}
	if e.Errors != nil {
		err = e.Errors[cmdline]
	}

	return out, err
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
