package executil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSh_StderrCappedAtMaxLen(t *testing.T) {
	ctx := context.Background()
	e := &RealExecutor{}

	// Write twice the cap to stderr; only the first maxStderrLen bytes should appear in the error.
	longStderr := strings.Repeat("A", maxStderrLen*2)
	cmd := fmt.Sprintf("printf '%%s' '%s' >&2; exit 1", longStderr)

	_, err := e.Sh(ctx, nil, cmd)
	require.Error(t, err)

	errMsg := err.Error()
	assert.LessOrEqual(t, len(errMsg), maxStderrLen+20, "error message should be capped")
	assert.Equal(t, strings.Repeat("A", maxStderrLen), errMsg[:maxStderrLen])
}

func TestSh_PreservesExitError(t *testing.T) {
	ctx := context.Background()
	e := &RealExecutor{}

	_, err := e.Sh(ctx, nil, "echo 'error message' >&2; exit 1")
	require.Error(t, err)

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr, "original ExitError should be preserved via wrapping")
	assert.Contains(t, err.Error(), "error message")
}

func TestSh_NoStderrReturnsExitError(t *testing.T) {
	ctx := context.Background()
	e := &RealExecutor{}

	_, err := e.Sh(ctx, nil, "exit 2")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
}

func TestSh_StdinAndStdout(t *testing.T) {
	ctx := context.Background()
	e := &RealExecutor{}

	out, err := e.Sh(ctx, strings.NewReader("hello\nworld"), "cat")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", string(out))

	out, err = e.Sh(ctx, nil, "printf 'x'")
	require.NoError(t, err)
	assert.Equal(t, "x", string(out))
}

func TestRecordingExecutor_Sh(t *testing.T) {
	t.Run("records commands and stdin", func(t *testing.T) {
		e := &RecordingExecutor{}
		ctx := context.Background()

		_, _ = e.Sh(ctx, strings.NewReader("text"), "wl-copy")
		_, _ = e.Sh(ctx, nil, "wl-paste -n")

		require.Len(t, e.Commands, 2)
		assert.Equal(t, RecordedCommand{Cmd: "wl-copy", Stdin: "text"}, e.Commands[0])
		assert.Equal(t, RecordedCommand{Cmd: "wl-paste -n"}, e.Commands[1])
	})

	t.Run("returns configured output", func(t *testing.T) {
		e := &RecordingExecutor{
			Outputs: map[string][]byte{"wl-paste": []byte("output")},
		}

		out, err := e.Sh(context.Background(), nil, "wl-paste")
		require.NoError(t, err)
		assert.Equal(t, []byte("output"), out)
	})

	t.Run("returns configured error", func(t *testing.T) {
		expectedErr := errors.New("command failed")
		e := &RecordingExecutor{
			Errors: map[string]error{"wl-copy": expectedErr},
		}

		_, err := e.Sh(context.Background(), nil, "wl-copy")
		assert.Equal(t, expectedErr, err)
	})

	t.Run("reset clears commands", func(t *testing.T) {
		e := &RecordingExecutor{}

		_, _ = e.Sh(context.Background(), nil, "echo hello")
		require.Len(t, e.Commands, 1)

		e.Reset()
		assert.Empty(t, e.Commands)
	})
}
