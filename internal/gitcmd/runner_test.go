package gitcmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

// stubTool writes an executable shell script standing in for git
func stubTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not available on windows")
	}
	path := filepath.Join(t.TempDir(), "fakegit")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestRunnerRun(t *testing.T) {
	t.Run("returns decoded stdout on success", func(t *testing.T) {
		runner := NewRunner("")
		runner.tool = stubTool(t, "echo one\necho two\n")

		output, err := runner.Run(context.Background(), "log")
		require.NoError(t, err)
		require.Equal(t, "one\ntwo\n", output)
	})

	t.Run("wraps a non-zero exit in a CommandError", func(t *testing.T) {
		runner := NewRunner("")
		runner.tool = stubTool(t, "echo 'fatal: not a git repository' >&2\nexit 128\n")

		_, err := runner.Run(context.Background(), "status")
		var cmdErr *gitkiterrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, 128, cmdErr.ExitCode)
		require.Contains(t, cmdErr.Stderr, "fatal: not a git repository")
		require.Equal(t, []string{"status"}, cmdErr.Args)
	})

	t.Run("streams stdout lines when a logger is set", func(t *testing.T) {
		runner := NewRunner("")
		runner.tool = stubTool(t, "echo alpha\necho beta\n")
		runner.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

		output, err := runner.Run(context.Background(), "pull")
		require.NoError(t, err)
		require.Equal(t, "alpha\nbeta\n", output)
	})

	t.Run("buffers stderr fully while streaming", func(t *testing.T) {
		runner := NewRunner("")
		runner.tool = stubTool(t, "echo progress\necho 'error: oops' >&2\nexit 1\n")
		runner.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

		_, err := runner.Run(context.Background(), "push")
		var cmdErr *gitkiterrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Contains(t, cmdErr.Stderr, "error: oops")
	})
}

func TestRunnerExecute(t *testing.T) {
	t.Run("rejects invalid options before spawning", func(t *testing.T) {
		runner := NewRunner("")
		runner.tool = stubTool(t, "echo should-not-run\nexit 0\n")

		_, err := runner.Execute(context.Background(), Add,
			Option{Name: "bogus", Value: Bool(true)})
		require.ErrorIs(t, err, gitkiterrors.ErrUnknownOption)
	})

	t.Run("serializes and runs a valid option set", func(t *testing.T) {
		runner := NewRunner("")
		runner.tool = stubTool(t, `echo "$@"`+"\n")

		output, err := runner.Execute(context.Background(), Add,
			AddForce.Option(Bool(true)),
			AddPathspec.Option(Strings("a.txt", "b.txt")),
		)
		require.NoError(t, err)
		require.Equal(t, "add -f a.txt b.txt\n", output)
	})
}
