package gitcmd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

// defaultTool is the external executable the runner spawns
const defaultTool = "git"

// Runner executes validated argument vectors as git subprocesses. Arguments
// are always passed as a vector, never concatenated into a shell string, so
// option values are never re-parsed by a shell.
//
// Execution is synchronous and blocking; no timeout is imposed. Callers
// needing bounded execution time set a deadline on the context.
type Runner struct {
	tool       string
	workingDir string
	logger     *slog.Logger
	stream     bool
}

// NewRunner creates a Runner that executes git in the given working
// directory. An empty dir means the process working directory.
func NewRunner(workingDir string) *Runner {
	return &Runner{tool: defaultTool, workingDir: workingDir}
}

// SetWorkingDir changes the working directory for subsequent commands
func (r *Runner) SetWorkingDir(dir string) {
	r.workingDir = dir
}

// WorkingDir returns the configured working directory
func (r *Runner) WorkingDir() string {
	return r.workingDir
}

// SetLogger installs a sink that receives each completed stdout line while a
// command runs. Streaming only happens when a logger is set. Stderr is
// buffered fully until completion regardless.
func (r *Runner) SetLogger(logger *slog.Logger) {
	r.logger = logger
	r.stream = logger != nil
}

// Execute validates the supplied options against the command schema,
// serializes them, and runs the resulting subcommand. It returns the decoded
// stdout text on exit code 0.
func (r *Runner) Execute(ctx context.Context, cmd *Command, options ...Option) (string, error) {
	if err := cmd.Validate(options...); err != nil {
		return "", err
	}
	return r.Run(ctx, cmd.Args(options...)...)
}

// Run executes a pre-built argument vector, subcommand name first. Stdout
// and stderr are decoded as UTF-8 with invalid byte sequences dropped. A
// non-zero exit code yields a CommandError carrying the decoded stderr.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.tool, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	var stdout string
	var runErr error
	if r.stream {
		stdout, runErr = r.runStreaming(cmd)
	} else {
		var buf bytes.Buffer
		cmd.Stdout = &buf
		runErr = cmd.Run()
		stdout = decode(buf.Bytes())
	}

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", gitkiterrors.NewCommandError(r.tool, args, decode(stderr.Bytes()), exitCode, runErr)
	}
	return stdout, nil
}

// runStreaming starts the process with a stdout pipe and forwards each
// completed line to the logger while accumulating the full output.
func (r *Runner) runStreaming(cmd *exec.Cmd) (string, error) {
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}
	if err := cmd.Start(); err != nil {
		return "", err
	}

	var buf strings.Builder
	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := decode(scanner.Bytes())
		r.logger.Info(line)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if scanErr := scanner.Err(); scanErr != nil && scanErr != io.EOF {
		_ = cmd.Wait()
		return "", scanErr
	}
	if err := cmd.Wait(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// decode converts raw process output to a string, dropping byte sequences
// that are not valid UTF-8 instead of failing.
func decode(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "")
}
