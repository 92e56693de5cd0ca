package cli

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/output"
	"gitkit.dev/gitkit/internal/repo"
)

// repoRoot resolves the --repo flag to an absolute working tree path
func repoRoot(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString("repo")
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

// newLogger builds the command logger honoring the --debug flag
func newLogger(cmd *cobra.Command, root string) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return output.NewLogger(root, debug)
}

// openRepo opens the repository addressed by the --repo flag with a logger
// attached for command streaming.
func openRepo(cmd *cobra.Command) (*repo.Repository, *slog.Logger, error) {
	root, err := repoRoot(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cmd, root)
	repository, err := repo.Open(cmd.Context(), root, logger)
	if err != nil {
		return nil, nil, err
	}
	return repository, logger, nil
}
