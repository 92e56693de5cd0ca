package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/gitcmd"
	"gitkit.dev/gitkit/internal/repo"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var initialBranch string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create an empty repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			root, err := filepath.Abs(target)
			if err != nil {
				return err
			}

			var options []gitcmd.Option
			if initialBranch != "" {
				options = append(options, gitcmd.InitInitialBranch.Option(gitcmd.String(initialBranch)))
			}

			logger := newLogger(cmd, "")
			repository, err := repo.Init(cmd.Context(), root, logger, options...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized repository at %s\n", repository.Root())
			return nil
		},
	}

	cmd.Flags().StringVarP(&initialBranch, "initial-branch", "b", "", "name of the initial branch")

	return cmd
}
