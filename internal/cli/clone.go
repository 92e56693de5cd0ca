package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/gitcmd"
	"gitkit.dev/gitkit/internal/repo"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	var (
		branch string
		noTags bool
	)

	cmd := &cobra.Command{
		Use:   "clone <url> [directory]",
		Short: "Clone a repository into a new directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			target := cloneTarget(url, args)
			directory, err := filepath.Abs(target)
			if err != nil {
				return err
			}

			var options []gitcmd.Option
			if branch != "" {
				options = append(options, gitcmd.CloneBranch.Option(gitcmd.String(branch)))
			}
			if noTags {
				options = append(options, gitcmd.CloneNoTags.Option(gitcmd.Bool(true)))
			}

			logger := newLogger(cmd, "")
			repository, err := repo.Clone(cmd.Context(), url, directory, logger, options...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cloned %s into %s\n", url, repository.Root())
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "check out this branch instead of the remote HEAD")
	cmd.Flags().BoolVar(&noTags, "no-tags", false, "do not fetch tags")

	return cmd
}

// cloneTarget derives the target directory from the URL when none is given
func cloneTarget(url string, args []string) string {
	if len(args) == 2 {
		return args[1]
	}
	base := filepath.Base(strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git"))
	return base
}
