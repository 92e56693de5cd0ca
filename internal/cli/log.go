package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/gitcmd"
	"gitkit.dev/gitkit/internal/repo"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var (
		maxCount int
		path     string
	)

	cmd := &cobra.Command{
		Use:     "log [revision]",
		Short:   "Show the commit history, newest first",
		Aliases: []string{"l"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, _, err := openRepo(cmd)
			if err != nil {
				return err
			}

			var options []gitcmd.Option
			if maxCount > 0 {
				options = append(options, gitcmd.LogMaxCount.Option(gitcmd.Int(maxCount)))
			}
			revision := ""
			if len(args) == 1 {
				revision = args[0]
			}

			var commits *repo.Commits
			if revision == "" && path == "" && maxCount == 0 {
				commits = repository.Commits()
			} else {
				commits, err = repository.CommitsFor(cmd.Context(), revision, path, options...)
				if err != nil {
					return err
				}
			}

			all := commits.All()
			for i := len(all) - 1; i >= 0; i-- {
				fmt.Fprintln(cmd.OutOrStdout(), formatCommit(all[i]))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxCount, "max-count", "n", 0, "limit the number of commits")
	cmd.Flags().StringVar(&path, "path", "", "only commits touching this path")

	return cmd
}

func formatCommit(commit *repo.Commit) string {
	hash := commit.Hash
	if len(hash) > 8 {
		hash = hash[:8]
	}
	line := fmt.Sprintf("%s %s %s %s",
		colorize(styleHash, hash),
		colorize(styleDim, commit.Date.Format("2006-01-02")),
		commit.Author.Name,
		commit.Message,
	)
	if len(commit.Tags) > 0 {
		names := make([]string, 0, len(commit.Tags))
		for _, tag := range commit.Tags {
			names = append(names, "tag: "+tag.Name)
		}
		line += " " + colorize(styleTag, "("+strings.Join(names, ", ")+")")
	}
	return line
}
