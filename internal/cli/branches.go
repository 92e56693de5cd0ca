package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branches",
		Short:   "List local and remote-tracking branches",
		Aliases: []string{"br"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, _, err := openRepo(cmd)
			if err != nil {
				return err
			}

			active := ""
			if branch := repository.ActiveBranch(); branch != nil {
				active = branch.Name
			}
			for _, branch := range repository.Branches().All() {
				marker := " "
				name := branch.Name
				if branch.Name == active {
					marker = "*"
					name = colorize(styleBranch, name)
				}
				hash := branch.CommitHash
				if len(hash) > 8 {
					hash = hash[:8]
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					marker, name, colorize(styleHash, hash), colorize(styleDim, branch.Path))
			}
			return nil
		},
	}
	return cmd
}
