package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRemotesCmd creates the remotes command
func newRemotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remotes",
		Short: "List remotes from the repository configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, _, err := openRepo(cmd)
			if err != nil {
				return err
			}

			for _, remote := range repository.Remotes().All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					colorize(styleRemote, remote.Name), remote.URL)
			}
			return nil
		},
	}
	return cmd
}
