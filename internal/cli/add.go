package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/gitcmd"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	var (
		force  bool
		update bool
	)

	cmd := &cobra.Command{
		Use:   "add <path>...",
		Short: "Stage file contents for the next commit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, _, err := openRepo(cmd)
			if err != nil {
				return err
			}

			var options []gitcmd.Option
			if force {
				options = append(options, gitcmd.AddForce.Option(gitcmd.Bool(true)))
			}
			if update {
				options = append(options, gitcmd.AddUpdate.Option(gitcmd.Bool(true)))
			}

			_, err = repository.Add(cmd.Context(), args, options...)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "allow adding otherwise ignored files")
	cmd.Flags().BoolVarP(&update, "update", "u", false, "update tracked files only")

	return cmd
}
