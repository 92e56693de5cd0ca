package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit/internal/gitcmd"
)

// newRmCmd creates the rm command
func newRmCmd() *cobra.Command {
	var (
		force     bool
		cached    bool
		recursive bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Remove files from the index and working tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, _, err := openRepo(cmd)
			if err != nil {
				return err
			}

			if !yes && colorEnabled() {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Remove %s?", strings.Join(args, ", ")),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return fmt.Errorf("canceled")
				}
				if !confirmed {
					return nil
				}
			}

			var options []gitcmd.Option
			if force {
				options = append(options, gitcmd.RmForce.Option(gitcmd.Bool(true)))
			}
			if cached {
				options = append(options, gitcmd.RmCached.Option(gitcmd.Bool(true)))
			}
			if recursive {
				options = append(options, gitcmd.RmRecursive.Option(gitcmd.Bool(true)))
			}

			output, err := repository.Rm(cmd.Context(), args, options...)
			if err != nil {
				return err
			}
			if output != "" {
				fmt.Fprint(cmd.OutOrStdout(), output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "override the up-to-date check")
	cmd.Flags().BoolVar(&cached, "cached", false, "remove from the index only")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "allow recursive removal of directories")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
