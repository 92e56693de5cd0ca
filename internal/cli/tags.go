package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTagsCmd creates the tags command
func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags with their target commits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, _, err := openRepo(cmd)
			if err != nil {
				return err
			}

			for _, tag := range repository.Tags().All() {
				hash := tag.CommitHash
				if len(hash) > 8 {
					hash = hash[:8]
				}
				line := fmt.Sprintf("%s %s", colorize(styleTag, tag.Name), colorize(styleHash, hash))
				if tag.Annotated {
					line += fmt.Sprintf(" %s %s", tag.Tagger.Name, colorize(styleDim, tag.Message))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	return cmd
}
