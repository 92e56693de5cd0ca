// Package cli wires the repository facade into the gitkit command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitkit",
		Short: "Gitkit is a typed command line wrapper around git",
		Long: `Gitkit builds validated git invocations from declarative option schemas
and parses the repository state into structured commit, branch and tag models.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("repo", "C", ".", "path to the repository working tree")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newBranchesCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newRemotesCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRmCmd())

	return rootCmd
}
