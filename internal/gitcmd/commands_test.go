package gitcmd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
	"gitkit.dev/gitkit/internal/gitcmd"
)

func TestCommandTables(t *testing.T) {
	commands := []*gitcmd.Command{
		gitcmd.Add,
		gitcmd.Checkout,
		gitcmd.Clone,
		gitcmd.Commit,
		gitcmd.Config,
		gitcmd.ForEachRef,
		gitcmd.Init,
		gitcmd.Log,
		gitcmd.Mv,
		gitcmd.Pull,
		gitcmd.Push,
		gitcmd.Rm,
		gitcmd.Show,
	}

	t.Run("every table has a well-formed positional shape", func(t *testing.T) {
		for _, cmd := range commands {
			err := cmd.Validate()
			if cmd == gitcmd.Clone {
				// clone is the only command with a required option
				require.ErrorIs(t, err, gitkiterrors.ErrMissingRequiredOptions, cmd.Name)
				continue
			}
			require.NoError(t, err, cmd.Name)
		}
	})

	t.Run("args always start with the command name", func(t *testing.T) {
		for _, cmd := range commands {
			require.Equal(t, cmd.Name, cmd.Args()[0])
		}
	})
}

func TestRepresentativeInvocations(t *testing.T) {
	t.Run("log with record format", func(t *testing.T) {
		args := gitcmd.Log.Args(
			gitcmd.LogAll.Option(gitcmd.Bool(true)),
			gitcmd.LogFormat.Option(gitcmd.String("%H%n%s")),
			gitcmd.LogDate.Option(gitcmd.String("format:%Y-%m-%d")),
		)
		require.Equal(t, []string{"log", "--all", "--format=%H%n%s", "--date=format:%Y-%m-%d"}, args)
	})

	t.Run("for-each-ref over tags", func(t *testing.T) {
		args := gitcmd.ForEachRef.Args(
			gitcmd.ForEachRefFormat.Option(gitcmd.String("%(objecttype)")),
			gitcmd.ForEachRefPattern.Option(gitcmd.String("refs/tags")),
		)
		require.Equal(t, []string{"for-each-ref", "--format=%(objecttype)", "refs/tags"}, args)
	})

	t.Run("checkout of a new branch with start point", func(t *testing.T) {
		args := gitcmd.Checkout.Args(
			gitcmd.CheckoutNewBranch.Option(gitcmd.String("feature")),
			gitcmd.CheckoutStartPoint.Option(gitcmd.String("main")),
		)
		require.Equal(t, []string{"checkout", "-b", "feature", "main"}, args)
	})

	t.Run("rm cached keeps the working tree", func(t *testing.T) {
		args := gitcmd.Rm.Args(
			gitcmd.RmCached.Option(gitcmd.Bool(true)),
			gitcmd.RmQuiet.Option(gitcmd.Bool(true)),
			gitcmd.RmPathspec.Option(gitcmd.Strings("a.txt", "b.txt")),
		)
		require.Equal(t, []string{"rm", "--cached", "-q", "a.txt", "b.txt"}, args)
	})
}
