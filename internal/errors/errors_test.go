package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

func TestSchemaErrors(t *testing.T) {
	t.Run("unknown option matches its sentinel", func(t *testing.T) {
		err := gitkiterrors.NewUnknownOptionError("bogus", "bool")
		require.ErrorIs(t, err, gitkiterrors.ErrUnknownOption)
		require.Contains(t, err.Error(), `"bogus"`)
		require.Contains(t, err.Error(), `"bool"`)
	})

	t.Run("missing required options lists alias groups", func(t *testing.T) {
		err := gitkiterrors.NewMissingRequiredOptionsError([]string{"(repository)", "(directory)"})
		require.ErrorIs(t, err, gitkiterrors.ErrMissingRequiredOptions)
		require.Contains(t, err.Error(), "(repository), (directory)")
	})
}

func TestCommandError(t *testing.T) {
	cause := stderrors.New("exit status 128")
	err := gitkiterrors.NewCommandError("git", []string{"status"}, "fatal: not a git repository", 128, cause)

	require.Contains(t, err.Error(), "git status")
	require.Contains(t, err.Error(), "fatal: not a git repository")
	require.ErrorIs(t, err, cause)
	require.Equal(t, 128, err.ExitCode)
}

func TestOperationError(t *testing.T) {
	t.Run("matches the sentinel for its operation only", func(t *testing.T) {
		err := gitkiterrors.NewOperationError("pull", stderrors.New("boom"))
		require.ErrorIs(t, err, gitkiterrors.ErrPullFailed)
		require.NotErrorIs(t, err, gitkiterrors.ErrPushFailed)
	})

	t.Run("unwraps to the underlying cause", func(t *testing.T) {
		cause := gitkiterrors.NewCommandError("git", []string{"add", "a.txt"}, "", 1, nil)
		err := gitkiterrors.NewOperationError("add", cause)

		var cmdErr *gitkiterrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, []string{"add", "a.txt"}, cmdErr.Args)
	})
}
