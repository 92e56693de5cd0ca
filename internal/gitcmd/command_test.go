package gitcmd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
	"gitkit.dev/gitkit/internal/gitcmd"
)

func TestAliasesOption(t *testing.T) {
	t.Run("prefers the long alias", func(t *testing.T) {
		opt := gitcmd.AddForce.Option(gitcmd.Bool(true))
		require.Equal(t, "force", opt.Name)
	})

	t.Run("falls back to the short alias", func(t *testing.T) {
		opt := gitcmd.CheckoutNewBranch.Option(gitcmd.String("feature"))
		require.Equal(t, "b", opt.Name)
	})
}

func TestCommandValidate(t *testing.T) {
	t.Run("accepts a well-formed option set", func(t *testing.T) {
		err := gitcmd.Add.Validate(
			gitcmd.AddForce.Option(gitcmd.Bool(true)),
			gitcmd.AddPathspec.Option(gitcmd.Strings("a.txt")),
		)
		require.NoError(t, err)
	})

	t.Run("rejects an option no definition knows", func(t *testing.T) {
		err := gitcmd.Add.Validate(gitcmd.Option{Name: "bogus", Value: gitcmd.Bool(true)})
		require.ErrorIs(t, err, gitkiterrors.ErrUnknownOption)
	})

	t.Run("rejects a known alias carrying the wrong value kind", func(t *testing.T) {
		err := gitcmd.Add.Validate(gitcmd.AddForce.Option(gitcmd.String("yes")))
		require.ErrorIs(t, err, gitkiterrors.ErrUnknownOption)
	})

	t.Run("rejects a value outside the choice set", func(t *testing.T) {
		err := gitcmd.Pull.Validate(
			gitcmd.PullRecurseSubmodules.Option(gitcmd.String("sometimes")),
		)
		require.ErrorIs(t, err, gitkiterrors.ErrInvalidChoice)

		var choiceErr *gitkiterrors.InvalidChoiceError
		require.ErrorAs(t, err, &choiceErr)
		require.Equal(t, gitcmd.PullRecurseSubmodulesChoices, choiceErr.Choices)
	})

	t.Run("accepts a value on the choice set", func(t *testing.T) {
		err := gitcmd.Pull.Validate(
			gitcmd.PullRecurseSubmodules.Option(gitcmd.String("on-demand")),
		)
		require.NoError(t, err)
	})

	t.Run("reports missing required options as alias groups", func(t *testing.T) {
		err := gitcmd.Clone.Validate(gitcmd.CloneQuiet.Option(gitcmd.Bool(true)))
		require.ErrorIs(t, err, gitkiterrors.ErrMissingRequiredOptions)
		require.Contains(t, err.Error(), "(repository)")
	})

	t.Run("required options satisfied by any alias spelling", func(t *testing.T) {
		err := gitcmd.Clone.Validate(
			gitcmd.CloneRepository.Option(gitcmd.String("https://example.com/repo.git")),
		)
		require.NoError(t, err)
	})

	t.Run("rejects a list positional before the last position", func(t *testing.T) {
		malformed := &gitcmd.Command{
			Name: "broken",
			Definitions: []gitcmd.Definition{
				{Aliases: gitcmd.Aliases{{Name: "files"}}, Kinds: []gitcmd.Kind{gitcmd.KindStringList}, Positional: true, Position: 0},
				{Aliases: gitcmd.Aliases{{Name: "target"}}, Kinds: []gitcmd.Kind{gitcmd.KindString}, Positional: true, Position: 1},
			},
		}
		err := malformed.Validate()
		require.ErrorIs(t, err, gitkiterrors.ErrInvalidPositionalDefinition)
		require.Contains(t, err.Error(), "files")
	})
}

func TestCommandDefinition(t *testing.T) {
	t.Run("first match wins on shared aliases", func(t *testing.T) {
		toggle := gitcmd.Aliases{{Name: "branches"}}
		cmd := &gitcmd.Command{
			Name: "sample",
			Definitions: []gitcmd.Definition{
				{Aliases: toggle, Kinds: []gitcmd.Kind{gitcmd.KindBool}},
				{Aliases: toggle, Kinds: []gitcmd.Kind{gitcmd.KindString}, Separator: "="},
			},
		}

		asBool := cmd.Definition(toggle.Option(gitcmd.Bool(true)))
		require.NotNil(t, asBool)
		require.Equal(t, "", asBool.Separator)

		asString := cmd.Definition(toggle.Option(gitcmd.String("feature/*")))
		require.NotNil(t, asString)
		require.Equal(t, "=", asString.Separator)
	})

	t.Run("nil for an unknown option", func(t *testing.T) {
		require.Nil(t, gitcmd.Add.Definition(gitcmd.Option{Name: "nope", Value: gitcmd.Bool(true)}))
	})
}

func TestCommandArgs(t *testing.T) {
	t.Run("stages files with a short flag", func(t *testing.T) {
		args := gitcmd.Add.Args(
			gitcmd.AddForce.Option(gitcmd.Bool(true)),
			gitcmd.AddPathspec.Option(gitcmd.Strings("a.txt", "b.txt")),
		)
		require.Equal(t, []string{"add", "-f", "a.txt", "b.txt"}, args)
	})

	t.Run("false bool emits nothing", func(t *testing.T) {
		args := gitcmd.Add.Args(
			gitcmd.AddVerbose.Option(gitcmd.Bool(false)),
			gitcmd.AddPathspec.Option(gitcmd.Strings("a.txt")),
		)
		require.Equal(t, []string{"add", "a.txt"}, args)
	})

	t.Run("separator joins flag and value into one argument", func(t *testing.T) {
		args := gitcmd.Log.Args(
			gitcmd.LogFormat.Option(gitcmd.String("%H")),
			gitcmd.LogDate.Option(gitcmd.String("format:%Y")),
		)
		require.Equal(t, []string{"log", "--format=%H", "--date=format:%Y"}, args)
	})

	t.Run("default separator emits flag and value separately", func(t *testing.T) {
		args := gitcmd.Log.Args(gitcmd.LogMaxCount.Option(gitcmd.Int(5)))
		require.Equal(t, []string{"log", "-n", "5"}, args)
	})

	t.Run("positionals sorted by position regardless of supplied order", func(t *testing.T) {
		args := gitcmd.Mv.Args(
			gitcmd.MvDestination.Option(gitcmd.String("new.txt")),
			gitcmd.MvSource.Option(gitcmd.String("old.txt")),
		)
		require.Equal(t, []string{"mv", "old.txt", "new.txt"}, args)
	})

	t.Run("non-positionals keep their supplied order", func(t *testing.T) {
		args := gitcmd.Clone.Args(
			gitcmd.CloneBare.Option(gitcmd.Bool(true)),
			gitcmd.CloneQuiet.Option(gitcmd.Bool(true)),
			gitcmd.CloneRepository.Option(gitcmd.String("https://example.com/repo.git")),
		)
		require.Equal(t, []string{"clone", "--bare", "-q", "https://example.com/repo.git"}, args)
	})

	t.Run("same options serialize identically every time", func(t *testing.T) {
		options := []gitcmd.Option{
			gitcmd.PushVerbose.Option(gitcmd.Bool(true)),
			gitcmd.PushRepository.Option(gitcmd.String("origin")),
			gitcmd.PushRefspec.Option(gitcmd.String("main:main")),
		}
		first := gitcmd.Push.Args(options...)
		second := gitcmd.Push.Args(options...)
		require.Equal(t, first, second)
		require.Equal(t, []string{"push", "-v", "origin", "main:main"}, first)
	})
}
