package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRefspec(t *testing.T) {
	t.Run("splits on the delimiter", func(t *testing.T) {
		refspec, err := ParseRefspec("main:refs/heads/main")
		require.NoError(t, err)
		require.Equal(t, "main", refspec.Source)
		require.Equal(t, "refs/heads/main", refspec.Destination)
		require.Equal(t, "main:refs/heads/main", refspec.Raw())
	})

	t.Run("rejects a value without a delimiter", func(t *testing.T) {
		_, err := ParseRefspec("main")
		require.Error(t, err)
	})
}

func TestParsePathMapping(t *testing.T) {
	mapping, err := ParsePathMapping(" old.txt : new.txt ")
	require.NoError(t, err)
	require.Equal(t, "old.txt", mapping.Source)
	require.Equal(t, "new.txt", mapping.Destination)
}

func TestBranchPaths(t *testing.T) {
	require.Equal(t, "refs/heads/feature/login", NewBranch("feature/login", "1111111").Path)
	require.Equal(t, "refs/remotes/origin/main", NewRemoteBranch("origin", "main", "1111111").Path)
}

func TestTagRegistration(t *testing.T) {
	t.Run("registers on a known commit", func(t *testing.T) {
		commits := NewCommits()
		commit := &Commit{Hash: "1111111"}
		commits.Add(commit)

		tag := NewLightweightTag("v1", "1111111", commits)
		require.Len(t, commit.Tags, 1)
		require.Same(t, tag, commit.Tags[0])
	})

	t.Run("tolerates an unknown commit", func(t *testing.T) {
		tag := NewAnnotatedTag("v1", "deadbeef", Author{Name: "Alice"}, "msg", NewCommits())
		require.Equal(t, "deadbeef", tag.CommitHash)
	})
}
