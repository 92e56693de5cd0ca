package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func trackerRepo(t *testing.T, ignorePatterns string) *Repository {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	return &Repository{
		paths:  NewPaths(root),
		ignore: ParseIgnore(filepath.Join(root, ".gitignore"), ignorePatterns),
	}
}

func writeWorktreeFile(t *testing.T, r *Repository, name, content string) {
	t.Helper()
	path := filepath.Join(r.paths.Root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCommitTrackerChanges(t *testing.T) {
	t.Run("classifies added, modified and removed paths", func(t *testing.T) {
		r := trackerRepo(t, "")
		writeWorktreeFile(t, r, "kept.txt", "same")
		writeWorktreeFile(t, r, "changed.txt", "before")
		writeWorktreeFile(t, r, "gone.txt", "bye")

		tracker, err := r.TrackChanges()
		require.NoError(t, err)

		writeWorktreeFile(t, r, "changed.txt", "after")
		writeWorktreeFile(t, r, "sub/new.txt", "hello")
		require.NoError(t, os.Remove(filepath.Join(r.paths.Root, "gone.txt")))

		changes, err := tracker.Changes()
		require.NoError(t, err)
		require.Equal(t, []string{"sub/new.txt"}, changes.Added)
		require.Equal(t, []string{"changed.txt"}, changes.Modified)
		require.Equal(t, []string{"gone.txt"}, changes.Removed)
		require.Empty(t, changes.Excluded)
		require.False(t, changes.Empty())
	})

	t.Run("ignored paths are reported as excluded, never staged", func(t *testing.T) {
		r := trackerRepo(t, "*.log\n")
		tracker, err := r.TrackChanges()
		require.NoError(t, err)

		writeWorktreeFile(t, r, "debug.log", "noise")
		writeWorktreeFile(t, r, "code.go", "package main")

		changes, err := tracker.Changes()
		require.NoError(t, err)
		require.Equal(t, []string{"code.go"}, changes.Added)
		require.Equal(t, []string{"debug.log"}, changes.Excluded)
	})

	t.Run("an unchanged worktree is empty", func(t *testing.T) {
		r := trackerRepo(t, "")
		writeWorktreeFile(t, r, "stable.txt", "content")

		tracker, err := r.TrackChanges()
		require.NoError(t, err)

		changes, err := tracker.Changes()
		require.NoError(t, err)
		require.True(t, changes.Empty())
	})

	t.Run("the .git directory is never snapshotted", func(t *testing.T) {
		r := trackerRepo(t, "")
		tracker, err := r.TrackChanges()
		require.NoError(t, err)

		writeWorktreeFile(t, r, ".git/gitkit.log", "internal")

		changes, err := tracker.Changes()
		require.NoError(t, err)
		require.True(t, changes.Empty())
	})
}
