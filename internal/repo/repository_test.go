package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

func TestOpenErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
		require.ErrorIs(t, err, gitkiterrors.ErrRepositoryNotFound)
	})

	t.Run("directory without a .git dir", func(t *testing.T) {
		_, err := Open(context.Background(), t.TempDir(), nil)
		require.ErrorIs(t, err, gitkiterrors.ErrNotARepository)
	})

	t.Run("a .git file is not a repository directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere"), 0o644))
		_, err := Open(context.Background(), root, nil)
		require.ErrorIs(t, err, gitkiterrors.ErrNotARepository)
	})
}

func TestRelPath(t *testing.T) {
	root := t.TempDir()
	r := &Repository{paths: NewPaths(root)}

	require.Equal(t, "sub/file.txt", r.relPath(filepath.Join(root, "sub", "file.txt")))
	require.Equal(t, "already/relative.txt", r.relPath("already/relative.txt"))

	outside := filepath.Join(filepath.Dir(root), "elsewhere.txt")
	require.Equal(t, filepath.ToSlash(outside), r.relPath(outside))
}
