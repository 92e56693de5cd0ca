package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIgnore(t *testing.T) {
	t.Run("drops comments and blank lines", func(t *testing.T) {
		ignore := ParseIgnore("", "# build artifacts\n\n*.log\nbuild/\n   \n")
		require.Equal(t, []string{"*.log", "build/"}, ignore.Patterns())
	})

	t.Run("matches paths against the patterns", func(t *testing.T) {
		ignore := ParseIgnore("", "*.log\nbuild/\n")
		require.True(t, ignore.Matches("app.log", false))
		require.True(t, ignore.Matches("logs/app.log", false))
		require.True(t, ignore.Matches("build", true))
		require.False(t, ignore.Matches("main.go", false))
	})

	t.Run("missing file loads empty", func(t *testing.T) {
		ignore, err := LoadIgnore(filepath.Join(t.TempDir(), ".gitignore"))
		require.NoError(t, err)
		require.Empty(t, ignore.Patterns())
		require.False(t, ignore.Matches("anything.txt", false))
	})

	t.Run("save and reload round-trips the patterns", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".gitignore")
		require.NoError(t, os.WriteFile(path, []byte("*.tmp\n# junk\nvendor/\n"), 0o644))

		ignore, err := LoadIgnore(path)
		require.NoError(t, err)
		require.NoError(t, ignore.Save())

		reloaded, err := LoadIgnore(path)
		require.NoError(t, err)
		require.True(t, ignore.Equal(reloaded))
		require.Equal(t, []string{"*.tmp", "vendor/"}, reloaded.Patterns())
	})

	t.Run("equality is order-sensitive", func(t *testing.T) {
		a := ParseIgnore("", "*.log\nbuild/\n")
		b := ParseIgnore("", "build/\n*.log\n")
		require.False(t, a.Equal(b))
		require.True(t, a.Equal(ParseIgnore("", "*.log\nbuild/")))
	})
}
