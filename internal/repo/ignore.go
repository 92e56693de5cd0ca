package repo

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Ignore is the parsed .gitignore of a repository. Patterns keep their file
// order; blank lines and comments are dropped on load and not written back.
type Ignore struct {
	path     string
	patterns []string
	matcher  gitignore.Matcher
}

// LoadIgnore reads the ignore file at the given path. A missing file yields
// an empty, savable Ignore.
func LoadIgnore(path string) (*Ignore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newIgnore(path, nil), nil
		}
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}
	return ParseIgnore(path, string(raw)), nil
}

// ParseIgnore builds an Ignore from raw file content
func ParseIgnore(path, content string) *Ignore {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return newIgnore(path, patterns)
}

func newIgnore(path string, patterns []string) *Ignore {
	compiled := make([]gitignore.Pattern, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, gitignore.ParsePattern(pattern, nil))
	}
	return &Ignore{
		path:     path,
		patterns: patterns,
		matcher:  gitignore.NewMatcher(compiled),
	}
}

// Path returns the location of the ignore file
func (i *Ignore) Path() string {
	return i.path
}

// Patterns returns the patterns in file order
func (i *Ignore) Patterns() []string {
	return i.patterns
}

// Matches reports whether a path relative to the repository root is excluded
func (i *Ignore) Matches(relPath string, isDir bool) bool {
	return i.matcher.Match(strings.Split(strings.TrimPrefix(relPath, "/"), "/"), isDir)
}

// Equal reports whether both ignore files hold the same patterns in the same
// order.
func (i *Ignore) Equal(other *Ignore) bool {
	if other == nil || len(i.patterns) != len(other.patterns) {
		return false
	}
	for n, pattern := range i.patterns {
		if other.patterns[n] != pattern {
			return false
		}
	}
	return true
}

// Save writes the patterns back to the ignore file, one per line
func (i *Ignore) Save() error {
	content := strings.Join(i.patterns, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(i.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write ignore file: %w", err)
	}
	return nil
}
