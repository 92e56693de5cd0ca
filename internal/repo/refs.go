package repo

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Paths holds the well-known locations inside a repository working tree
type Paths struct {
	Root      string
	GitDir    string
	Ignore    string
	ConfigDir string
}

// NewPaths derives the repository paths from the working tree root
func NewPaths(root string) Paths {
	gitDir := filepath.Join(root, ".git")
	return Paths{
		Root:      root,
		GitDir:    gitDir,
		Ignore:    filepath.Join(root, ".gitignore"),
		ConfigDir: filepath.Join(gitDir, "config"),
	}
}

var (
	headPattern   = regexp.MustCompile(`^ref:\s*(refs/heads/(.*))$`)
	packedPattern = regexp.MustCompile(`^\s*([0-9a-fA-F]+)\s+refs/(heads|remotes/[A-Za-z0-9._-]+)/(.+)$`)
)

// ActiveBranch resolves the HEAD pointer file. When HEAD is a symbolic ref
// the branch name is returned together with the hash from the corresponding
// loose ref file; the hash is empty for a branch with no commits yet. A
// detached HEAD yields an empty name.
func ActiveBranch(paths Paths) (name, hash string, err error) {
	raw, err := os.ReadFile(filepath.Join(paths.GitDir, "HEAD"))
	if err != nil {
		return "", "", err
	}
	match := headPattern.FindStringSubmatch(strings.TrimSpace(string(raw)))
	if match == nil {
		return "", "", nil
	}
	name = match[2]
	refPath := filepath.Join(paths.GitDir, filepath.FromSlash(match[1]))
	refRaw, readErr := os.ReadFile(refPath)
	if readErr != nil {
		// Branch exists but has no loose ref yet.
		return name, "", nil
	}
	return name, strings.TrimSpace(string(refRaw)), nil
}

// LooseBranches enumerates the loose ref files under refs/heads. Every file
// is a branch named after its path relative to the heads directory, with the
// trimmed file content as its commit hash. OS metadata files are skipped.
func LooseBranches(paths Paths) (*Branches, error) {
	headsDir := filepath.Join(paths.GitDir, "refs", "heads")
	branches := NewBranches()
	err := filepath.WalkDir(headsDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || entry.Name() == ".DS_Store" {
			return nil
		}
		rel, err := filepath.Rel(headsDir, path)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		branches.Add(NewBranch(filepath.ToSlash(rel), strings.TrimSpace(string(raw))))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return branches, nil
		}
		return nil, err
	}
	return branches, nil
}

// PackedBranches parses the packed-refs table. A missing file yields an
// empty collection.
func PackedBranches(paths Paths) (*Branches, error) {
	raw, err := os.ReadFile(filepath.Join(paths.GitDir, "packed-refs"))
	if err != nil {
		if os.IsNotExist(err) {
			return NewBranches(), nil
		}
		return nil, err
	}
	branches := NewBranches()
	for _, line := range strings.Split(string(raw), "\n") {
		match := packedPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		hash, refType, name := match[1], match[2], match[3]
		if refType == "heads" {
			branches.Add(NewBranch(name, hash))
		} else {
			remote := strings.TrimPrefix(refType, "remotes/")
			branches.Add(NewRemoteBranch(remote, name, hash))
		}
	}
	return branches, nil
}

// AllBranches combines loose and packed branches. Loose refs take precedence
// over packed entries of the same name; packed entries are listed but never
// override.
func AllBranches(paths Paths) (*Branches, error) {
	branches, err := LooseBranches(paths)
	if err != nil {
		return nil, err
	}
	packed, err := PackedBranches(paths)
	if err != nil {
		return nil, err
	}
	for _, branch := range packed.All() {
		if !branches.Has(branch.Name) {
			branches.Add(branch)
		}
	}
	return branches, nil
}
