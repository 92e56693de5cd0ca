package repo

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Changes is the classified difference between two worktree snapshots. Paths
// are repository-root relative with forward slashes, sorted.
type Changes struct {
	Added    []string
	Modified []string
	Removed  []string
	Excluded []string
}

// Empty reports whether no stageable change was detected. Excluded paths do
// not count.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Modified) == 0 && len(c.Removed) == 0
}

// CommitTracker snapshots the worktree content at creation time and, on
// Commit, classifies everything that changed since, stages it, and records a
// commit. Paths matching the ignore patterns are reported but never staged.
type CommitTracker struct {
	repo   *Repository
	before map[string]string
}

// TrackChanges takes a content snapshot of the worktree to diff against later
func (r *Repository) TrackChanges() (*CommitTracker, error) {
	before, err := snapshotWorktree(r.paths.Root)
	if err != nil {
		return nil, err
	}
	return &CommitTracker{repo: r, before: before}, nil
}

// Changes classifies the worktree against the snapshot without staging or
// committing anything.
func (t *CommitTracker) Changes() (Changes, error) {
	after, err := snapshotWorktree(t.repo.paths.Root)
	if err != nil {
		return Changes{}, err
	}
	return t.classify(after), nil
}

// Commit stages every detected change and records a commit with the given
// message. Nothing is staged or committed when the worktree is unchanged; the
// classification is returned either way.
func (t *CommitTracker) Commit(ctx context.Context, message string) (Changes, error) {
	changes, err := t.Changes()
	if err != nil {
		return Changes{}, err
	}
	if changes.Empty() {
		return changes, nil
	}
	if paths := append(append([]string{}, changes.Added...), changes.Modified...); len(paths) > 0 {
		if _, err := t.repo.Add(ctx, paths); err != nil {
			return changes, err
		}
	}
	if len(changes.Removed) > 0 {
		if _, err := t.repo.Rm(ctx, changes.Removed); err != nil {
			return changes, err
		}
	}
	if err := t.repo.CommitChanges(ctx, message); err != nil {
		return changes, err
	}
	t.before = nil
	return changes, nil
}

func (t *CommitTracker) classify(after map[string]string) Changes {
	var changes Changes
	ignore := t.repo.ignore
	for path, hash := range after {
		if ignore.Matches(path, false) {
			if t.before[path] != hash {
				changes.Excluded = append(changes.Excluded, path)
			}
			continue
		}
		previous, existed := t.before[path]
		switch {
		case !existed:
			changes.Added = append(changes.Added, path)
		case previous != hash:
			changes.Modified = append(changes.Modified, path)
		}
	}
	for path := range t.before {
		if _, exists := after[path]; exists {
			continue
		}
		if ignore.Matches(path, false) {
			changes.Excluded = append(changes.Excluded, path)
			continue
		}
		changes.Removed = append(changes.Removed, path)
	}
	sort.Strings(changes.Added)
	sort.Strings(changes.Modified)
	sort.Strings(changes.Removed)
	sort.Strings(changes.Excluded)
	return changes
}

// snapshotWorktree hashes every regular file under root, keyed by the
// root-relative slash path. The .git directory is skipped.
func snapshotWorktree(root string) (map[string]string, error) {
	snapshot := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		hash, err := hashFile(path)
		if err != nil {
			return err
		}
		snapshot[filepath.ToSlash(rel)] = hash
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	digest := md5.New()
	if _, err := io.Copy(digest, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
