package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
	"gitkit.dev/gitkit/internal/gitcmd"
)

// RefreshScope selects which parts of the repository state a Refresh reloads
type RefreshScope uint8

const (
	// RefreshActiveBranch reloads the HEAD pointer
	RefreshActiveBranch RefreshScope = 1 << iota
	// RefreshBranches reloads loose and packed branch refs
	RefreshBranches
	// RefreshCommits reloads the commit arena from git log
	RefreshCommits
	// RefreshTags reloads the tag list from git for-each-ref
	RefreshTags
	// RefreshRemotes reloads the remotes from the config file
	RefreshRemotes

	// RefreshAll reloads everything
	RefreshAll = RefreshActiveBranch | RefreshBranches | RefreshCommits | RefreshTags | RefreshRemotes
)

// Repository is the facade over one working tree. State accessors return the
// snapshot taken by the last Refresh; mutating operations refresh the parts
// they invalidate before returning.
type Repository struct {
	paths  Paths
	runner *gitcmd.Runner
	logger *slog.Logger

	config        *Config
	ignore        *Ignore
	defaultAuthor Author

	activeBranch *Branch
	branches     *Branches
	commits      *Commits
	tags         *Tags
	remotes      *Remotes
}

// Open opens an existing repository rooted at the given working tree path and
// loads a full state snapshot. The logger, when non-nil, receives progress
// lines from long-running commands.
func Open(ctx context.Context, root string, logger *slog.Logger) (*Repository, error) {
	paths := NewPaths(root)
	if _, err := os.Stat(paths.Root); err != nil {
		return nil, fmt.Errorf("%w: %s", gitkiterrors.ErrRepositoryNotFound, root)
	}
	if info, err := os.Stat(paths.GitDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", gitkiterrors.ErrNotARepository, root)
	}

	config, err := LoadConfig(paths.ConfigDir)
	if err != nil {
		return nil, err
	}
	ignore, err := LoadIgnore(paths.Ignore)
	if err != nil {
		return nil, err
	}

	r := &Repository{
		paths:  paths,
		runner: gitcmd.NewRunner(paths.Root),
		logger: logger,
		config: config,
		ignore: ignore,
		defaultAuthor: Author{
			Name:  config.Get("user", "name"),
			Email: config.Get("user", "email"),
		},
		branches: NewBranches(),
		commits:  NewCommits(),
		tags:     NewTags(),
		remotes:  NewRemotes(),
	}
	if err := r.reconcileIgnore(ctx); err != nil {
		return nil, err
	}
	if err := r.Refresh(ctx, RefreshAll); err != nil {
		return nil, err
	}
	return r, nil
}

// Init creates a new repository at the given path and opens it. Extra schema
// options (bare, quiet, initial-branch) are passed through to git init.
func Init(ctx context.Context, root string, logger *slog.Logger, options ...gitcmd.Option) (*Repository, error) {
	runner := gitcmd.NewRunner(filepath.Dir(root))
	options = append(options, gitcmd.InitDirectory.Option(gitcmd.String(root)))
	if _, err := runner.Execute(ctx, gitcmd.Init, options...); err != nil {
		return nil, gitkiterrors.NewOperationError("init", err)
	}
	return Open(ctx, root, logger)
}

// Clone clones a repository URL into the given directory and opens the
// result. Progress lines stream to the logger when one is set.
func Clone(ctx context.Context, url, directory string, logger *slog.Logger, options ...gitcmd.Option) (*Repository, error) {
	runner := gitcmd.NewRunner(filepath.Dir(directory))
	runner.SetLogger(logger)
	options = append(options,
		gitcmd.CloneRepository.Option(gitcmd.String(url)),
		gitcmd.CloneDirectory.Option(gitcmd.String(directory)),
	)
	if _, err := runner.Execute(ctx, gitcmd.Clone, options...); err != nil {
		return nil, gitkiterrors.NewOperationError("clone", err)
	}
	return Open(ctx, directory, logger)
}

// Refresh reloads the selected parts of the state snapshot. Tags depend on
// the commit arena, so refreshing tags together with commits parses commits
// first.
func (r *Repository) Refresh(ctx context.Context, scope RefreshScope) error {
	if scope&RefreshActiveBranch != 0 {
		name, hash, err := ActiveBranch(r.paths)
		if err != nil {
			return err
		}
		if name == "" {
			r.activeBranch = nil
		} else {
			r.activeBranch = NewBranch(name, hash)
		}
	}
	if scope&RefreshBranches != 0 {
		branches, err := AllBranches(r.paths)
		if err != nil {
			return err
		}
		r.branches = branches
	}
	if scope&RefreshCommits != 0 {
		if err := r.refreshCommits(ctx); err != nil {
			return err
		}
	}
	if scope&RefreshTags != 0 {
		if err := r.refreshTags(ctx); err != nil {
			return err
		}
	}
	if scope&RefreshRemotes != 0 {
		r.remotes = r.config.Remotes()
	}
	return nil
}

// refreshCommits parses the full history across all refs. A freshly
// initialized repository has no HEAD to log from and git exits non-zero; that
// case normalizes to an empty commit collection rather than an error.
func (r *Repository) refreshCommits(ctx context.Context) error {
	output, err := r.runner.Execute(ctx, gitcmd.Log,
		gitcmd.LogAll.Option(gitcmd.Bool(true)),
		gitcmd.LogFormat.Option(gitcmd.String(logFormat)),
		gitcmd.LogDate.Option(gitcmd.String("format:"+logDateFormat)),
	)
	if err != nil {
		var cmdErr *gitkiterrors.CommandError
		if errors.As(err, &cmdErr) {
			r.commits = NewCommits()
			return nil
		}
		return gitkiterrors.NewOperationError("log", err)
	}
	commits, err := ParseCommits(output)
	if err != nil {
		return gitkiterrors.NewOperationError("log", err)
	}
	r.commits = commits
	return nil
}

func (r *Repository) refreshTags(ctx context.Context) error {
	output, err := r.runner.Execute(ctx, gitcmd.ForEachRef,
		gitcmd.ForEachRefFormat.Option(gitcmd.String(tagFormat)),
		gitcmd.ForEachRefPattern.Option(gitcmd.String(tagsPattern)),
	)
	if err != nil {
		return gitkiterrors.NewOperationError("for-each-ref", err)
	}
	r.tags = ParseTags(output, r.commits)
	return nil
}

// reconcileIgnore compares the worktree .gitignore against the committed
// HEAD:.gitignore blob. The committed content wins on drift so that exclusion
// decisions match what the repository actually tracks. A repository without a
// committed ignore file keeps the worktree version.
func (r *Repository) reconcileIgnore(ctx context.Context) error {
	output, err := r.runner.Execute(ctx, gitcmd.Show,
		gitcmd.ShowObjects.Option(gitcmd.Strings("HEAD:"+filepath.Base(r.paths.Ignore))),
	)
	if err != nil {
		var cmdErr *gitkiterrors.CommandError
		if errors.As(err, &cmdErr) {
			return nil
		}
		return gitkiterrors.NewOperationError("show", err)
	}
	committed := ParseIgnore(r.paths.Ignore, output)
	if !committed.Equal(r.ignore) {
		r.ignore = committed
	}
	return nil
}

// CommitsFor returns the history of one revision, optionally narrowed to a
// path, without touching the repository snapshot.
func (r *Repository) CommitsFor(ctx context.Context, revision, path string, options ...gitcmd.Option) (*Commits, error) {
	options = append(options,
		gitcmd.LogFormat.Option(gitcmd.String(logFormat)),
		gitcmd.LogDate.Option(gitcmd.String("format:"+logDateFormat)),
	)
	if revision != "" {
		options = append(options, gitcmd.LogRevisionRange.Option(gitcmd.String(revision)))
	}
	if path != "" {
		options = append(options, gitcmd.LogPath.Option(gitcmd.String(path)))
	}
	output, err := r.runner.Execute(ctx, gitcmd.Log, options...)
	if err != nil {
		return nil, gitkiterrors.NewOperationError("log", err)
	}
	commits, err := ParseCommits(output)
	if err != nil {
		return nil, gitkiterrors.NewOperationError("log", err)
	}
	return commits, nil
}

// Paths returns the repository's well-known locations
func (r *Repository) Paths() Paths {
	return r.paths
}

// Root returns the working tree root
func (r *Repository) Root() string {
	return r.paths.Root
}

// Config returns the parsed configuration file
func (r *Repository) Config() *Config {
	return r.config
}

// Ignore returns the effective ignore patterns
func (r *Repository) Ignore() *Ignore {
	return r.ignore
}

// DefaultAuthor returns the author resolved from user.name and user.email at
// open time. Fields are empty when the config does not set them.
func (r *Repository) DefaultAuthor() Author {
	return r.defaultAuthor
}

// ActiveBranch returns the branch HEAD points at, or nil when HEAD is
// detached.
func (r *Repository) ActiveBranch() *Branch {
	return r.activeBranch
}

// Branches returns the branch snapshot
func (r *Repository) Branches() *Branches {
	return r.branches
}

// Commits returns the commit arena snapshot, ordered oldest first
func (r *Repository) Commits() *Commits {
	return r.commits
}

// Head returns the commit the active branch points at, or nil
func (r *Repository) Head() *Commit {
	if r.activeBranch == nil || r.activeBranch.CommitHash == "" {
		return nil
	}
	return r.commits.Get(r.activeBranch.CommitHash)
}

// Tags returns the tag snapshot
func (r *Repository) Tags() *Tags {
	return r.tags
}

// Remotes returns the remotes parsed from the config file
func (r *Repository) Remotes() *Remotes {
	return r.remotes
}
