package repo

import (
	"context"
	"path/filepath"
	"strings"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
	"gitkit.dev/gitkit/internal/gitcmd"
)

// streamingRunner returns a runner that forwards progress lines to the
// repository logger, for commands whose output is feedback rather than data.
func (r *Repository) streamingRunner() *gitcmd.Runner {
	runner := gitcmd.NewRunner(r.paths.Root)
	runner.SetLogger(r.logger)
	return runner
}

// Add stages the given paths one invocation at a time, in the supplied order.
// The batch aborts on the first failing path; the joined output of the
// invocations that did succeed is returned alongside the error.
func (r *Repository) Add(ctx context.Context, paths []string, options ...gitcmd.Option) (string, error) {
	var outputs []string
	for _, path := range paths {
		opts := append(append([]gitcmd.Option{}, options...),
			gitcmd.AddPathspec.Option(gitcmd.Strings(r.relPath(path))))
		output, err := r.runner.Execute(ctx, gitcmd.Add, opts...)
		if err != nil {
			return strings.Join(outputs, ""), gitkiterrors.NewOperationError("add", err)
		}
		outputs = append(outputs, output)
	}
	return strings.Join(outputs, ""), nil
}

// Mv renames each source to its destination, aborting on the first failure
func (r *Repository) Mv(ctx context.Context, mappings []PathMapping, options ...gitcmd.Option) error {
	for _, mapping := range mappings {
		opts := append(append([]gitcmd.Option{}, options...),
			gitcmd.MvSource.Option(gitcmd.String(r.relPath(mapping.Source))),
			gitcmd.MvDestination.Option(gitcmd.String(r.relPath(mapping.Destination))),
		)
		if _, err := r.runner.Execute(ctx, gitcmd.Mv, opts...); err != nil {
			return gitkiterrors.NewOperationError("mv", err)
		}
	}
	return nil
}

// Rm removes the given paths from the index and working tree in a single
// invocation, so a batch either fully applies or fully fails.
func (r *Repository) Rm(ctx context.Context, paths []string, options ...gitcmd.Option) (string, error) {
	rel := make([]string, 0, len(paths))
	for _, path := range paths {
		rel = append(rel, r.relPath(path))
	}
	options = append(options, gitcmd.RmPathspec.Option(gitcmd.Strings(rel...)))
	output, err := r.runner.Execute(ctx, gitcmd.Rm, options...)
	if err != nil {
		return "", gitkiterrors.NewOperationError("rm", err)
	}
	return output, nil
}

// Unstage removes paths from the index only, leaving the working tree intact
func (r *Repository) Unstage(ctx context.Context, paths ...string) error {
	rel := make([]string, 0, len(paths))
	for _, path := range paths {
		rel = append(rel, r.relPath(path))
	}
	_, err := r.runner.Execute(ctx, gitcmd.Rm,
		gitcmd.RmCached.Option(gitcmd.Bool(true)),
		gitcmd.RmQuiet.Option(gitcmd.Bool(true)),
		gitcmd.RmPathspec.Option(gitcmd.Strings(rel...)),
	)
	if err != nil {
		return gitkiterrors.NewOperationError("rm", err)
	}
	return nil
}

// Pull fetches and integrates from a remote. The refspec is optional;
// progress lines stream to the logger. The commit and branch snapshots are
// refreshed afterwards.
func (r *Repository) Pull(ctx context.Context, repository string, refspec *Refspec, options ...gitcmd.Option) error {
	if repository != "" {
		options = append(options, gitcmd.PullRepository.Option(gitcmd.String(repository)))
	}
	if refspec != nil {
		options = append(options, gitcmd.PullRefspec.Option(gitcmd.String(refspec.Raw())))
	}
	if _, err := r.streamingRunner().Execute(ctx, gitcmd.Pull, options...); err != nil {
		return gitkiterrors.NewOperationError("pull", err)
	}
	return r.Refresh(ctx, RefreshActiveBranch|RefreshBranches|RefreshCommits|RefreshTags)
}

// Push publishes refs to a remote. The refspec is optional; progress lines
// stream to the logger.
func (r *Repository) Push(ctx context.Context, repository string, refspec *Refspec, options ...gitcmd.Option) error {
	if repository != "" {
		options = append(options, gitcmd.PushRepository.Option(gitcmd.String(repository)))
	}
	if refspec != nil {
		options = append(options, gitcmd.PushRefspec.Option(gitcmd.String(refspec.Raw())))
	}
	if _, err := r.streamingRunner().Execute(ctx, gitcmd.Push, options...); err != nil {
		return gitkiterrors.NewOperationError("push", err)
	}
	return nil
}

// Checkout switches to an existing branch and refreshes the parts of the
// snapshot the switch invalidates.
func (r *Repository) Checkout(ctx context.Context, branch string, options ...gitcmd.Option) error {
	options = append(options, gitcmd.CheckoutBranch.Option(gitcmd.String(branch)))
	if _, err := r.runner.Execute(ctx, gitcmd.Checkout, options...); err != nil {
		return gitkiterrors.NewOperationError("checkout", err)
	}
	return r.Refresh(ctx, RefreshActiveBranch|RefreshBranches|RefreshCommits)
}

// CheckoutNew creates a branch and switches to it. The start point is
// optional and defaults to the current HEAD.
func (r *Repository) CheckoutNew(ctx context.Context, branch, startPoint string, options ...gitcmd.Option) error {
	options = append(options, gitcmd.CheckoutNewBranch.Option(gitcmd.String(branch)))
	if startPoint != "" {
		options = append(options, gitcmd.CheckoutStartPoint.Option(gitcmd.String(startPoint)))
	}
	if _, err := r.runner.Execute(ctx, gitcmd.Checkout, options...); err != nil {
		return gitkiterrors.NewOperationError("checkout", err)
	}
	return r.Refresh(ctx, RefreshActiveBranch|RefreshBranches|RefreshCommits)
}

// CommitChanges records the staged changes with the given message and
// refreshes the history snapshot.
func (r *Repository) CommitChanges(ctx context.Context, message string, options ...gitcmd.Option) error {
	options = append(options, gitcmd.CommitMessage.Option(gitcmd.String(message)))
	if _, err := r.runner.Execute(ctx, gitcmd.Commit, options...); err != nil {
		return gitkiterrors.NewOperationError("commit", err)
	}
	return r.Refresh(ctx, RefreshActiveBranch|RefreshBranches|RefreshCommits)
}

// ConfigValue reads one configuration key through git config, honoring
// includes and scope precedence the way git itself does.
func (r *Repository) ConfigValue(ctx context.Context, name string) (string, error) {
	output, err := r.runner.Execute(ctx, gitcmd.Config,
		gitcmd.ConfigName.Option(gitcmd.String(name)),
	)
	if err != nil {
		return "", gitkiterrors.NewOperationError("config", err)
	}
	return strings.TrimSpace(output), nil
}

// SetConfigValue writes one configuration key through git config and reloads
// the parsed config file.
func (r *Repository) SetConfigValue(ctx context.Context, name, value string) error {
	_, err := r.runner.Execute(ctx, gitcmd.Config,
		gitcmd.ConfigName.Option(gitcmd.String(name)),
		gitcmd.ConfigValue.Option(gitcmd.String(value)),
	)
	if err != nil {
		return gitkiterrors.NewOperationError("config", err)
	}
	config, err := LoadConfig(r.paths.ConfigDir)
	if err != nil {
		return err
	}
	r.config = config
	return nil
}

// relPath normalizes a path to the repository root. Absolute paths inside the
// working tree become root-relative; everything else passes through with
// forward slashes.
func (r *Repository) relPath(path string) string {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(r.paths.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
