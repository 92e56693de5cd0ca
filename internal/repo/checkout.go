package repo

import (
	"context"
)

// CheckoutScope switches to a branch for the duration of a scoped block and
// restores the previously active branch on Close. Close is idempotent, so it
// is safe to defer it and also call it explicitly on the success path.
type CheckoutScope struct {
	repo     *Repository
	previous string
	closed   bool
}

// EnterBranch switches to the given branch and returns a scope that restores
// the branch that was active before the switch.
func (r *Repository) EnterBranch(ctx context.Context, branch string) (*CheckoutScope, error) {
	previous := ""
	if r.activeBranch != nil {
		previous = r.activeBranch.Name
	}
	if err := r.Checkout(ctx, branch); err != nil {
		return nil, err
	}
	return &CheckoutScope{repo: r, previous: previous}, nil
}

// Branch returns the name of the branch that will be restored on Close. It is
// empty when HEAD was detached at scope entry.
func (s *CheckoutScope) Branch() string {
	return s.previous
}

// Close switches back to the branch active at scope entry. A detached-HEAD
// entry state leaves the current branch in place.
func (s *CheckoutScope) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.previous == "" {
		return nil
	}
	return s.repo.Checkout(ctx, s.previous)
}
