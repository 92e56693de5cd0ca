// Package repo provides the repository facade: it reads on-disk repository
// state and git command output into commit/branch/tag models and exposes the
// high-level operations (init, clone, add, mv, rm, pull, push, checkout,
// commit) built on the gitcmd schema layer.
package repo

import (
	"fmt"
	"strings"
	"time"
)

// Author identifies a commit author or tagger
type Author struct {
	Name  string
	Email string
}

// Commit is one parsed commit. Parent linkage is kept as a hash key resolved
// through the Commits arena rather than an embedded pointer, since several
// branches and tags may reference the same commit.
type Commit struct {
	Hash       string
	Message    string
	Author     Author
	Date       time.Time
	ParentHash string
	Tags       []*Tag
}

// addTag registers a tag on this commit's tag list
func (c *Commit) addTag(tag *Tag) {
	c.Tags = append(c.Tags, tag)
}

// Commits is an insertion-ordered collection of commits indexable by hash.
// A new generation is built on every refresh; instances are never mutated in
// place after parsing.
type Commits struct {
	ordered []*Commit
	byHash  map[string]*Commit
}

// NewCommits creates an empty commit collection
func NewCommits() *Commits {
	return &Commits{byHash: make(map[string]*Commit)}
}

// Add appends a commit and indexes it by hash
func (c *Commits) Add(commit *Commit) {
	c.ordered = append(c.ordered, commit)
	c.byHash[commit.Hash] = commit
}

// Get returns the commit with the given hash, or nil
func (c *Commits) Get(hash string) *Commit {
	return c.byHash[hash]
}

// Parent resolves a commit's parent through the arena, or nil for a root
// commit or a parent outside the parsed set.
func (c *Commits) Parent(commit *Commit) *Commit {
	if commit == nil || commit.ParentHash == "" {
		return nil
	}
	return c.byHash[commit.ParentHash]
}

// All returns the commits in insertion order (oldest first as parsed)
func (c *Commits) All() []*Commit {
	return c.ordered
}

// Len returns the number of commits
func (c *Commits) Len() int {
	return len(c.ordered)
}

// Branch is a named pointer to a commit. CommitHash may be empty for a
// branch with no commits yet.
type Branch struct {
	Name       string
	Path       string
	CommitHash string
}

// NewBranch creates a local branch with its refs/heads path
func NewBranch(name, commitHash string) *Branch {
	return &Branch{
		Name:       name,
		Path:       "refs/heads/" + name,
		CommitHash: commitHash,
	}
}

// NewRemoteBranch creates a remote-tracking branch
func NewRemoteBranch(remote, name, commitHash string) *Branch {
	return &Branch{
		Name:       name,
		Path:       "refs/remotes/" + remote + "/" + name,
		CommitHash: commitHash,
	}
}

// Branches is an insertion-ordered collection of branches
type Branches struct {
	ordered []*Branch
}

// NewBranches creates a branch collection
func NewBranches(branches ...*Branch) *Branches {
	return &Branches{ordered: branches}
}

// Add appends a branch
func (b *Branches) Add(branch *Branch) {
	b.ordered = append(b.ordered, branch)
}

// ByName returns the first branch with the given name, or nil
func (b *Branches) ByName(name string) *Branch {
	for _, branch := range b.ordered {
		if branch.Name == name {
			return branch
		}
	}
	return nil
}

// Has reports whether a branch with the given name exists
func (b *Branches) Has(name string) bool {
	return b.ByName(name) != nil
}

// All returns the branches in insertion order
func (b *Branches) All() []*Branch {
	return b.ordered
}

// Len returns the number of branches
func (b *Branches) Len() int {
	return len(b.ordered)
}

// Tag is a named pointer to a commit under refs/tags. An annotated tag
// additionally carries its tagger and message; a lightweight tag does not.
type Tag struct {
	Name       string
	Path       string
	CommitHash string
	Annotated  bool
	Tagger     Author
	Message    string
}

// NewLightweightTag creates a lightweight tag and registers it on its target
// commit's tag list when the commit is in the arena.
func NewLightweightTag(name, commitHash string, commits *Commits) *Tag {
	tag := &Tag{
		Name:       name,
		Path:       "refs/tags/" + name,
		CommitHash: commitHash,
	}
	register(tag, commits)
	return tag
}

// NewAnnotatedTag creates an annotated tag and registers it on its target
// commit's tag list when the commit is in the arena.
func NewAnnotatedTag(name, commitHash string, tagger Author, message string, commits *Commits) *Tag {
	tag := &Tag{
		Name:       name,
		Path:       "refs/tags/" + name,
		CommitHash: commitHash,
		Annotated:  true,
		Tagger:     tagger,
		Message:    message,
	}
	register(tag, commits)
	return tag
}

func register(tag *Tag, commits *Commits) {
	if commits == nil {
		return
	}
	if commit := commits.Get(tag.CommitHash); commit != nil {
		commit.addTag(tag)
	}
}

// Tags is an insertion-ordered collection of tags
type Tags struct {
	ordered []*Tag
}

// NewTags creates a tag collection
func NewTags(tags ...*Tag) *Tags {
	return &Tags{ordered: tags}
}

// Add appends a tag
func (t *Tags) Add(tag *Tag) {
	t.ordered = append(t.ordered, tag)
}

// ByName returns the first tag with the given name, or nil
func (t *Tags) ByName(name string) *Tag {
	for _, tag := range t.ordered {
		if tag.Name == name {
			return tag
		}
	}
	return nil
}

// All returns the tags in insertion order
func (t *Tags) All() []*Tag {
	return t.ordered
}

// Len returns the number of tags
func (t *Tags) Len() int {
	return len(t.ordered)
}

// Remote is a named remote repository URL from the config file
type Remote struct {
	Name string
	URL  string
}

// Remotes is an insertion-ordered collection of remotes
type Remotes struct {
	ordered []*Remote
}

// NewRemotes creates a remote collection
func NewRemotes(remotes ...*Remote) *Remotes {
	return &Remotes{ordered: remotes}
}

// ByName returns the first remote with the given name, or nil
func (r *Remotes) ByName(name string) *Remote {
	for _, remote := range r.ordered {
		if remote.Name == name {
			return remote
		}
	}
	return nil
}

// All returns the remotes in insertion order
func (r *Remotes) All() []*Remote {
	return r.ordered
}

// Len returns the number of remotes
func (r *Remotes) Len() int {
	return len(r.ordered)
}

// refspecDelimiter separates the source and destination of a refspec or a
// path mapping.
const refspecDelimiter = ":"

// Refspec is a source:destination ref mapping used for pull and push
type Refspec struct {
	Source      string
	Destination string
}

// ParseRefspec parses a "source:destination" refspec string
func ParseRefspec(raw string) (Refspec, error) {
	source, destination, ok := strings.Cut(raw, refspecDelimiter)
	if !ok {
		return Refspec{}, fmt.Errorf("invalid refspec %q: expected source:destination", raw)
	}
	return Refspec{
		Source:      strings.TrimSpace(source),
		Destination: strings.TrimSpace(destination),
	}, nil
}

// Raw returns the refspec in "source:destination" form
func (r Refspec) Raw() string {
	return r.Source + refspecDelimiter + r.Destination
}

// PathMapping is a source:destination file mapping for mv
type PathMapping struct {
	Source      string
	Destination string
}

// ParsePathMapping parses a "source:destination" mapping string
func ParsePathMapping(raw string) (PathMapping, error) {
	source, destination, ok := strings.Cut(strings.TrimSpace(raw), refspecDelimiter)
	if !ok {
		return PathMapping{}, fmt.Errorf("invalid path mapping %q: expected source:destination", raw)
	}
	return PathMapping{
		Source:      strings.TrimSpace(source),
		Destination: strings.TrimSpace(destination),
	}, nil
}
