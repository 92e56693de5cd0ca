// Package errors provides sentinel errors and custom error types for gitkit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for schema validation failures
var (
	// ErrUnknownOption indicates that a supplied option matched no definition
	ErrUnknownOption = errors.New("unknown option")

	// ErrInvalidChoice indicates that an option value is not on the choices list
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidPositionalDefinition indicates a malformed command schema
	ErrInvalidPositionalDefinition = errors.New("invalid positional definition")

	// ErrMissingRequiredOptions indicates that required options were not supplied
	ErrMissingRequiredOptions = errors.New("missing required options")
)

// Sentinel errors for repository construction
var (
	// ErrRepositoryNotFound indicates that the repository path does not exist
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrNotARepository indicates that the path lacks a .git directory
	ErrNotARepository = errors.New("not a git repository")
)

// UnknownOptionError reports an option that has no matching definition,
// citing the option's name and the kind of value it carried.
type UnknownOptionError struct {
	Name string
	Kind string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("no definition for option %q of type %q", e.Name, e.Kind)
}

// Is returns true if the target error is ErrUnknownOption
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

// NewUnknownOptionError creates a new UnknownOptionError
func NewUnknownOptionError(name, kind string) *UnknownOptionError {
	return &UnknownOptionError{Name: name, Kind: kind}
}

// InvalidChoiceError reports an option value outside the allowed choice set
type InvalidChoiceError struct {
	Name    string
	Value   string
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("value %q for option %q is not on choices list [%s]",
		e.Value, e.Name, strings.Join(e.Choices, ", "))
}

// Is returns true if the target error is ErrInvalidChoice
func (e *InvalidChoiceError) Is(target error) bool {
	return target == ErrInvalidChoice
}

// NewInvalidChoiceError creates a new InvalidChoiceError
func NewInvalidChoiceError(name, value string, choices []string) *InvalidChoiceError {
	return &InvalidChoiceError{Name: name, Value: value, Choices: choices}
}

// InvalidPositionalDefinitionError reports a schema where a list-kind
// positional definition does not occupy the last position. This is a
// programming error in the schema, not a runtime condition.
type InvalidPositionalDefinitionError struct {
	Aliases string
}

func (e *InvalidPositionalDefinitionError) Error() string {
	return fmt.Sprintf("positional option [%s] of list kind can only be defined as the last option", e.Aliases)
}

// Is returns true if the target error is ErrInvalidPositionalDefinition
func (e *InvalidPositionalDefinitionError) Is(target error) bool {
	return target == ErrInvalidPositionalDefinition
}

// NewInvalidPositionalDefinitionError creates a new InvalidPositionalDefinitionError
func NewInvalidPositionalDefinitionError(aliases string) *InvalidPositionalDefinitionError {
	return &InvalidPositionalDefinitionError{Aliases: aliases}
}

// MissingRequiredOptionsError reports required definitions that no supplied
// option satisfied. Each entry is an alias group joined by "|".
type MissingRequiredOptionsError struct {
	Missing []string
}

func (e *MissingRequiredOptionsError) Error() string {
	return fmt.Sprintf("some required options are missing %s", strings.Join(e.Missing, ", "))
}

// Is returns true if the target error is ErrMissingRequiredOptions
func (e *MissingRequiredOptionsError) Is(target error) bool {
	return target == ErrMissingRequiredOptions
}

// NewMissingRequiredOptionsError creates a new MissingRequiredOptionsError
func NewMissingRequiredOptionsError(missing []string) *MissingRequiredOptionsError {
	return &MissingRequiredOptionsError{Missing: missing}
}

// CommandError represents a git subprocess that exited non-zero. Stderr
// carries the tool's decoded error text verbatim.
type CommandError struct {
	Tool     string
	Args     []string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s command failed", e.Tool)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(": %s %s", e.Tool, strings.Join(e.Args, " "))
	}
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(tool string, args []string, stderr string, exitCode int, err error) *CommandError {
	return &CommandError{
		Tool:     tool,
		Args:     args,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// Sentinel errors for facade operations. Each facade method re-wraps the
// underlying CommandError so callers can catch failures by operation
// semantics rather than by generic execution failure.
var (
	ErrInitFailed       = errors.New("init failed")
	ErrCloneFailed      = errors.New("clone failed")
	ErrAddFailed        = errors.New("add failed")
	ErrMvFailed         = errors.New("mv failed")
	ErrRmFailed         = errors.New("rm failed")
	ErrPullFailed       = errors.New("pull failed")
	ErrPushFailed       = errors.New("push failed")
	ErrShowFailed       = errors.New("show failed")
	ErrConfigFailed     = errors.New("config failed")
	ErrCheckoutFailed   = errors.New("checkout failed")
	ErrCommitFailed     = errors.New("commit failed")
	ErrLogFailed        = errors.New("log failed")
	ErrForEachRefFailed = errors.New("for-each-ref failed")
)

var operationSentinels = map[string]error{
	"init":         ErrInitFailed,
	"clone":        ErrCloneFailed,
	"add":          ErrAddFailed,
	"mv":           ErrMvFailed,
	"rm":           ErrRmFailed,
	"pull":         ErrPullFailed,
	"push":         ErrPushFailed,
	"show":         ErrShowFailed,
	"config":       ErrConfigFailed,
	"checkout":     ErrCheckoutFailed,
	"commit":       ErrCommitFailed,
	"log":          ErrLogFailed,
	"for-each-ref": ErrForEachRefFailed,
}

// OperationError wraps an execution failure with the facade operation that
// produced it, preserving the original message.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is returns true if the target is the sentinel for this operation
func (e *OperationError) Is(target error) bool {
	sentinel, ok := operationSentinels[e.Op]
	return ok && target == sentinel
}

// NewOperationError creates a new OperationError
func NewOperationError(op string, err error) *OperationError {
	return &OperationError{Op: op, Err: err}
}
