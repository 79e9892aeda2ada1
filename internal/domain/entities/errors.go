package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotARepository indicates no repository encloses the given path.
	ErrNotARepository = errors.New("not a git repository")

	// ErrInvalidPath indicates the path cannot address a file inside the repository.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNothingToRevert indicates the file exists in neither HEAD nor its parent.
	ErrNothingToRevert = errors.New("nothing to revert")

	// ErrNothingToPreserve indicates the file exists nowhere, so nothing can be stashed.
	ErrNothingToPreserve = errors.New("nothing to preserve")

	// ErrNotFoundAtRevision indicates the path (or the revision itself) does not exist.
	ErrNotFoundAtRevision = errors.New("not found at revision")

	// ErrCancelled indicates the user declined a prompt that gates the whole invocation.
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoPaths indicates a batch was invoked without any file.
	ErrNoPaths = errors.New("no files given")

	// ErrUnsupportedGitVersion indicates the git binary is too old for an operation.
	ErrUnsupportedGitVersion = errors.New("unsupported git version")
)

// Step names the stage of an operation that failed.
type Step string

const (
	StepClassify        Step = "classify"
	StepRestore         Step = "restore"
	StepRemove          Step = "remove"
	StepSnapshot        Step = "snapshot"
	StepRewrite         Step = "rewrite"
	StepRematerialize   Step = "rematerialize"
	StepDiscardSnapshot Step = "discard-snapshot"
	StepStash           Step = "stash"
)

// RevertFailedError is returned by the plain revert of a single file.
type RevertFailedError struct {
	Step Step
	Path string
	Err  error
}

func (e *RevertFailedError) Error() string {
	return fmt.Sprintf("revert %s failed at %s: %v", e.Path, e.Step, e.Err)
}

func (e *RevertFailedError) Unwrap() error { return e.Err }

// RevertAndStashFailedError is returned by the stash-preserving revert of a single file.
type RevertAndStashFailedError struct {
	Step Step
	Path string
	Err  error
}

func (e *RevertAndStashFailedError) Error() string {
	return fmt.Sprintf("revert and stash %s failed at %s: %v", e.Path, e.Step, e.Err)
}

func (e *RevertAndStashFailedError) Unwrap() error { return e.Err }

// CommandError wraps a failed git invocation with its arguments and stderr.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }
