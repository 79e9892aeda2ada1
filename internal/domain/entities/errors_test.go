//go:build unit

package entities_test

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

func TestRevertFailedError(t *testing.T) {
	t.Parallel()

	t.Run("should name the path and the step and unwrap the cause", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.RevertFailedError{
			Step: entities.StepRestore,
			Path: "docs/a.md",
			Err:  entities.ErrNothingToRevert,
		}

		// when
		message := err.Error()

		// then
		assert.Equal(t, "revert docs/a.md failed at restore: nothing to revert", message)
		assert.ErrorIs(t, err, entities.ErrNothingToRevert)
	})
}

func TestRevertAndStashFailedError(t *testing.T) {
	t.Parallel()

	t.Run("should name the path and the step and unwrap the cause", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.RevertAndStashFailedError{
			Step: entities.StepSnapshot,
			Path: "a.txt",
			Err:  entities.ErrNothingToPreserve,
		}

		// when
		message := err.Error()

		// then
		assert.Equal(t, "revert and stash a.txt failed at snapshot: nothing to preserve", message)
		assert.ErrorIs(t, err, entities.ErrNothingToPreserve)
	})
}

func TestCommandError(t *testing.T) {
	t.Parallel()

	t.Run("should include the arguments and stderr", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("exit status 128")
		err := &entities.CommandError{
			Args:   []string{"checkout", "HEAD~1", "--", "a.txt"},
			Stderr: "fatal: invalid reference: HEAD~1",
			Err:    cause,
		}

		// when
		message := err.Error()

		// then
		assert.Equal(t, "git checkout HEAD~1 -- a.txt: exit status 128: fatal: invalid reference: HEAD~1", message)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("should omit an empty stderr", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.CommandError{Args: []string{"--version"}, Err: exec.ErrNotFound}

		// when
		message := err.Error()

		// then
		assert.Equal(t, "git --version: executable file not found in $PATH", message)
	})
}
