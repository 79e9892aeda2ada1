//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitrevert/test/domain/commanddoubles"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

// newCobraCommand builds the subcommand the way the entry point does, with
// stdout captured.
func newCobraCommand(t *testing.T, controller entities.Controller, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	//nolint:exhaustruct // test command
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	if fc, ok := controller.(entities.FlagController); ok {
		fc.AddFlags(cmd)
	}
	require.NoError(t, cmd.ParseFlags(args))

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

func TestRevertController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the files and print one line per outcome", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertCommand{Result: &entities.BatchResult{Outcomes: []entities.FileOutcome{
			{Path: "a.txt", Status: entities.OutcomeReverted},
			{Path: "b.txt", Status: entities.OutcomeSkipped},
		}}}
		status := entities.NewExitStatus()
		controller := controllers.NewRevertController(command, entities.DefaultSettings(), status)
		cmd, out := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"a.txt", "b.txt"})

		// then
		assert.Equal(t, []string{"a.txt", "b.txt"}, command.LastOpts.Paths)
		assert.False(t, command.LastOpts.AssumeYes)
		assert.Equal(t, "reverted a.txt\nskipped  b.txt\n1 reverted, 1 skipped\n", out.String())
		assert.Equal(t, entities.ExitSuccess, status.Code())
	})

	t.Run("should assume yes from the flag", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertCommand{}
		controller := controllers.NewRevertController(command, entities.DefaultSettings(), entities.NewExitStatus())
		cmd, _ := newCobraCommand(t, controller, "--yes")

		// when
		controller.Execute(cmd, []string{"a.txt"})

		// then
		assert.True(t, command.LastOpts.AssumeYes)
	})

	t.Run("should assume yes from the settings", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertCommand{}
		settings := entities.DefaultSettings()
		settings.Prompts.AssumeYes = true
		controller := controllers.NewRevertController(command, settings, entities.NewExitStatus())
		cmd, _ := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"a.txt"})

		// then
		assert.True(t, command.LastOpts.AssumeYes)
	})

	t.Run("should print the failure message and fail the process", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertCommand{Result: &entities.BatchResult{Outcomes: []entities.FileOutcome{
			{Path: "a.txt", Status: entities.OutcomeFailed, Err: errors.New("nothing to revert")},
		}}}
		status := entities.NewExitStatus()
		controller := controllers.NewRevertController(command, entities.DefaultSettings(), status)
		cmd, out := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"a.txt"})

		// then
		assert.Contains(t, out.String(), "a.txt: nothing to revert")
		assert.Contains(t, out.String(), "1 failed")
		assert.Equal(t, entities.ExitFailure, status.Code())
	})

	t.Run("should fail the process on an invocation error", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertCommand{ExecuteErr: entities.ErrNoPaths}
		status := entities.NewExitStatus()
		controller := controllers.NewRevertController(command, entities.DefaultSettings(), status)
		cmd, out := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Empty(t, out.String())
		assert.Equal(t, entities.ExitFailure, status.Code())
	})
}

func TestStashController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should prompt for the message when the flag is absent", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertAndStashCommand{}
		controller := controllers.NewStashController(command, entities.NewExitStatus())
		cmd, _ := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"a.txt"})

		// then
		assert.False(t, command.LastOpts.MessageSet)
		assert.Equal(t, []string{"a.txt"}, command.LastOpts.Paths)
	})

	t.Run("should forward an explicitly empty message", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertAndStashCommand{}
		controller := controllers.NewStashController(command, entities.NewExitStatus())
		cmd, _ := newCobraCommand(t, controller, "-m", "")

		// when
		controller.Execute(cmd, []string{"a.txt"})

		// then
		assert.True(t, command.LastOpts.MessageSet)
		assert.Empty(t, command.LastOpts.Message)
	})

	t.Run("should print stashed files", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertAndStashCommand{Result: &entities.BatchResult{Outcomes: []entities.FileOutcome{
			{Path: "a.txt", Status: entities.OutcomeStashed},
		}}}
		controller := controllers.NewStashController(command, entities.NewExitStatus())
		cmd, out := newCobraCommand(t, controller, "--message", "wip")

		// when
		controller.Execute(cmd, []string{"a.txt"})

		// then
		assert.Equal(t, "wip", command.LastOpts.Message)
		assert.Equal(t, "stashed  a.txt\n1 stashed\n", out.String())
	})

	t.Run("should fail the process when cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubRevertAndStashCommand{ExecuteErr: entities.ErrCancelled}
		status := entities.NewExitStatus()
		controller := controllers.NewStashController(command, status)
		cmd, _ := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"a.txt"})

		// then
		assert.Equal(t, entities.ExitFailure, status.Code())
	})
}

func TestDoctorController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the report", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubDoctorCommand{Report: entities.DoctorReport{
			GitVersion:           "v2.43.0",
			ScopedStashSupported: true,
			RepositoryRoot:       "/work/repo",
		}}
		status := entities.NewExitStatus()
		controller := controllers.NewDoctorController(command, status)
		cmd, out := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, ".", command.LastDir)
		assert.Contains(t, out.String(), "v2.43.0")
		assert.Contains(t, out.String(), "supported")
		assert.Contains(t, out.String(), "/work/repo")
		assert.Equal(t, entities.ExitSuccess, status.Code())
	})

	t.Run("should fail the process when git is too old", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubDoctorCommand{Report: entities.DoctorReport{GitVersion: "v2.11.0"}}
		status := entities.NewExitStatus()
		controller := controllers.NewDoctorController(command, status)
		cmd, out := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Contains(t, out.String(), "unsupported (needs v2.13.0 or newer)")
		assert.Contains(t, out.String(), "not inside a git repository")
		assert.Equal(t, entities.ExitFailure, status.Code())
	})
}
