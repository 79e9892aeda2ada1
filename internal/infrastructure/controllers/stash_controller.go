package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitrevert/internal/domain/commands"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// StashController handles the "stash" subcommand.
type StashController struct {
	command commands.RevertAndStash
	status  *entities.ExitStatus
}

// NewStashController creates a new StashController.
func NewStashController(command commands.RevertAndStash, status *entities.ExitStatus) *StashController {
	return &StashController{command: command, status: status}
}

// GetBind returns the Cobra command metadata for the stash controller.
func (it *StashController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "stash <file>...",
		Short: "Take files out of the last commit and keep them in the stash",
		Long: `Remove each file's change from the last commit and save the content the
file had before this command in a stash entry of its own.

Only the given files change in the amended commit; anything else already
staged stays staged. Restore the content later with "git stash apply". Without --message you
are asked once for a stash message; end of input cancels the whole command.`,
	}
}

// AddFlags adds the stash-specific flags to the given Cobra command.
func (it *StashController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("message", "m", "", "Message of the stash entries (skips the prompt)")
}

// Execute reverts and stashes the given files.
func (it *StashController) Execute(cmd *cobra.Command, args []string) {
	message, _ := cmd.Flags().GetString("message")

	result, err := it.command.Execute(commandContext(cmd), commands.StashOptions{
		Paths:      args,
		Message:    message,
		MessageSet: cmd.Flags().Changed("message"),
	})
	if err != nil {
		logger.Errorf("Stash failed: %v", err)
		it.status.Fail()
		return
	}

	printBatch(cmd.OutOrStdout(), result)
	if result.HasFailures() {
		it.status.Fail()
	}
}
