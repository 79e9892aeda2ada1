package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitrevert/internal/domain/commands"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// RevertController handles the "revert" subcommand.
type RevertController struct {
	command  commands.Revert
	settings *entities.Settings
	status   *entities.ExitStatus
}

// NewRevertController creates a new RevertController.
func NewRevertController(
	command commands.Revert,
	settings *entities.Settings,
	status *entities.ExitStatus,
) *RevertController {
	return &RevertController{command: command, settings: settings, status: status}
}

// GetBind returns the Cobra command metadata for the revert controller.
func (it *RevertController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "revert <file>...",
		Short: "Restore files to their version before the last commit",
		Long: `Restore each file to its content in the parent of HEAD.

Files added by the last commit are removed, files deleted by it are brought
back. Uncommitted changes are lost, so you are asked before touching a file
that has any (use --yes to skip the question). HEAD itself is not modified.`,
	}
}

// AddFlags adds the revert-specific flags to the given Cobra command.
func (it *RevertController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Do not ask before discarding uncommitted changes")
}

// Execute reverts the given files.
func (it *RevertController) Execute(cmd *cobra.Command, args []string) {
	assumeYes, _ := cmd.Flags().GetBool("yes")

	result, err := it.command.Execute(commandContext(cmd), commands.RevertOptions{
		Paths:     args,
		AssumeYes: assumeYes || it.settings.Prompts.AssumeYes,
	})
	if err != nil {
		logger.Errorf("Revert failed: %v", err)
		it.status.Fail()
		return
	}

	printBatch(cmd.OutOrStdout(), result)
	if result.HasFailures() {
		it.status.Fail()
	}
}

// commandContext returns the context Cobra was executed with, if any.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
