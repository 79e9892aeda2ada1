package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitrevert/internal/domain/commands"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// DoctorController handles the "doctor" subcommand.
type DoctorController struct {
	command commands.Doctor
	status  *entities.ExitStatus
}

// NewDoctorController creates a new DoctorController.
func NewDoctorController(command commands.Doctor, status *entities.ExitStatus) *DoctorController {
	return &DoctorController{command: command, status: status}
}

// GetBind returns the Cobra command metadata for the doctor controller.
func (it *DoctorController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "doctor",
		Short: "Check the git installation and the current repository",
	}
}

// Execute prints the environment report for the working directory.
func (it *DoctorController) Execute(cmd *cobra.Command, _ []string) {
	report, err := it.command.Execute(commandContext(cmd), ".")
	if err != nil {
		logger.Errorf("Doctor failed: %v", err)
		it.status.Fail()
		return
	}

	printDoctor(cmd.OutOrStdout(), report)
	if !report.ScopedStashSupported {
		it.status.Fail()
	}
}
