package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra metadata a controller is exposed with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point bound to a subcommand.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}

// FlagController is a Controller that declares flags of its own.
type FlagController interface {
	Controller
	AddFlags(cmd *cobra.Command)
}
