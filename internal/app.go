package internal

import (
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// AppInternal holds what the entry point needs once the container is built.
type AppInternal struct {
	controllers []entities.Controller
	settings    *entities.Settings
	status      *entities.ExitStatus
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(
	controllers *[]entities.Controller,
	settings *entities.Settings,
	status *entities.ExitStatus,
) *AppInternal {
	return &AppInternal{
		controllers: *controllers,
		settings:    settings,
		status:      status,
	}
}

// GetControllers returns the controllers to expose as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetSettings returns the loaded configuration.
func (it *AppInternal) GetSettings() *entities.Settings {
	return it.settings
}

// GetExitStatus returns the exit status shared by the controllers.
func (it *AppInternal) GetExitStatus() *entities.ExitStatus {
	return it.status
}
