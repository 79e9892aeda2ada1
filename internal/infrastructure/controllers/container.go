package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewRevertController); err != nil {
		return err
	}
	if err := container.Provide(NewStashController); err != nil {
		return err
	}
	if err := container.Provide(NewDoctorController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	revertController *RevertController,
	stashController *StashController,
	doctorController *DoctorController,
) *[]entities.Controller {
	return &[]entities.Controller{
		revertController,
		stashController,
		doctorController,
	}
}
