package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Building blocks shared by the commands
	for _, constructor := range []any{
		NewLocator,
		NewPresenceClassifier,
		NewHistoryReconciler,
		NewStashRewriter,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Register command constructors
	if err := container.Provide(NewRevertCommand); err != nil {
		return err
	}
	if err := container.Provide(NewRevertAndStashCommand); err != nil {
		return err
	}
	if err := container.Provide(NewDoctorCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *RevertCommand) Revert {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *RevertAndStashCommand) RevertAndStash {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DoctorCommand) Doctor {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
