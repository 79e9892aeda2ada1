package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gitrevert/internal/domain/repositories"
	"github.com/rios0rios0/gitrevert/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/gitrevert/internal/infrastructure/repositories/gitcli"
	"github.com/rios0rios0/gitrevert/internal/infrastructure/repositories/logging"
	"github.com/rios0rios0/gitrevert/internal/infrastructure/repositories/terminal"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(gitcli.NewGitRepository); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewSnapshotRepository); err != nil {
		return err
	}
	if err := container.Provide(terminal.NewPromptRepository); err != nil {
		return err
	}
	if err := container.Provide(logging.NewEventPublisher); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *gitcli.GitRepository) domainRepos.GitRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *filesystem.SnapshotRepository) domainRepos.SnapshotRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *terminal.PromptRepository) domainRepos.PromptRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *logging.EventPublisher) domainRepos.EventPublisher {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
