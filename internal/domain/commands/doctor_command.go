package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// Doctor is the interface for the doctor command.
type Doctor interface {
	Execute(ctx context.Context, dir string) (entities.DoctorReport, error)
}

// DoctorCommand inspects the git installation and the repository around a directory.
type DoctorCommand struct {
	git repositories.GitRepository
}

// NewDoctorCommand creates a new DoctorCommand.
func NewDoctorCommand(git repositories.GitRepository) *DoctorCommand {
	return &DoctorCommand{git: git}
}

// Execute builds the report. Not being inside a repository is reported, not an error.
func (it *DoctorCommand) Execute(ctx context.Context, dir string) (entities.DoctorReport, error) {
	version, err := it.git.Version(ctx)
	if err != nil {
		return entities.DoctorReport{}, fmt.Errorf("failed to detect git version: %w", err)
	}

	report := entities.DoctorReport{
		GitVersion:           version,
		ScopedStashSupported: entities.SupportsScopedStash(version),
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return entities.DoctorReport{}, fmt.Errorf("%w: %w", entities.ErrInvalidPath, err)
	}

	repo, err := it.git.Locate(ctx, absDir)
	switch {
	case err == nil:
		report.RepositoryRoot = repo.RootPath
	case errors.Is(err, entities.ErrNotARepository):
	default:
		return entities.DoctorReport{}, err
	}
	return report, nil
}
