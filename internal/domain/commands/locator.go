package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// Locator resolves a file path into its repository and root-relative path.
type Locator struct {
	git repositories.GitRepository
}

// NewLocator creates a new Locator.
func NewLocator(git repositories.GitRepository) *Locator {
	return &Locator{git: git}
}

// Resolve finds the repository enclosing path. Nothing is cached: files of
// the same batch may live in different repositories.
func (it *Locator) Resolve(ctx context.Context, path string) (entities.FileLocation, error) {
	if strings.TrimSpace(path) == "" {
		return entities.FileLocation{}, fmt.Errorf("%w: empty path", entities.ErrInvalidPath)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return entities.FileLocation{}, fmt.Errorf("%w: %w", entities.ErrInvalidPath, err)
	}

	repo, err := it.git.Locate(ctx, nearestExistingDir(filepath.Dir(absPath)))
	if err != nil {
		return entities.FileLocation{}, err
	}
	repo.LocatorSourcePath = absPath

	rel, err := filepath.Rel(repo.RootPath, absPath)
	if err != nil {
		return entities.FileLocation{}, fmt.Errorf("%w: %w", entities.ErrInvalidPath, err)
	}
	if rel == "." {
		return entities.FileLocation{}, fmt.Errorf("%w: %s is the repository root", entities.ErrInvalidPath, absPath)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return entities.FileLocation{}, fmt.Errorf(
			"%w: %s is outside %s", entities.ErrInvalidPath, absPath, repo.RootPath,
		)
	}

	return entities.FileLocation{
		Repository:   repo,
		AbsolutePath: absPath,
		RelativePath: filepath.ToSlash(rel),
	}, nil
}

// nearestExistingDir walks up from dir until it finds a directory that
// exists. A file deleted together with its directory is still addressable.
func nearestExistingDir(dir string) string {
	current := dir
	for {
		if info, err := os.Stat(current); err == nil && info.IsDir() {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			return current
		}
		current = parent
	}
}
