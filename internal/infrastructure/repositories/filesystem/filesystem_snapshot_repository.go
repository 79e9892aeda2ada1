package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

const (
	snapshotDirMode  fs.FileMode = 0o700
	snapshotFileMode fs.FileMode = 0o600
)

// SnapshotRepository keeps snapshots as plain files under the repository's
// git dir, out of reach of checkout, stash and status.
type SnapshotRepository struct {
	directory string // Relative to the git dir
}

var _ repositories.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a SnapshotRepository using the configured directory.
func NewSnapshotRepository(settings *entities.Settings) *SnapshotRepository {
	return &SnapshotRepository{directory: settings.Snapshots.Directory}
}

// Save writes data to <git dir>/<directory>/<flattened path>-<uuid>.
func (it *SnapshotRepository) Save(
	_ context.Context,
	repo entities.RepositoryRef,
	relPath string,
	data []byte,
	mode fs.FileMode,
) (entities.TempSnapshot, error) {
	if repo.GitDir == "" {
		return entities.TempSnapshot{}, errors.New("repository has no git dir")
	}

	dir := filepath.Join(repo.GitDir, filepath.FromSlash(it.directory))
	if err := os.MkdirAll(dir, snapshotDirMode); err != nil {
		return entities.TempSnapshot{}, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	path := filepath.Join(dir, snapshotName(relPath))
	if err := os.WriteFile(path, data, snapshotFileMode); err != nil {
		return entities.TempSnapshot{}, fmt.Errorf("failed to write snapshot: %w", err)
	}

	return entities.TempSnapshot{Path: path, RelativePath: relPath, Mode: mode}, nil
}

func (it *SnapshotRepository) Load(_ context.Context, snapshot entities.TempSnapshot) ([]byte, error) {
	data, err := os.ReadFile(snapshot.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Discard removes the snapshot file. A snapshot that is already gone counts as discarded.
func (it *SnapshotRepository) Discard(_ context.Context, snapshot entities.TempSnapshot) error {
	if err := os.Remove(snapshot.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	return nil
}

// snapshotName flattens the path so every snapshot sits in a single directory.
func snapshotName(relPath string) string {
	flat := strings.ReplaceAll(filepath.ToSlash(relPath), "/", "_")
	return fmt.Sprintf("%s-%s", flat, uuid.NewString())
}
