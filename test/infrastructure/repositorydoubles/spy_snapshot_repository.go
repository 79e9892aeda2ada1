//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// SpySnapshotRepository keeps snapshots in memory.
type SpySnapshotRepository struct {
	SaveErr    error
	LoadErr    error
	DiscardErr error

	// spy: content currently held, keyed by snapshot path
	Stored map[string][]byte
	// spy: every snapshot handed out and every one discarded
	Saved     []entities.TempSnapshot
	Discarded []entities.TempSnapshot
}

var _ repositories.SnapshotRepository = (*SpySnapshotRepository)(nil)

// NewSpySnapshotRepository creates an empty SpySnapshotRepository.
func NewSpySnapshotRepository() *SpySnapshotRepository {
	return &SpySnapshotRepository{Stored: make(map[string][]byte)}
}

func (s *SpySnapshotRepository) Save(
	_ context.Context,
	_ entities.RepositoryRef,
	relPath string,
	data []byte,
	mode fs.FileMode,
) (entities.TempSnapshot, error) {
	if s.SaveErr != nil {
		return entities.TempSnapshot{}, s.SaveErr
	}

	snapshot := entities.TempSnapshot{
		Path:         fmt.Sprintf("memory://snapshot-%d", len(s.Saved)+1),
		RelativePath: relPath,
		Mode:         mode,
	}
	s.Stored[snapshot.Path] = append([]byte(nil), data...)
	s.Saved = append(s.Saved, snapshot)
	return snapshot, nil
}

func (s *SpySnapshotRepository) Load(_ context.Context, snapshot entities.TempSnapshot) ([]byte, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	data, ok := s.Stored[snapshot.Path]
	if !ok {
		return nil, fmt.Errorf("snapshot %s: %w", snapshot.Path, fs.ErrNotExist)
	}
	return data, nil
}

func (s *SpySnapshotRepository) Discard(_ context.Context, snapshot entities.TempSnapshot) error {
	s.Discarded = append(s.Discarded, snapshot)
	if s.DiscardErr != nil {
		return s.DiscardErr
	}
	delete(s.Stored, snapshot.Path)
	return nil
}
