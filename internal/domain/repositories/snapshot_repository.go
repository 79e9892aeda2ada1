package repositories

import (
	"context"
	"io/fs"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// SnapshotRepository stores transient copies of file content outside the working tree.
type SnapshotRepository interface {
	// Save stores data under a name unique to this call.
	Save(
		ctx context.Context,
		repo entities.RepositoryRef,
		relPath string,
		data []byte,
		mode fs.FileMode,
	) (entities.TempSnapshot, error)

	// Load returns the bytes held by the snapshot.
	Load(ctx context.Context, snapshot entities.TempSnapshot) ([]byte, error)

	// Discard deletes the snapshot.
	Discard(ctx context.Context, snapshot entities.TempSnapshot) error
}
