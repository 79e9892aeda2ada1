//go:build unit

package commands_test

import (
	"testing"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/test/domain/entitybuilders"
)

// newLocation builds a location inside a fresh temporary repository root.
func newLocation(t *testing.T, relPath string) entities.FileLocation {
	t.Helper()

	return entitybuilders.NewFileLocationBuilder().
		WithRootPath(t.TempDir()).
		WithRelativePath(relPath).
		BuildFileLocation()
}
