//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

const (
	defaultRootPath     = "/tmp/repository"
	defaultRelativePath = "file.txt"
)

// FileLocationBuilder helps create test file locations with a fluent interface.
type FileLocationBuilder struct {
	*testkit.BaseBuilder
	rootPath     string
	gitDir       string
	relativePath string
}

// NewFileLocationBuilder creates a new file location builder with sensible defaults.
func NewFileLocationBuilder() *FileLocationBuilder {
	return &FileLocationBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		rootPath:     defaultRootPath,
		relativePath: defaultRelativePath,
	}
}

// WithRootPath sets the repository root. The git dir follows unless set explicitly.
func (b *FileLocationBuilder) WithRootPath(root string) *FileLocationBuilder {
	b.rootPath = root
	return b
}

// WithGitDir sets the repository's git dir.
func (b *FileLocationBuilder) WithGitDir(gitDir string) *FileLocationBuilder {
	b.gitDir = gitDir
	return b
}

// WithRelativePath sets the slash-separated path inside the repository.
func (b *FileLocationBuilder) WithRelativePath(relPath string) *FileLocationBuilder {
	b.relativePath = relPath
	return b
}

// Build creates the file location (satisfies testkit.Builder interface).
func (b *FileLocationBuilder) Build() interface{} {
	return b.BuildFileLocation()
}

// BuildFileLocation creates the file location with a concrete return type.
func (b *FileLocationBuilder) BuildFileLocation() entities.FileLocation {
	gitDir := b.gitDir
	if gitDir == "" {
		gitDir = filepath.Join(b.rootPath, ".git")
	}
	absPath := filepath.Join(b.rootPath, filepath.FromSlash(b.relativePath))

	return entities.FileLocation{
		Repository: entities.RepositoryRef{
			RootPath:          b.rootPath,
			GitDir:            gitDir,
			LocatorSourcePath: absPath,
		},
		AbsolutePath: absPath,
		RelativePath: b.relativePath,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *FileLocationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.rootPath = defaultRootPath
	b.gitDir = ""
	b.relativePath = defaultRelativePath
	return b
}

// Clone creates a deep copy of the FileLocationBuilder.
func (b *FileLocationBuilder) Clone() testkit.Builder {
	return &FileLocationBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		rootPath:     b.rootPath,
		gitDir:       b.gitDir,
		relativePath: b.relativePath,
	}
}
