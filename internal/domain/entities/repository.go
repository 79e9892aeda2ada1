package entities

// RepositoryRef identifies the git repository enclosing a file.
type RepositoryRef struct {
	RootPath          string // Absolute working tree root
	GitDir            string // Absolute path of the repository's private metadata directory
	LocatorSourcePath string // File path the repository was resolved from
}

// FileLocation is a file inside a repository, addressed both ways.
type FileLocation struct {
	Repository   RepositoryRef
	AbsolutePath string
	RelativePath string // Root-relative, slash separated
}

// Revision names one of the two commits a file is compared across.
type Revision string

const (
	RevisionCurrent  Revision = "HEAD"
	RevisionPrevious Revision = "HEAD~1"
)
