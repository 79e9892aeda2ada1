package entities

import "io/fs"

// TempSnapshot is a transient copy of a file's bytes kept in the repository's
// metadata directory while its commit is being rewritten. A symbolic link is
// kept as its target with fs.ModeSymlink set in Mode.
type TempSnapshot struct {
	Path         string // Absolute location of the copy
	RelativePath string // Repository path the bytes belong to
	Mode         fs.FileMode
}

// IsSymlink reports whether the snapshot must come back as a symbolic link.
func (s TempSnapshot) IsSymlink() bool {
	return s.Mode&fs.ModeSymlink != 0
}
