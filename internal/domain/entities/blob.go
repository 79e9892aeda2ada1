package entities

import "io/fs"

// Blob is a file as a commit or the working tree holds it. For a symbolic
// link Data is the link target.
type Blob struct {
	Data []byte
	Mode fs.FileMode
}

// IsSymlink reports whether the blob is a symbolic link.
func (b Blob) IsSymlink() bool {
	return b.Mode&fs.ModeSymlink != 0
}
