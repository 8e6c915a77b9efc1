package filesystem

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// NewMemoryFileSystem creates an empty in-memory filesystem.
// Paths are slash-separated; absolute paths such as "/in/geo/a.fbx" work as expected.
func NewMemoryFileSystem() billy.Filesystem {
	return memfs.New()
}
