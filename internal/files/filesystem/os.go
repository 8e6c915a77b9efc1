package filesystem

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// OSFileSystem is a billy.Filesystem that behaves like the native filesystem:
// paths are used as given, so absolute paths address the real tree.
type OSFileSystem struct {
	osfs.ChrootOS
}

// NewOSFileSystem creates a new native OS filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Chroot returns a new filesystem rooted at the provided path.
func (o *OSFileSystem) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (o *OSFileSystem) Root() string {
	return string(filepath.Separator)
}

// Chtimes sets file times on the native filesystem.
func (o *OSFileSystem) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}

// Verify OSFileSystem implements the interface at compile time
var _ billy.Filesystem = (*OSFileSystem)(nil)
