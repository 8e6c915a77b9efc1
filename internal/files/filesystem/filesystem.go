package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// FileSystem is the filesystem surface used by scanner, validator and pack executor.
type FileSystem = billy.Filesystem

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// timesChanger is implemented by filesystems that can set modification times.
type timesChanger interface {
	Chtimes(name string, atime time.Time, mtime time.Time) error
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(fsys FileSystem, path string) (bool, error) {
	_, err := fsys.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %q: %w", path, err)
	}
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys FileSystem, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// SubdirNames lists the names of the immediate subdirectories of dir, sorted.
func SubdirNames(fsys FileSystem, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
			continue
		}
		// symlinked directories count as folders for listing purposes
		if entry.Mode()&fs.ModeSymlink != 0 && IsDir(fsys, fsys.Join(dir, entry.Name())) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// IsEmptyDir reports whether dir is missing or has no entries.
func IsEmptyDir(fsys FileSystem, dir string) (bool, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	return len(entries) == 0, nil
}

// ReadFile reads the whole file at path.
func ReadFile(fsys FileSystem, path string) ([]byte, error) {
	return util.ReadFile(fsys, path)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(fsys FileSystem, path string, data []byte, perm os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory for %q: %w", path, err)
	}
	return util.WriteFile(fsys, path, data, perm)
}

// Chtimes sets access and modification times when the filesystem supports it.
// Filesystems without time support are left untouched.
func Chtimes(fsys FileSystem, path string, atime, mtime time.Time) error {
	tc, ok := fsys.(timesChanger)
	if !ok {
		return nil
	}
	return tc.Chtimes(path, atime, mtime)
}
