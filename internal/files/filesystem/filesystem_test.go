package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	fsys := NewMemoryFileSystem()
	require.NoError(t, WriteFile(fsys, "/in/geo/a.fbx", []byte("x"), 0o644))

	ok, err := Exists(fsys, "/in/geo/a.fbx")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(fsys, "/in/geo/missing.fbx")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubdirNames_SortedDirectoriesOnly(t *testing.T) {
	fsys := NewMemoryFileSystem()
	require.NoError(t, fsys.MkdirAll("/in/tex", 0o755))
	require.NoError(t, fsys.MkdirAll("/in/geo", 0o755))
	require.NoError(t, WriteFile(fsys, "/in/readme.md", []byte("hi"), 0o644))

	names, err := SubdirNames(fsys, "/in")
	require.NoError(t, err)
	assert.Equal(t, []string{"geo", "tex"}, names)
}

func TestSubdirNames_MissingDir(t *testing.T) {
	_, err := SubdirNames(NewMemoryFileSystem(), "/nope")
	assert.Error(t, err)
}

func TestIsEmptyDir(t *testing.T) {
	fsys := NewMemoryFileSystem()

	empty, err := IsEmptyDir(fsys, "/missing")
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, WriteFile(fsys, "/full/a.txt", []byte("a"), 0o644))
	empty, err = IsEmptyDir(fsys, "/full")
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestOSFileSystem_AbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "file.txt")
	fsys := NewOSFileSystem()

	require.NoError(t, WriteFile(fsys, path, []byte("content"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.True(t, IsDir(fsys, filepath.Join(dir, "sub")))
}

func TestCopyFile_PreservesBytesAndModTime(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o640))

	mtime := time.Date(2023, 5, 1, 12, 30, 45, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	fsys := NewOSFileSystem()
	require.NoError(t, CopyFile(fsys, src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.Size())
	assert.Equal(t, mtime.Unix(), info.ModTime().Unix())
}

func TestCopyFile_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old and longer"), 0o644))

	require.NoError(t, CopyFile(NewOSFileSystem(), src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(NewOSFileSystem(), filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	assert.Error(t, err)
}

func TestCopyFile_MemoryFileSystem(t *testing.T) {
	fsys := NewMemoryFileSystem()
	require.NoError(t, WriteFile(fsys, "/a/src.txt", []byte("mem"), 0o644))
	require.NoError(t, fsys.MkdirAll("/b", 0o755))

	require.NoError(t, CopyFile(fsys, "/a/src.txt", "/b/dst.txt"))

	data, err := ReadFile(fsys, "/b/dst.txt")
	require.NoError(t, err)
	assert.Equal(t, "mem", string(data))
}
