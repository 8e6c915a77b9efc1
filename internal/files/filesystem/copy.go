package filesystem

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copies src to dst byte for byte, replacing dst if it exists.
// The destination keeps the source's permission bits and modification time.
// Parent directories of dst must already exist.
func CopyFile(fsys FileSystem, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy bytes: %w", err)
	}

	// close before touching times so the final flush does not bump mtime
	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	if err := Chtimes(fsys, dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("preserve modification time: %w", err)
	}
	return nil
}
