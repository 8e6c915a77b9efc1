package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// maxDepth bounds recursion when symlinked directories are followed.
const maxDepth = 256

// supportedExtensions is the scan-time allow-list behind ScanSummary.Unsupported.
// It is independent of any profile allow-list.
var supportedExtensions = map[string]struct{}{
	// DCC scenes
	"ma": {}, "mb": {}, "max": {}, "blend": {},
	// exports
	"fbx": {}, "abc": {}, "usd": {}, "usda": {}, "usdc": {}, "obj": {}, "gltf": {}, "glb": {},
	// textures
	"png": {}, "jpg": {}, "jpeg": {}, "tif": {}, "tiff": {}, "exr": {}, "tga": {}, "bmp": {}, "hdr": {},
	// data and docs
	"json": {}, "xml": {}, "txt": {}, "md": {}, "pdf": {}, "csv": {}, "yml": {}, "yaml": {},
	"mtl": {}, "wav": {},
	// archives
	"zip": {}, "7z": {}, "rar": {},
}

// IsSupportedExtension reports whether ext is on the scan-time allow-list.
func IsSupportedExtension(ext string) bool {
	_, ok := supportedExtensions[ext]
	return ok
}

// Scanner discovers files under an input root.
// Scanner holds no mutable state and is safe for concurrent use as long as
// the provided filesystem is.
type Scanner struct {
	fsys   filesystem.FileSystem
	logger assetpack.Logger
}

// NewScanner creates a scanner over fsys.
// Panics if fsys or logger is nil.
func NewScanner(fsys filesystem.FileSystem, logger assetpack.Logger) *Scanner {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{fsys: fsys, logger: logger}
}

// walkState accumulates results across one Scan call.
type walkState struct {
	root    string
	opts    assetpack.ScanOptions
	ignored map[string]struct{}

	// rootIgnored holds file names skipped only at depth 0
	rootIgnored map[string]struct{}

	files     []assetpack.FileRecord
	dirs      int
	bytes     int64
	extCounts map[string]int

	// linkTargets holds resolved targets of symlinked directories on the current descent path
	linkTargets map[string]struct{}
}

// Scan walks root and returns one record per file plus aggregate statistics.
//
// Directories named in opts.IgnoredDirs, and dot-directories when
// opts.IgnoreHidden is set, are pruned before descent. Files whose metadata
// cannot be read are recorded with size 0. Unreadable subdirectories are
// skipped; only an unreadable root fails the scan.
func (s *Scanner) Scan(root string, opts assetpack.ScanOptions) ([]assetpack.FileRecord, assetpack.ScanSummary, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, assetpack.ScanSummary{}, fmt.Errorf("%w: %s: %v", assetpack.ErrInvalidRoot, root, err)
	}

	info, err := s.fsys.Stat(absRoot)
	if err != nil {
		return nil, assetpack.ScanSummary{}, fmt.Errorf("%w: %s: %v", assetpack.ErrInvalidRoot, absRoot, err)
	}
	if !info.IsDir() {
		return nil, assetpack.ScanSummary{}, fmt.Errorf("%w: %s is not a directory", assetpack.ErrInvalidRoot, absRoot)
	}

	state := &walkState{
		root:        absRoot,
		opts:        opts,
		ignored:     make(map[string]struct{}, len(opts.IgnoredDirs)),
		rootIgnored: make(map[string]struct{}, len(opts.RootIgnoredFiles)),
		extCounts:   make(map[string]int),
		linkTargets: make(map[string]struct{}),
	}
	for _, name := range opts.IgnoredDirs {
		state.ignored[name] = struct{}{}
	}
	for _, name := range opts.RootIgnoredFiles {
		state.rootIgnored[name] = struct{}{}
	}

	if err := s.walkDir(state, absRoot, 0); err != nil {
		return nil, assetpack.ScanSummary{}, fmt.Errorf("%w: %s: %v", assetpack.ErrInvalidRoot, absRoot, err)
	}

	summary := state.summary()
	s.logger.Verbose("Scanned %s: %d files, %d dirs, %d bytes", absRoot, summary.TotalFiles, summary.TotalDirs, summary.TotalBytes)
	return state.files, summary, nil
}

// walkDir visits dir and its descendants. The returned error is non-nil only
// when dir cannot be listed; callers decide whether that is fatal.
func (s *Scanner) walkDir(state *walkState, dir string, depth int) error {
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		return err
	}
	state.dirs++

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		isDir := entry.IsDir()
		isLink := entry.Mode()&fs.ModeSymlink != 0
		if isLink {
			isDir = filesystem.IsDir(s.fsys, full)
		}

		if isDir {
			if s.pruned(state, name) {
				continue
			}
			if isLink && !state.opts.FollowSymlinks {
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}

		if state.opts.IgnoreHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := state.rootIgnored[name]; skip && depth == 0 {
			s.logger.Verbose("Skipping %s at the input root", name)
			continue
		}
		s.record(state, full, name, entry, isLink)
	}

	if depth >= maxDepth {
		s.logger.Verbose("Not descending below %s: depth limit reached", dir)
		return nil
	}

	for _, name := range subdirs {
		full := filepath.Join(dir, name)

		target, isLink := s.linkTarget(full)
		if isLink {
			if _, active := state.linkTargets[target]; active || isAncestor(target, dir) {
				s.logger.Verbose("Skipping symlink cycle at %s", full)
				continue
			}
			state.linkTargets[target] = struct{}{}
		}

		if err := s.walkDir(state, full, depth+1); err != nil {
			s.logger.Verbose("Skipping unreadable directory %s: %v", full, err)
		}

		if isLink {
			delete(state.linkTargets, target)
		}
	}
	return nil
}

func (s *Scanner) pruned(state *walkState, name string) bool {
	if _, ok := state.ignored[name]; ok {
		return true
	}
	return state.opts.IgnoreHidden && strings.HasPrefix(name, ".")
}

func (s *Scanner) record(state *walkState, full, name string, entry fs.FileInfo, isLink bool) {
	size := entry.Size()
	if isLink {
		// report the size of what the link points at
		if info, err := s.fsys.Stat(full); err == nil {
			size = info.Size()
		} else {
			s.logger.Verbose("Cannot stat %s, recording size 0: %v", full, err)
			size = 0
		}
	}

	rel, err := filepath.Rel(state.root, full)
	if err != nil {
		rel = name
	}
	ext := Extension(name)

	state.files = append(state.files, assetpack.FileRecord{
		Path:    full,
		RelPath: filepath.ToSlash(rel),
		Name:    name,
		Ext:     ext,
		Size:    size,
	})
	state.bytes += size
	state.extCounts[ext]++
}

// linkTarget resolves path when it is a symlink, returning the cleaned absolute target.
func (s *Scanner) linkTarget(path string) (string, bool) {
	info, err := s.fsys.Lstat(path)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return "", false
	}
	target, err := s.fsys.Readlink(path)
	if err != nil {
		return path, true
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), true
}

func isAncestor(candidate, dir string) bool {
	if candidate == dir {
		return true
	}
	rel, err := filepath.Rel(candidate, dir)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (state *walkState) summary() assetpack.ScanSummary {
	extensions := make([]assetpack.ExtensionCount, 0, len(state.extCounts))
	unsupported := make(map[string]int)
	for ext, count := range state.extCounts {
		extensions = append(extensions, assetpack.ExtensionCount{Ext: ext, Count: count})
		switch {
		case ext == "":
			unsupported[assetpack.NoExtensionKey] += count
		case !IsSupportedExtension(ext):
			unsupported[ext] += count
		}
	}
	assetpack.SortExtensionCounts(extensions)

	unsupportedCounts := make([]assetpack.ExtensionCount, 0, len(unsupported))
	for ext, count := range unsupported {
		unsupportedCounts = append(unsupportedCounts, assetpack.ExtensionCount{Ext: ext, Count: count})
	}
	assetpack.SortExtensionCounts(unsupportedCounts)

	return assetpack.ScanSummary{
		Root:        state.root,
		TotalFiles:  len(state.files),
		TotalDirs:   state.dirs,
		TotalBytes:  state.bytes,
		Extensions:  extensions,
		Unsupported: unsupportedCounts,
	}
}

// Extension returns the lowercase extension of a file name without the dot.
// Leading dots are not extension separators, so ".gitkeep" has none.
func Extension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	return assetpack.NormalizeExt(filepath.Ext(trimmed))
}

// Verify Scanner implements the interface at compile time
var _ assetpack.FileScanner = (*Scanner)(nil)
