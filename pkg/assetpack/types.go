package assetpack

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FileRecord describes one file discovered under a scan root.
// Records are produced by the scanner and never mutated afterwards.
type FileRecord struct {
	// Path is the absolute path of the file
	Path string

	// RelPath is the path relative to the scan root, always using '/'
	RelPath string

	// Name is the base name of the file
	Name string

	// Ext is the lowercase extension without the dot ("" when the file has none)
	Ext string

	// Size is the byte size, 0 when the file metadata could not be read
	Size int64
}

// ExtensionCount is one bucket of an extension histogram.
type ExtensionCount struct {
	Ext   string
	Count int
}

// ScanSummary holds aggregate statistics of a scan.
type ScanSummary struct {
	// Root is the resolved absolute scan root
	Root string

	TotalFiles int
	TotalDirs  int
	TotalBytes int64

	// Extensions is the extension histogram ordered by count descending, then extension
	Extensions []ExtensionCount

	// Unsupported is the subset of Extensions outside the built-in scan allow-list,
	// with files lacking an extension reported under NoExtensionKey
	Unsupported []ExtensionCount
}

// ExtensionCount returns the number of scanned files with the given extension.
func (s ScanSummary) ExtensionCount(ext string) int {
	for _, e := range s.Extensions {
		if e.Ext == ext {
			return e.Count
		}
	}
	return 0
}

// SortExtensionCounts orders a histogram by count descending, then extension ascending.
func SortExtensionCounts(counts []ExtensionCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Ext < counts[j].Ext
	})
}

// ScanOptions controls directory traversal.
type ScanOptions struct {
	// IgnoredDirs are directory names pruned before descent
	IgnoredDirs []string

	// IgnoreHidden skips files and directories whose name starts with '.'
	IgnoreHidden bool

	// FollowSymlinks descends into symlinked directories
	FollowSymlinks bool

	// RootIgnoredFiles are file names skipped directly under the scan root,
	// such as the project config file. Nested files with the same name are kept.
	RootIgnoredFiles []string
}

// DefaultScanOptions returns the options used when the caller has no preference.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		IgnoredDirs:  append([]string(nil), DefaultIgnoredDirs...),
		IgnoreHidden: true,
	}
}

// Rules toggles the individual validator rule blocks of a profile.
type Rules struct {
	EnforceNoSpaces             bool `json:"enforce_no_spaces"`
	WarnMissingVersionToken     bool `json:"warn_missing_version_token"`
	WarnUnsupportedExtensions   bool `json:"warn_unsupported_extensions"`
	ErrorMissingRequiredFolders bool `json:"error_missing_required_folders"`
}

// AllRules returns a rule set with every check enabled.
func AllRules() Rules {
	return Rules{
		EnforceNoSpaces:             true,
		WarnMissingVersionToken:     true,
		WarnUnsupportedExtensions:   true,
		ErrorMissingRequiredFolders: true,
	}
}

// Profile is a named rule configuration a delivery must satisfy.
// Profiles are values: every edit produces a new Profile.
type Profile struct {
	Name string

	// RequiredFolders lists top-level folder names in display order
	RequiredFolders []string

	// AllowedExtensions holds lowercase extensions without the dot
	AllowedExtensions map[string]struct{}

	Rules Rules
}

// NewProfile builds a profile, normalizing extensions to lowercase without a leading dot.
func NewProfile(name string, requiredFolders []string, extensions []string, rules Rules) Profile {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = NormalizeExt(ext)
		if ext == "" {
			continue
		}
		allowed[ext] = struct{}{}
	}
	return Profile{
		Name:              name,
		RequiredFolders:   append([]string(nil), requiredFolders...),
		AllowedExtensions: allowed,
		Rules:             rules,
	}
}

// Allows reports whether ext is in the profile allow-list.
func (p Profile) Allows(ext string) bool {
	_, ok := p.AllowedExtensions[ext]
	return ok
}

// SortedExtensions returns the allow-list in lexical order.
func (p Profile) SortedExtensions() []string {
	exts := make([]string, 0, len(p.AllowedExtensions))
	for ext := range p.AllowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Validate checks the profile has a usable name.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required: %w", ErrInvalidConfig)
	}
	return nil
}

// NormalizeExt lowercases ext and strips a leading dot.
func NormalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}

// Identity names a delivery.
type Identity struct {
	Project string
	Asset   string
	Version string
}

// PlanItem maps one scanned file to its place in the delivery tree.
type PlanItem struct {
	// Src is the absolute source path
	Src string

	// RelPath is the source path relative to the input root
	RelPath string

	// Dst is the absolute destination path
	Dst string

	// Category is the delivery bucket, e.g. "textures" or "export/fbx"
	Category string
}

// PackSummary counts the outcomes of one pack run.
//
// A file whose post-copy verification fails is counted in both Copied and
// Failed; the two are not reconciled.
type PackSummary struct {
	Total   int
	Copied  int
	Skipped int
	Failed  int

	// Cancelled is set when the run stopped at a cancellation check
	Cancelled bool
}

// Processed returns the number of items that reached a terminal state.
func (s PackSummary) Processed() int {
	return s.Copied + s.Skipped + s.Failed
}

// HashAlgorithm selects the streaming content hash.
type HashAlgorithm string

const (
	// HashSHA1 is the default 160-bit hash
	HashSHA1 HashAlgorithm = "sha1"

	// HashMD5 is the faster, weaker 128-bit alternative
	HashMD5 HashAlgorithm = "md5"
)

// ParseHashAlgorithm validates a user-supplied algorithm name.
func ParseHashAlgorithm(s string) (HashAlgorithm, error) {
	switch HashAlgorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", HashSHA1:
		return HashSHA1, nil
	case HashMD5:
		return HashMD5, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedHash)
	}
}

// PackOptions controls a pack run.
type PackOptions struct {
	Overwrite  bool
	VerifyHash bool
	HashAlgo   HashAlgorithm

	// OnProgress is called once per item before its copy attempt
	OnProgress ProgressFunc

	// IsCancelled is polled once per item boundary
	IsCancelled CancelFunc
}

// DefaultPackOptions returns non-overwriting, hash-verifying options.
func DefaultPackOptions() PackOptions {
	return PackOptions{
		VerifyHash: true,
		HashAlgo:   DefaultHashAlgorithm,
	}
}

// Validate checks the pack options are coherent.
func (o PackOptions) Validate() error {
	var errs []error
	if o.VerifyHash {
		if _, err := ParseHashAlgorithm(string(o.HashAlgo)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
