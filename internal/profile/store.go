package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

const fileExt = ".json"

// document is the JSON shape of a stored profile.
type document struct {
	Name              string          `json:"name"`
	RequiredFolders   []string        `json:"required_folders"`
	AllowedExtensions []string        `json:"allowed_extensions"`
	Rules             assetpack.Rules `json:"rules"`
}

// Store persists profiles under <storageRoot>/profiles.
type Store struct {
	fsys   filesystem.FileSystem
	dir    string
	logger assetpack.Logger
}

// NewStore creates a store rooted at storageRoot.
// Panics if fsys or logger is nil.
func NewStore(fsys filesystem.FileSystem, storageRoot string, logger assetpack.Logger) *Store {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Store{
		fsys:   fsys,
		dir:    filepath.Join(storageRoot, assetpack.ProfilesDirName),
		logger: logger,
	}
}

// Dir returns the directory holding the profile files.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path a profile with the given name is stored at.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, FileName(name))
}

// EnsurePersisted writes every built-in profile that has no file yet.
// Existing files are never overwritten.
func (s *Store) EnsurePersisted() error {
	defaults := Defaults()
	for _, name := range builtinNames {
		path := s.Path(name)
		exists, err := filesystem.Exists(s.fsys, path)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := s.Save(defaults[name]); err != nil {
			return err
		}
		s.logger.Verbose("Seeded profile %s at %s", name, path)
	}
	return nil
}

// Load reads the stored profile with the given name.
func (s *Store) Load(name string) (assetpack.Profile, error) {
	path := s.Path(name)
	data, err := filesystem.ReadFile(s.fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return assetpack.Profile{}, fmt.Errorf("%w: %s (%s)", assetpack.ErrProfileNotFound, name, path)
		}
		return assetpack.Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := Decode(data)
	if err != nil {
		return assetpack.Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Resolve loads a stored profile, falling back to the built-in of the same
// name when nothing is stored under it.
func (s *Store) Resolve(name string) (assetpack.Profile, error) {
	p, err := s.Load(name)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, assetpack.ErrProfileNotFound) {
		if builtin, ok := Lookup(name); ok {
			s.logger.Verbose("Profile %s not stored, using built-in", name)
			return builtin, nil
		}
	}
	return assetpack.Profile{}, err
}

// Save writes p, replacing any existing file, and returns its path.
func (s *Store) Save(p assetpack.Profile) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	data, err := Encode(p)
	if err != nil {
		return "", err
	}

	path := s.Path(p.Name)
	if err := filesystem.WriteFile(s.fsys, path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save profile %s: %w", p.Name, err)
	}
	return path, nil
}

// List returns the names of the stored profiles, sorted.
// Names are taken from the file contents; unreadable files are skipped.
func (s *Store) List() ([]string, error) {
	entries, err := s.fsys.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list profiles in %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), fileExt) {
			continue
		}
		data, err := filesystem.ReadFile(s.fsys, filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.Verbose("Skipping unreadable profile %s: %v", entry.Name(), err)
			continue
		}
		p, err := Decode(data)
		if err != nil {
			s.logger.Verbose("Skipping corrupt profile %s: %v", entry.Name(), err)
			continue
		}
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names, nil
}

// Encode serializes p as indented JSON with the extension set sorted.
func Encode(p assetpack.Profile) ([]byte, error) {
	folders := p.RequiredFolders
	if folders == nil {
		folders = []string{}
	}
	doc := document{
		Name:              p.Name,
		RequiredFolders:   folders,
		AllowedExtensions: p.SortedExtensions(),
		Rules:             p.Rules,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile %s: %w", p.Name, err)
	}
	return append(data, '\n'), nil
}

// Decode parses a stored profile. Rule toggles absent from the document default to on.
func Decode(data []byte) (assetpack.Profile, error) {
	doc := document{Rules: assetpack.AllRules()}
	if err := json.Unmarshal(data, &doc); err != nil {
		return assetpack.Profile{}, fmt.Errorf("%w: %v", assetpack.ErrProfileCorrupt, err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return assetpack.Profile{}, fmt.Errorf("%w: missing name", assetpack.ErrProfileCorrupt)
	}
	return assetpack.NewProfile(doc.Name, doc.RequiredFolders, doc.AllowedExtensions, doc.Rules), nil
}

// FileName derives the safe file name for a profile name. Characters other
// than letters, digits, '_', '-' and space are dropped.
func FileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == ' ' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimSpace(b.String())
	if safe == "" {
		safe = "profile"
	}
	return safe + fileExt
}

// Verify Store implements the interface at compile time
var _ assetpack.ProfileStore = (*Store)(nil)
