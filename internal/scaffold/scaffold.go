package scaffold

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

//go:embed templates/readme.md
var templatesFS embed.FS

// demoFile is one sample file written by a demo drop. Path and content may
// use the {{ASSET}} placeholder.
type demoFile struct {
	path     string
	content  string
	template string
}

var demoFiles = []demoFile{
	{path: "geo/{{ASSET}}_v001.fbx", content: "dummy_fbx"},
	{path: "tex/{{ASSET}}_v001_diffuse.png", content: "dummy_png"},
	{path: "export/{{ASSET}}_v001.abc", content: "dummy_abc"},
	{path: "source/maya/{{ASSET}}_v001.ma", content: "// dummy maya"},
	{path: "docs/readme.md", template: "templates/readme.md"},
}

// Scaffolder lays out new drop folders.
type Scaffolder struct {
	fsys   filesystem.FileSystem
	logger assetpack.Logger
}

// NewScaffolder creates a new Scaffolder instance.
// Panics if fsys or logger is nil.
func NewScaffolder(fsys filesystem.FileSystem, logger assetpack.Logger) *Scaffolder {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scaffolder{fsys: fsys, logger: logger}
}

// CreateDrop creates the profile's required folders under target and, with
// withDemo, a small set of sample files named after asset.
// target must be missing or empty.
func (s *Scaffolder) CreateDrop(target string, profile assetpack.Profile, asset string, withDemo bool) error {
	isEmpty, err := filesystem.IsEmptyDir(s.fsys, target)
	if err != nil {
		return fmt.Errorf("failed to check target directory: %w", err)
	}
	if !isEmpty {
		return fmt.Errorf("target directory '%s' is not empty\n\nassetpack init requires an empty directory to avoid overwriting existing files.\n\nOptions:\n• Choose a different location\n• Remove existing files manually\n• Use a new directory name", target)
	}

	if err := s.fsys.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create drop directory: %w", err)
	}

	s.logger.Verbose("Creating %s drop at %s", profile.Name, target)
	for _, folder := range profile.RequiredFolders {
		s.logger.Verbose("Creating directory: %s", folder)
		if err := s.fsys.MkdirAll(filepath.Join(target, filepath.FromSlash(folder)), 0o755); err != nil {
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
	}

	if !withDemo {
		return nil
	}

	asset = strings.TrimSpace(asset)
	if asset == "" {
		asset = "CrateA"
	}
	for _, f := range demoFiles {
		content := []byte(f.content)
		if f.template != "" {
			raw, err := templatesFS.ReadFile(f.template)
			if err != nil {
				return fmt.Errorf("failed to read template file %s: %w", f.template, err)
			}
			content = raw
		}

		rel := processTemplate(f.path, asset)
		s.logger.Verbose("Creating file: %s", rel)
		path := filepath.Join(target, filepath.FromSlash(rel))
		if err := filesystem.WriteFile(s.fsys, path, []byte(processTemplate(string(content), asset)), 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}
	return nil
}

// processTemplate replaces template variables in content
func processTemplate(content, asset string) string {
	return strings.ReplaceAll(content, "{{ASSET}}", asset)
}

// BuildFileTree creates a visual tree representation of the directory structure.
// Entries are listed in lexical order, directories suffixed with '/'.
func BuildFileTree(fsys filesystem.FileSystem, rootPath string) (string, error) {
	var sb strings.Builder

	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		absPath = rootPath
	}
	sb.WriteString(absPath + "/\n")

	if err := writeTree(fsys, &sb, rootPath, ""); err != nil {
		return "", fmt.Errorf("failed to build file tree: %w", err)
	}
	return sb.String(), nil
}

func writeTree(fsys filesystem.FileSystem, sb *strings.Builder, dir, indent string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for i, entry := range entries {
		isLast := i == len(entries)-1
		branch, childIndent := "├── ", indent+"│   "
		if isLast {
			branch, childIndent = "└── ", indent+"    "
		}

		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		sb.WriteString(indent + branch + name + "\n")

		if entry.IsDir() {
			if err := writeTree(fsys, sb, filepath.Join(dir, entry.Name()), childIndent); err != nil {
				return err
			}
		}
	}
	return nil
}
