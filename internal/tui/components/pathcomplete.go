package components

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
)

// PathCompleter completes a typed path against the entries of its parent
// directory. The first call fills in the longest common prefix; repeated
// calls for the same parent cycle through the matches until Reset.
type PathCompleter struct {
	fsys     filesystem.FileSystem
	dirsOnly bool

	parent  string
	matches []string
	pos     int
	cycling bool
}

// NewPathCompleter creates a completer over fsys. dirsOnly skips plain files.
func NewPathCompleter(fsys filesystem.FileSystem, dirsOnly bool) *PathCompleter {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	return &PathCompleter{fsys: fsys, dirsOnly: dirsOnly}
}

// Next returns the completion for input.
func (c *PathCompleter) Next(input string) string {
	parent, prefix := splitPath(input)

	if c.cycling && parent == c.parent {
		if len(c.matches) == 0 {
			return input
		}
		c.pos = (c.pos + 1) % len(c.matches)
		return c.render(parent, c.matches[c.pos])
	}

	c.parent, c.matches, c.pos, c.cycling = parent, c.list(parent, prefix), 0, true
	switch len(c.matches) {
	case 0:
		return input
	case 1:
		return c.render(parent, c.matches[0])
	}
	if common := filepath.Join(parent, commonPrefix(c.matches)); len(common) > len(input) {
		return common
	}
	return c.render(parent, c.matches[0])
}

// Reset forgets the cycle; call it on any key other than Tab.
func (c *PathCompleter) Reset() {
	c.parent, c.matches, c.pos, c.cycling = "", nil, 0, false
}

func (c *PathCompleter) list(parent, prefix string) []string {
	entries, err := c.fsys.ReadDir(parent)
	if err != nil {
		return nil
	}
	prefix = strings.ToLower(prefix)

	var names []string
	for _, e := range entries {
		if c.dirsOnly && !filesystem.IsDir(c.fsys, c.fsys.Join(parent, e.Name())) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(e.Name()), prefix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// render joins a match to its parent, marking directories with a trailing separator.
func (c *PathCompleter) render(parent, name string) string {
	full := filepath.Join(parent, name)
	if filesystem.IsDir(c.fsys, full) {
		full += string(filepath.Separator)
	}
	return full
}

// splitPath separates the directory to list from the name prefix being typed.
// "" and "." list the working directory; a trailing separator lists that directory.
func splitPath(input string) (parent, prefix string) {
	if input == "" || input == "." {
		return ".", ""
	}
	if strings.HasSuffix(input, "/") || strings.HasSuffix(input, string(filepath.Separator)) {
		parent = strings.TrimRight(input, `/\`)
		if parent == "" {
			parent = string(filepath.Separator)
		}
		return parent, ""
	}
	return filepath.Dir(input), filepath.Base(input)
}

// commonPrefix is the case-insensitive shared prefix of names, spelled as in names[0].
func commonPrefix(names []string) string {
	first := strings.ToLower(names[0])
	n := len(first)
	for _, name := range names[1:] {
		lower := strings.ToLower(name)
		i := 0
		for i < n && i < len(lower) && lower[i] == first[i] {
			i++
		}
		n = i
	}
	return names[0][:n]
}
