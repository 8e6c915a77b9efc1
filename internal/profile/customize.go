package profile

import (
	"strings"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// Edits describes changes applied to a base profile.
// Nil fields keep the base value.
type Edits struct {
	// Name overrides the result name; empty means "Custom"
	Name string

	RequiredFolders []string
	Extensions      []string
	Rules           *assetpack.Rules
}

// Customize returns a new profile derived from base. base is not modified.
func Customize(base assetpack.Profile, edits Edits) assetpack.Profile {
	name := strings.TrimSpace(edits.Name)
	if name == "" {
		name = assetpack.CustomProfileName
	}

	folders := base.RequiredFolders
	if edits.RequiredFolders != nil {
		folders = cleanFolders(edits.RequiredFolders)
	}

	exts := base.SortedExtensions()
	if edits.Extensions != nil {
		exts = edits.Extensions
	}

	rules := base.Rules
	if edits.Rules != nil {
		rules = *edits.Rules
	}

	return assetpack.NewProfile(name, folders, exts, rules)
}

// ParseList splits a comma or whitespace separated list, dropping blanks.
func ParseList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// cleanFolders trims names, strips surrounding slashes and drops duplicates, keeping order.
func cleanFolders(folders []string) []string {
	seen := make(map[string]struct{}, len(folders))
	out := make([]string, 0, len(folders))
	for _, f := range folders {
		f = strings.Trim(strings.TrimSpace(f), "/\\")
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
