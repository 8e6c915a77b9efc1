package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetpack/internal/profile"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// hashAlgorithms contains the supported checksum algorithms for shell completion.
var hashAlgorithms = []string{string(assetpack.HashSHA1), string(assetpack.HashMD5)}

// completeProfileNames offers the built-in profiles plus any stored in the default profiles folder.
func completeProfileNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := profile.BuiltinNames()
	if store, err := openProfileStore("", nil); err == nil {
		if stored, err := store.List(); err == nil {
			names = mergeNames(names, stored)
		}
	}

	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeProfileFlag completes the --profile flag value.
func completeProfileFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeProfileNames(cmd, nil, toComplete)
}

// completeHashAlgorithms provides shell completion for --hash values.
func completeHashAlgorithms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(hashAlgorithms, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

func filterPrefix(items []string, prefix string) []string {
	var matches []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), strings.ToLower(prefix)) {
			matches = append(matches, item)
		}
	}
	return matches
}

// mergeNames appends the names of extra missing from base, case-insensitively.
// The extra names are sorted.
func mergeNames(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base))
	out := append([]string(nil), base...)
	for _, n := range base {
		seen[strings.ToLower(n)] = struct{}{}
	}

	sorted := append([]string(nil), extra...)
	sort.Strings(sorted)
	for _, n := range sorted {
		if _, ok := seen[strings.ToLower(n)]; ok {
			continue
		}
		seen[strings.ToLower(n)] = struct{}{}
		out = append(out, n)
	}
	return out
}
