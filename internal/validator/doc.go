// Package validator checks a scanned drop against a profile's rules.
//
// Validation never fails: every problem is reported as an assetpack.Finding.
// The only early exit is an unreadable input root (ROOT_UNREADABLE), which
// suppresses all remaining checks.
//
// Rule blocks, each gated by the profile's rule toggles:
//   - required top-level folders
//   - no spaces in folder names, file names or paths
//   - version token (v001, _v0012) in file names
//   - extensions outside the profile allow-list, aggregated per extension
//   - duplicate file names anywhere in the tree
//
// A PROFILE_ACTIVE info finding always closes the list.
package validator
