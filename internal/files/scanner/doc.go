// Package scanner provides file discovery and aggregate statistics for asset drops.
//
// The scanner package is responsible for:
//   - Recursively discovering files under an input root
//   - Pruning ignored and hidden directories before descent
//   - Recording per-file metadata (relative path, name, extension, size)
//   - Building the extension histogram and the unsupported-extension subset
//
// The scanner is filesystem-agnostic through the filesystem.FileSystem
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
