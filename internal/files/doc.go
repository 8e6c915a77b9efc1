// Package files groups the file-level building blocks of a delivery.
//
// Sub-packages:
//   - filesystem: go-billy based filesystem abstraction (OS and in-memory) plus copy helpers
//   - scanner: drop folder traversal, file records and the extension histogram
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/assetpack/internal/files/filesystem"
//	    "github.com/vvka-141/assetpack/internal/files/scanner"
//	)
//
//	fsys := filesystem.NewOSFileSystem()
//	fileScanner := scanner.NewScanner(fsys, logger)
//	files, summary, err := fileScanner.Scan("./drops/CrateA", assetpack.DefaultScanOptions())
//
// Both sub-packages only read; writes happen in the pack executor, the
// profile store and the scaffolder, all through the same filesystem abstraction.
package files
