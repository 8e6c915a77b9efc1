// Package filesystem provides the filesystem abstraction the delivery pipeline runs on.
//
// The pipeline reads and writes through a go-billy Filesystem so the same code
// works against the OS and against an in-memory tree in tests.
//
// Implementations:
//   - NewOSFileSystem: native OS filesystem, paths are used as given (absolute paths work)
//   - NewMemoryFileSystem: in-memory filesystem for testing
//
// Helpers cover the operations billy leaves to callers: existence checks,
// immediate subdirectory listing, and a copy that preserves size, mode and
// modification time.
package filesystem
