// Package logging provides concrete implementations of the assetpack.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted lines to stderr (or any writer), serialized by a mutex
//   - NullLogger: Discards all messages
//   - RecordingLogger: Keeps every line in memory for assertions in tests
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
