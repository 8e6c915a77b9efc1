package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// ConsoleLogger writes log messages to a writer, stderr by default.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose)
}

// NewWriterLogger creates a ConsoleLogger writing to out.
// Panics if out is nil.
func NewWriterLogger(out io.Writer, verbose bool) *ConsoleLogger {
	if out == nil {
		panic("out cannot be nil")
	}
	return &ConsoleLogger{verbose: verbose, out: out}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, prefix+formatMessage(format, args)+"\n")
}

// formatMessage leaves format untouched when there are no args, so literal
// '%' in file names survive.
func formatMessage(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

var _ assetpack.Logger = (*ConsoleLogger)(nil)
