package logging

import (
	"strings"
	"sync"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// RecordingLogger keeps formatted messages in memory, verbose included.
type RecordingLogger struct {
	mu    sync.Mutex
	lines []string
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) Verbose(format string, args ...interface{}) {
	l.add("VERBOSE", format, args)
}

func (l *RecordingLogger) Info(format string, args ...interface{}) {
	l.add("INFO", format, args)
}

func (l *RecordingLogger) Error(format string, args ...interface{}) {
	l.add("ERROR", format, args)
}

func (l *RecordingLogger) add(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+formatMessage(format, args))
}

// Lines returns a copy of the recorded lines, each prefixed with its level.
func (l *RecordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains reports whether any recorded line contains substr.
func (l *RecordingLogger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

var _ assetpack.Logger = (*RecordingLogger)(nil)
