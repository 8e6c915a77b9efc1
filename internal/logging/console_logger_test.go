package logging

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)
	logger.Verbose("copying %s", "geo/CrateA_v001.fbx")

	assert.Equal(t, "[VERBOSE] copying geo/CrateA_v001.fbx\n", buf.String())
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Verbose("copying %s", "geo/CrateA_v001.fbx")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_InfoAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Info("packed %d files", 4)
	logger.Error("copy failed: %s", "disk full")

	assert.Equal(t, "packed 4 files\n[ERROR] copy failed: disk full\n", buf.String())
}

func TestConsoleLogger_LiteralPercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Info("100% done")

	assert.Equal(t, "100% done\n", buf.String())
}

func TestNewWriterLogger_NilWriterPanics(t *testing.T) {
	assert.Panics(t, func() { NewWriterLogger(nil, false) })
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 30)
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()
}

func TestRecordingLogger(t *testing.T) {
	logger := NewRecordingLogger()
	logger.Verbose("scanned %d files", 3)
	logger.Error("boom")

	assert.Equal(t, []string{"VERBOSE: scanned 3 files", "ERROR: boom"}, logger.Lines())
	assert.True(t, logger.Contains("scanned 3"))
	assert.False(t, logger.Contains("missing"))
}

func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewWriterLogger(&bytes.Buffer{}, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

// Example demonstrates the ConsoleLogger line format
func ExampleConsoleLogger() {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)
	logger.Info("Packing CrateA v001")
	logger.Verbose("copy tex/CrateA_v001_diffuse.png")
	logger.Error("hash mismatch")
	fmt.Print(buf.String())
	// Output:
	// Packing CrateA v001
	// [VERBOSE] copy tex/CrateA_v001_diffuse.png
	// [ERROR] hash mismatch
}
