package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/logging"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// BenchmarkScan benchmarks scanning a small drop on the real filesystem
func BenchmarkScan(b *testing.B) {
	root := b.TempDir()
	for _, dir := range []string{"geo", "tex", "docs"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			b.Fatal(err)
		}
		for i := 0; i < 20; i++ {
			name := filepath.Join(root, dir, fmt.Sprintf("asset_%02d_v001.bin", i))
			if err := os.WriteFile(name, []byte("payload"), 0o644); err != nil {
				b.Fatal(err)
			}
		}
	}

	s := NewScanner(filesystem.NewOSFileSystem(), logging.NewNullLogger())
	opts := assetpack.DefaultScanOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.Scan(root, opts); err != nil {
			b.Fatal(err)
		}
	}
}
