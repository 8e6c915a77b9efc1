package checksum

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func TestNew_DefaultsToSHA1(t *testing.T) {
	calc, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error = %v", err)
	}
	if calc.Algorithm() != assetpack.HashSHA1 {
		t.Errorf("Algorithm() = %q, want sha1", calc.Algorithm())
	}
}

func TestNew_UnsupportedAlgorithm(t *testing.T) {
	_, err := New("sha512")
	if !errors.Is(err, assetpack.ErrUnsupportedHash) {
		t.Errorf("expected ErrUnsupportedHash, got %v", err)
	}
}

func TestHashBytes_KnownDigests(t *testing.T) {
	tests := []struct {
		name     string
		algo     assetpack.HashAlgorithm
		content  string
		expected string
	}{
		{"sha1 empty", assetpack.HashSHA1, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"sha1 abc", assetpack.HashSHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"md5 empty", assetpack.HashMD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"md5 abc", assetpack.HashMD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := MustNew(tt.algo)
			if got := calc.HashBytes([]byte(tt.content)); got != tt.expected {
				t.Errorf("HashBytes() = %s, want %s", got, tt.expected)
			}

			streamed, err := calc.HashReader(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("HashReader() error = %v", err)
			}
			if streamed != tt.expected {
				t.Errorf("HashReader() = %s, want %s", streamed, tt.expected)
			}
		})
	}
}

func TestHashReader_SmallChunksMatchWholeContent(t *testing.T) {
	content := strings.Repeat("texture-bytes-", 1000)
	calc := Streaming{algo: assetpack.HashSHA1, chunkSize: 7}

	got, err := calc.HashReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("HashReader() error = %v", err)
	}
	if want := calc.HashBytes([]byte(content)); got != want {
		t.Errorf("chunked digest %s differs from whole-content digest %s", got, want)
	}
}

func TestHashReader_PropagatesReadError(t *testing.T) {
	calc := MustNew(assetpack.HashSHA1)
	_, err := calc.HashReader(iotest.ErrReader(errors.New("disk gone")))
	if err == nil || !strings.Contains(err.Error(), "disk gone") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestHashFile(t *testing.T) {
	fsys := filesystem.NewMemoryFileSystem()
	if err := filesystem.WriteFile(fsys, "/drop/a.bin", []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}

	calc := MustNew(assetpack.HashMD5)
	got, err := calc.HashFile(fsys, "/drop/a.bin")
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}
	if got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("HashFile() = %s", got)
	}

	if _, err := calc.HashFile(fsys, "/drop/missing.bin"); err == nil {
		t.Error("expected error for missing file")
	}
}
