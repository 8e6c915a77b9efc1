package assetpack_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func TestNewProfile_NormalizesExtensions(t *testing.T) {
	p := assetpack.NewProfile("Test", []string{"geo"}, []string{".FBX", "png", " Tga ", ""}, assetpack.AllRules())

	want := []string{"fbx", "png", "tga"}
	if got := p.SortedExtensions(); !reflect.DeepEqual(got, want) {
		t.Errorf("SortedExtensions() = %v, want %v", got, want)
	}
	if !p.Allows("fbx") || p.Allows(".fbx") || p.Allows("FBX") {
		t.Error("Allows should match normalized extensions only")
	}
}

func TestNewProfile_CopiesFolders(t *testing.T) {
	folders := []string{"geo", "tex"}
	p := assetpack.NewProfile("Test", folders, nil, assetpack.Rules{})
	folders[0] = "changed"
	if p.RequiredFolders[0] != "geo" {
		t.Error("profile shares the caller's folder slice")
	}
}

func TestProfile_Validate(t *testing.T) {
	if err := (assetpack.Profile{Name: "  "}).Validate(); !errors.Is(err, assetpack.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if err := (assetpack.Profile{Name: "VFX"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseHashAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    assetpack.HashAlgorithm
		wantErr bool
	}{
		{"", assetpack.HashSHA1, false},
		{"sha1", assetpack.HashSHA1, false},
		{"MD5", assetpack.HashMD5, false},
		{"sha256", "", true},
	}
	for _, tt := range tests {
		got, err := assetpack.ParseHashAlgorithm(tt.in)
		if tt.wantErr {
			if !errors.Is(err, assetpack.ErrUnsupportedHash) {
				t.Errorf("ParseHashAlgorithm(%q): expected ErrUnsupportedHash, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseHashAlgorithm(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestPackOptions_Validate(t *testing.T) {
	opts := assetpack.DefaultPackOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
	opts.HashAlgo = "crc32"
	if err := opts.Validate(); err == nil {
		t.Error("expected error for unknown hash algorithm")
	}
	opts.VerifyHash = false
	if err := opts.Validate(); err != nil {
		t.Errorf("hash algorithm should be ignored without verification: %v", err)
	}
}

func TestSortExtensionCounts(t *testing.T) {
	counts := []assetpack.ExtensionCount{{"png", 2}, {"abc", 1}, {"fbx", 2}, {"", 3}}
	assetpack.SortExtensionCounts(counts)
	want := []assetpack.ExtensionCount{{"", 3}, {"fbx", 2}, {"png", 2}, {"abc", 1}}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("got %v, want %v", counts, want)
	}

	s := assetpack.ScanSummary{Extensions: counts}
	if s.ExtensionCount("fbx") != 2 || s.ExtensionCount("obj") != 0 {
		t.Error("ExtensionCount lookup mismatch")
	}
}

func TestPackSummary_Processed(t *testing.T) {
	s := assetpack.PackSummary{Total: 10, Copied: 3, Skipped: 2, Failed: 1}
	if s.Processed() != 6 {
		t.Errorf("Processed() = %d, want 6", s.Processed())
	}
}
