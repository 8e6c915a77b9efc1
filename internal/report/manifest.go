package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/identity"
	"github.com/vvka-141/assetpack/internal/planner"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// Meta describes the delivery a manifest or report is written for.
type Meta struct {
	Tool        string
	ToolVersion string
	Profile     string
	InputRoot   string
	OutputRoot  string
	Identity    assetpack.Identity
	HashAlgo    assetpack.HashAlgorithm

	// GeneratedAt defaults to the current time
	GeneratedAt time.Time
}

func (m Meta) timestamp() string {
	t := m.GeneratedAt
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}

// Manifest is the JSON record of one delivery.
type Manifest struct {
	Tool            string   `json:"tool"`
	Version         string   `json:"version"`
	TimestampUTC    string   `json:"timestamp_utc"`
	DeliveryID      string   `json:"delivery_id"`
	Profile         string   `json:"profile"`
	InputRoot       string   `json:"input_root"`
	OutputRoot      string   `json:"output_root"`
	Project         string   `json:"project"`
	AssetName       string   `json:"asset_name"`
	DeliveryVersion string   `json:"delivery_version"`
	HashAlgo        string   `json:"hash_algo"`
	Results         []Result `json:"results"`
	Files           []File   `json:"files"`
}

// Result is a finding as written to the manifest; relpath is null when unset.
type Result struct {
	Level   string  `json:"level"`
	Code    string  `json:"code"`
	Message string  `json:"message"`
	RelPath *string `json:"relpath"`
}

// File is one plan item as written to the manifest.
type File struct {
	ID       string `json:"id"`
	Src      string `json:"src"`
	Dst      string `json:"dst"`
	RelPath  string `json:"relpath"`
	Category string `json:"category"`

	// SizeBytes and MTime are null when stats are off or the source cannot be read
	SizeBytes *int64  `json:"size_bytes"`
	MTime     *string `json:"mtime"`

	Hash string `json:"hash,omitempty"`
}

// BuildManifest assembles the manifest. Source files are stat'ed through fsys
// when includeStats is set; hashes come from the pack run and may be nil.
func BuildManifest(fsys filesystem.FileSystem, meta Meta, findings []assetpack.Finding, plan []assetpack.PlanItem, hashes map[string]string, includeStats bool) Manifest {
	deliveryID := identity.DeliveryID(meta.Identity)
	deliveryDir := planner.DeliveryDir(meta.OutputRoot, meta.Identity)

	results := make([]Result, 0, len(findings))
	for _, f := range findings {
		r := Result{Level: string(f.Level), Code: f.Code, Message: f.Message}
		if f.RelPath != "" {
			rel := f.RelPath
			r.RelPath = &rel
		}
		results = append(results, r)
	}

	files := make([]File, 0, len(plan))
	for _, item := range plan {
		entry := File{
			ID:       identity.ItemID(deliveryID, identity.RelativeDestination(deliveryDir, item.Dst)).String(),
			Src:      item.Src,
			Dst:      item.Dst,
			RelPath:  item.RelPath,
			Category: item.Category,
			Hash:     hashes[item.Src],
		}
		if includeStats {
			if info, err := fsys.Stat(item.Src); err == nil {
				size := info.Size()
				mtime := info.ModTime().UTC().Format(time.RFC3339)
				entry.SizeBytes = &size
				entry.MTime = &mtime
			}
		}
		files = append(files, entry)
	}

	return Manifest{
		Tool:            meta.Tool,
		Version:         meta.ToolVersion,
		TimestampUTC:    meta.timestamp(),
		DeliveryID:      deliveryID.String(),
		Profile:         meta.Profile,
		InputRoot:       meta.InputRoot,
		OutputRoot:      meta.OutputRoot,
		Project:         meta.Identity.Project,
		AssetName:       meta.Identity.Asset,
		DeliveryVersion: meta.Identity.Version,
		HashAlgo:        string(meta.HashAlgo),
		Results:         results,
		Files:           files,
	}
}

// MarshalManifest encodes m as 2-space indented JSON without HTML escaping.
func MarshalManifest(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteManifestJSON writes m to path, creating parent directories.
func WriteManifestJSON(fsys filesystem.FileSystem, m Manifest, path string) error {
	data, err := MarshalManifest(m)
	if err != nil {
		return err
	}
	if err := filesystem.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}
