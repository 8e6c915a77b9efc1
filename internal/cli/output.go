package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vvka-141/assetpack/internal/tui"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// printFindings writes one styled line per finding.
func printFindings(w io.Writer, findings []assetpack.Finding) {
	for _, f := range findings {
		fmt.Fprintln(w, tui.RenderFinding(f))
	}
}

// findingCounts formats "2 error(s), 1 warning(s), 1 info".
func findingCounts(findings []assetpack.Finding) string {
	counts := assetpack.CountByLevel(findings)
	return fmt.Sprintf("%d error(s), %d warning(s), %d info",
		counts[assetpack.LevelError], counts[assetpack.LevelWarning], counts[assetpack.LevelInfo])
}

func printScanSummary(w io.Writer, summary assetpack.ScanSummary) {
	fmt.Fprintf(w, "Root:    %s\n", summary.Root)
	fmt.Fprintf(w, "Files:   %d\n", summary.TotalFiles)
	fmt.Fprintf(w, "Folders: %d\n", summary.TotalDirs)
	fmt.Fprintf(w, "Size:    %s\n", formatBytes(summary.TotalBytes))

	if len(summary.Extensions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Extensions:")
		for _, e := range summary.Extensions {
			fmt.Fprintf(w, "  %-10s %d\n", extLabel(e.Ext), e.Count)
		}
	}
	if len(summary.Unsupported) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Not in the built-in allow-list:")
		for _, e := range summary.Unsupported {
			fmt.Fprintf(w, "  %-10s %d\n", extLabel(e.Ext), e.Count)
		}
	}
}

func printPlan(w io.Writer, plan []assetpack.PlanItem) {
	width := 0
	for _, item := range plan {
		if len(item.Category) > width {
			width = len(item.Category)
		}
	}
	for _, item := range plan {
		fmt.Fprintf(w, "%-*s  %s -> %s\n", width, item.Category, item.RelPath, item.Dst)
	}
}

func printPackSummary(w io.Writer, s assetpack.PackSummary) {
	fmt.Fprintf(w, "Packed %d/%d: %d copied, %d skipped, %d failed", s.Processed(), s.Total, s.Copied, s.Skipped, s.Failed)
	if s.Cancelled {
		fmt.Fprint(w, " (cancelled)")
	}
	fmt.Fprintln(w)
}

func extLabel(ext string) string {
	if ext == "" || ext == assetpack.NoExtensionKey {
		return assetpack.NoExtensionKey
	}
	return "." + ext
}

// formatBytes renders a size with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

type extensionJSON struct {
	Ext   string `json:"ext"`
	Count int    `json:"count"`
}

type scanJSON struct {
	Root        string          `json:"root"`
	TotalFiles  int             `json:"total_files"`
	TotalDirs   int             `json:"total_dirs"`
	TotalBytes  int64           `json:"total_bytes"`
	Extensions  []extensionJSON `json:"extensions"`
	Unsupported []extensionJSON `json:"unsupported"`
}

func toExtensionJSON(counts []assetpack.ExtensionCount) []extensionJSON {
	out := make([]extensionJSON, 0, len(counts))
	for _, c := range counts {
		out = append(out, extensionJSON{Ext: c.Ext, Count: c.Count})
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
