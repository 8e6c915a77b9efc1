package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/identity"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

//go:embed templates/report.html.tmpl
var templatesFS embed.FS

var reportTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{"pillClass": pillClass}).
		ParseFS(templatesFS, "templates/report.html.tmpl"),
)

func pillClass(level assetpack.Level) string {
	switch level {
	case assetpack.LevelError:
		return "err"
	case assetpack.LevelWarning:
		return "warn"
	default:
		return "info"
	}
}

type findingGroup struct {
	Level    assetpack.Level
	Title    string
	Noun     string
	Findings []assetpack.Finding
}

type categoryCount struct {
	Name  string
	Count int
}

type planRow struct {
	Category string
	RelPath  string
	Dst      string
	Hash     string
}

type reportView struct {
	Meta         Meta
	Generated    string
	DeliveryID   string
	ErrorCount   int
	WarningCount int
	InfoCount    int
	Groups       []findingGroup
	Categories   []categoryCount
	Rows         []planRow
}

// BuildHTML renders the delivery report. Findings are grouped by level and
// sorted within each group; all values are HTML-escaped.
func BuildHTML(meta Meta, findings []assetpack.Finding, plan []assetpack.PlanItem, hashes map[string]string) (string, error) {
	view := reportView{
		Meta:       meta,
		Generated:  meta.timestamp(),
		DeliveryID: identity.DeliveryID(meta.Identity).String(),
		Groups: []findingGroup{
			{Level: assetpack.LevelError, Title: "Errors", Noun: "errors"},
			{Level: assetpack.LevelWarning, Title: "Warnings", Noun: "warnings"},
			{Level: assetpack.LevelInfo, Title: "Info", Noun: "infos"},
		},
	}

	for _, f := range assetpack.SortFindings(findings) {
		switch f.Level {
		case assetpack.LevelError:
			view.Groups[0].Findings = append(view.Groups[0].Findings, f)
		case assetpack.LevelWarning:
			view.Groups[1].Findings = append(view.Groups[1].Findings, f)
		default:
			view.Groups[2].Findings = append(view.Groups[2].Findings, f)
		}
	}
	view.ErrorCount = len(view.Groups[0].Findings)
	view.WarningCount = len(view.Groups[1].Findings)
	view.InfoCount = len(view.Groups[2].Findings)

	counts := make(map[string]int)
	for _, item := range plan {
		counts[item.Category]++
		view.Rows = append(view.Rows, planRow{
			Category: item.Category,
			RelPath:  item.RelPath,
			Dst:      item.Dst,
			Hash:     hashes[item.Src],
		})
	}
	for name, count := range counts {
		view.Categories = append(view.Categories, categoryCount{Name: name, Count: count})
	}
	sort.Slice(view.Categories, func(i, j int) bool {
		a, b := view.Categories[i], view.Categories[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

// WriteHTML renders the report and writes it to path, creating parent directories.
func WriteHTML(fsys filesystem.FileSystem, meta Meta, findings []assetpack.Finding, plan []assetpack.PlanItem, hashes map[string]string, path string) error {
	html, err := BuildHTML(meta, findings, plan, hashes)
	if err != nil {
		return err
	}
	if err := filesystem.WriteFile(fsys, path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
