package planner

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// versionPattern is the whole-string form of a delivery version.
var versionPattern = regexp.MustCompile(`(?i)^v\d{3,4}$`)

// Planner builds delivery plans. It holds no per-run state.
type Planner struct {
	logger assetpack.Logger
}

// New creates a planner.
// Panics if logger is nil.
func New(logger assetpack.Logger) *Planner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Planner{logger: logger}
}

// ValidateIdentity checks the delivery identity fields.
func ValidateIdentity(id assetpack.Identity) []assetpack.Finding {
	var findings []assetpack.Finding

	if strings.TrimSpace(id.Project) == "" {
		findings = append(findings, assetpack.Errorf(assetpack.CodeProjectMissing, "", "Project name is required."))
	}
	if strings.TrimSpace(id.Asset) == "" {
		findings = append(findings, assetpack.Errorf(assetpack.CodeAssetMissing, "", "Asset name is required."))
	}

	version := strings.TrimSpace(id.Version)
	switch {
	case version == "":
		findings = append(findings, assetpack.Errorf(assetpack.CodeVersionMissing, "", "Version is required (e.g. v001)."))
	case !IsValidVersion(version):
		findings = append(findings, assetpack.Errorf(assetpack.CodeVersionInvalid, "", "Version must look like v001 (or v0001)."))
	}
	return findings
}

// IsValidVersion reports whether version is exactly "v" plus 3 or 4 digits, in any case.
func IsValidVersion(version string) bool {
	return versionPattern.MatchString(version)
}

// DeliveryDir returns <outputRoot>/<project>/<asset>/<version> with the
// output root made absolute and identity fields trimmed.
func DeliveryDir(outputRoot string, id assetpack.Identity) string {
	root, err := filepath.Abs(outputRoot)
	if err != nil {
		root = filepath.Clean(outputRoot)
	}
	return filepath.Join(root,
		strings.TrimSpace(id.Project),
		strings.TrimSpace(id.Asset),
		strings.TrimSpace(id.Version))
}

// Plan maps every file to its destination under outputRoot. When the
// identity is invalid the plan is empty and only identity findings are
// returned. Colliding items stay in the plan; the collision findings are
// what blocks execution.
func (p *Planner) Plan(files []assetpack.FileRecord, outputRoot string, id assetpack.Identity) ([]assetpack.PlanItem, []assetpack.Finding) {
	findings := ValidateIdentity(id)
	if assetpack.HasErrors(findings) {
		p.logger.Verbose("Identity invalid, plan is empty")
		return nil, findings
	}

	base := DeliveryDir(outputRoot, id)

	plan := make([]assetpack.PlanItem, 0, len(files))
	for _, f := range files {
		category := Categorize(f)
		plan = append(plan, assetpack.PlanItem{
			Src:      f.Path,
			RelPath:  f.RelPath,
			Dst:      filepath.Join(base, filepath.FromSlash(category), f.Name),
			Category: category,
		})
	}

	findings = append(findings, detectCollisions(plan)...)
	p.logger.Verbose("Planned %d items into %s", len(plan), base)
	return plan, findings
}

// CollisionKey normalizes a destination for case- and separator-insensitive comparison.
func CollisionKey(dst string) string {
	return strings.ToLower(filepath.ToSlash(filepath.Clean(dst)))
}

func detectCollisions(plan []assetpack.PlanItem) []assetpack.Finding {
	groups := make(map[string][]int)
	var order []string
	for i, item := range plan {
		key := CollisionKey(item.Dst)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var collided []string
	for _, key := range order {
		if len(groups[key]) > 1 {
			collided = append(collided, key)
		}
	}

	var findings []assetpack.Finding
	for i, key := range collided {
		if i == assetpack.MaxReportedCollisions {
			break
		}
		sample := plan[groups[key][0]]
		findings = append(findings, assetpack.Errorf(assetpack.CodeDestCollision, sample.RelPath,
			"Multiple files map to the same destination: %s", sample.Dst))
	}
	if extra := len(collided) - assetpack.MaxReportedCollisions; extra > 0 {
		findings = append(findings, assetpack.Errorf(assetpack.CodeDestCollisionMore, "",
			"%d more destination collisions not shown.", extra))
	}
	return findings
}

var _ assetpack.Planner = (*Planner)(nil)
