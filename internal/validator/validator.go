package validator

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// versionToken matches v001 / _v001 / -v0012 / .v001 inside a file name.
var versionToken = regexp.MustCompile(`(?i)(^|[_\-.])v(\d{3,4})($|[_\-.])`)

// versionExempt lists extensions never required to carry a version token.
var versionExempt = map[string]struct{}{
	"md": {}, "txt": {}, "pdf": {}, "csv": {}, "log": {},
}

// input bundles what every rule block reads.
type input struct {
	files    []assetpack.FileRecord
	summary  assetpack.ScanSummary
	profile  assetpack.Profile
	topLevel []string
}

// ruleBlock produces the findings of one independent check.
type ruleBlock func(in input) []assetpack.Finding

// Validator applies profile rules to scanner output.
// Validator is stateless and safe for concurrent use.
type Validator struct {
	fsys   filesystem.FileSystem
	logger assetpack.Logger
	blocks []ruleBlock
}

// New creates a validator that lists top-level folders through fsys.
// Panics if fsys or logger is nil.
func New(fsys filesystem.FileSystem, logger assetpack.Logger) *Validator {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Validator{
		fsys:   fsys,
		logger: logger,
		blocks: []ruleBlock{
			checkRequiredFolders,
			checkSpaces,
			checkVersionTokens,
			checkExtensions,
			checkDuplicateNames,
		},
	}
}

// Validate runs every rule block against the scan of inputRoot and returns
// the findings in rule-block order, closed by a PROFILE_ACTIVE info finding.
func (v *Validator) Validate(inputRoot string, files []assetpack.FileRecord, summary assetpack.ScanSummary, profile assetpack.Profile) []assetpack.Finding {
	topLevel, err := filesystem.SubdirNames(v.fsys, inputRoot)
	if err != nil {
		v.logger.Verbose("Cannot list %s: %v", inputRoot, err)
		return []assetpack.Finding{
			assetpack.Errorf(assetpack.CodeRootUnreadable, "", "Input root cannot be read."),
		}
	}

	in := input{
		files:    files,
		summary:  summary,
		profile:  profile,
		topLevel: topLevel,
	}

	var findings []assetpack.Finding
	for _, block := range v.blocks {
		findings = append(findings, block(in)...)
	}
	findings = append(findings,
		assetpack.Infof(assetpack.CodeProfileActive, "", "Validation profile active: %s", profile.Name))

	v.logger.Verbose("Validated %d files against %s: %d findings", len(files), profile.Name, len(findings))
	return findings
}

func checkRequiredFolders(in input) []assetpack.Finding {
	existing := make(map[string]struct{}, len(in.topLevel))
	for _, name := range in.topLevel {
		existing[name] = struct{}{}
	}

	level := assetpack.LevelWarning
	if in.profile.Rules.ErrorMissingRequiredFolders {
		level = assetpack.LevelError
	}

	var findings []assetpack.Finding
	for _, req := range in.profile.RequiredFolders {
		if _, ok := existing[req]; ok {
			continue
		}
		findings = append(findings, assetpack.Finding{
			Level:   level,
			Code:    assetpack.CodeReqFolderMissing,
			Message: "Required folder missing for " + in.profile.Name + ": '" + req + "/'",
			RelPath: req + "/",
		})
	}
	return findings
}

func checkSpaces(in input) []assetpack.Finding {
	if !in.profile.Rules.EnforceNoSpaces {
		return nil
	}

	var findings []assetpack.Finding
	for _, dir := range in.topLevel {
		if strings.Contains(dir, " ") {
			findings = append(findings,
				assetpack.Errorf(assetpack.CodeSpaceInDirname, dir+"/", "Folder name contains spaces: '%s'", dir))
		}
	}

	for _, f := range in.files {
		nameHasSpace := strings.Contains(f.Name, " ")
		if nameHasSpace {
			findings = append(findings,
				assetpack.Errorf(assetpack.CodeSpaceInFilename, f.RelPath, "File name contains spaces: '%s'", f.Name))
			// the path check would only repeat this file
			continue
		}
		if strings.Contains(f.RelPath, " ") {
			findings = append(findings,
				assetpack.Errorf(assetpack.CodeSpaceInPath, f.RelPath, "Path contains spaces (folder name)."))
		}
	}
	return findings
}

func checkVersionTokens(in input) []assetpack.Finding {
	if !in.profile.Rules.WarnMissingVersionToken {
		return nil
	}

	var findings []assetpack.Finding
	for _, f := range in.files {
		if _, exempt := versionExempt[f.Ext]; exempt {
			continue
		}
		if !HasVersionToken(f.Name) {
			findings = append(findings,
				assetpack.Warnf(assetpack.CodeVersionTokenMissing, f.RelPath, "Filename missing version token (e.g. v001 or _v001)."))
		}
	}
	return findings
}

func checkExtensions(in input) []assetpack.Finding {
	if !in.profile.Rules.WarnUnsupportedExtensions {
		return nil
	}

	var findings []assetpack.Finding
	for _, bucket := range in.summary.Extensions {
		if bucket.Ext == "" {
			findings = append(findings,
				assetpack.Warnf(assetpack.CodeNoExtensionFiles, "", "%d file(s) have no extension.", bucket.Count))
			continue
		}
		if !in.profile.Allows(bucket.Ext) {
			findings = append(findings,
				assetpack.Warnf(assetpack.CodeUnsupportedExtension, "", "Extension '.%s' not in %s allowlist (%d file(s)).",
					bucket.Ext, in.profile.Name, bucket.Count))
		}
	}
	return findings
}

func checkDuplicateNames(in input) []assetpack.Finding {
	byName := make(map[string][]string)
	var order []string
	for _, f := range in.files {
		key := strings.ToLower(f.Name)
		if _, seen := byName[key]; !seen {
			order = append(order, key)
		}
		byName[key] = append(byName[key], f.RelPath)
	}
	sort.Strings(order)

	var findings []assetpack.Finding
	for _, key := range order {
		paths := byName[key]
		if len(paths) < 2 {
			continue
		}
		findings = append(findings,
			assetpack.Warnf(assetpack.CodeDuplicateFilename, paths[0], "Duplicate filename appears %d times: '%s'", len(paths), key))
	}
	return findings
}

// HasVersionToken reports whether name carries a delimited v### or v#### token.
func HasVersionToken(name string) bool {
	return versionToken.MatchString(name)
}

var _ assetpack.Validator = (*Validator)(nil)
