package assetpack

import (
	"fmt"
	"sort"
	"strings"
)

// Level is the severity of a Finding.
type Level string

const (
	LevelError   Level = "ERROR"
	LevelWarning Level = "WARNING"
	LevelInfo    Level = "INFO"
)

// Severity ranks levels for display: ERROR sorts first, INFO last.
func (l Level) Severity() int {
	switch l {
	case LevelError:
		return 0
	case LevelWarning:
		return 1
	case LevelInfo:
		return 2
	default:
		return 3
	}
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelError:
		return LevelError, nil
	case LevelWarning:
		return LevelWarning, nil
	case LevelInfo:
		return LevelInfo, nil
	}
	return "", fmt.Errorf("unknown finding level %q", s)
}

// Finding is a single validation or execution outcome.
type Finding struct {
	Level   Level  `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`

	// RelPath is relative to the input root, empty when not tied to a path
	RelPath string `json:"relpath,omitempty"`
}

func (f Finding) String() string {
	if f.RelPath == "" {
		return fmt.Sprintf("[%s] %s: %s", f.Level, f.Code, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s (%s)", f.Level, f.Code, f.Message, f.RelPath)
}

// Errorf builds an ERROR finding.
func Errorf(code, relPath, format string, args ...interface{}) Finding {
	return Finding{Level: LevelError, Code: code, Message: fmt.Sprintf(format, args...), RelPath: relPath}
}

// Warnf builds a WARNING finding.
func Warnf(code, relPath, format string, args ...interface{}) Finding {
	return Finding{Level: LevelWarning, Code: code, Message: fmt.Sprintf(format, args...), RelPath: relPath}
}

// Infof builds an INFO finding.
func Infof(code, relPath, format string, args ...interface{}) Finding {
	return Finding{Level: LevelInfo, Code: code, Message: fmt.Sprintf(format, args...), RelPath: relPath}
}

// SortFindings returns a copy ordered by severity, code, then relpath.
// The input slice is left untouched so generation order stays available.
func SortFindings(findings []Finding) []Finding {
	sorted := append([]Finding(nil), findings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Level.Severity() != b.Level.Severity() {
			return a.Level.Severity() < b.Level.Severity()
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.RelPath < b.RelPath
	})
	return sorted
}

// HasErrors reports whether any finding is ERROR level.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Level == LevelError {
			return true
		}
	}
	return false
}

// CountByLevel tallies findings per level.
func CountByLevel(findings []Finding) map[Level]int {
	counts := make(map[Level]int, 3)
	for _, f := range findings {
		counts[f.Level]++
	}
	return counts
}

// FindingsWithCode filters findings by code, preserving order.
func FindingsWithCode(findings []Finding, code string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Code == code {
			out = append(out, f)
		}
	}
	return out
}
