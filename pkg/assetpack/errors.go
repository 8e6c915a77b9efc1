package assetpack

import (
	"errors"
	"strings"
)

// Sentinel errors for structural failures.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	files, summary, err := scanner.Scan(root, opts)
//	if errors.Is(err, assetpack.ErrInvalidRoot) {
//	    // Handle a missing or unreadable input folder
//	}
var (
	// ErrInvalidRoot indicates the scan root is not a readable directory.
	ErrInvalidRoot = errors.New("invalid scan root")

	// ErrProfileNotFound indicates no stored profile exists under the requested name.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileCorrupt indicates a stored profile file could not be parsed.
	ErrProfileCorrupt = errors.New("profile corrupt")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedHash indicates an unknown hash algorithm was requested.
	ErrUnsupportedHash = errors.New("unsupported hash algorithm")

	// ErrPlanBlocked indicates the plan carries ERROR findings and must not be executed.
	ErrPlanBlocked = errors.New("plan blocked by errors")

	// ErrValidationFailed indicates validation produced ERROR findings in strict mode.
	ErrValidationFailed = errors.New("validation failed")

	// ErrApprovalDenied indicates the user denied approval for the operation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrPackIncomplete indicates the pack run had failed items or was cancelled.
	ErrPackIncomplete = errors.New("pack incomplete")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnsupportedHash):
		return ExitConfigError
	case errors.Is(err, ErrInvalidRoot):
		return ExitInvalidRoot
	case errors.Is(err, ErrProfileNotFound), errors.Is(err, ErrProfileCorrupt):
		return ExitProfileError
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrPlanBlocked):
		return ExitPlanBlocked
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrPackIncomplete):
		return ExitPackIncomplete
	}

	// Cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "requires at least", "required flag", "invalid argument"} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
