package assetpack_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, assetpack.ExitSuccess},
		{"general error", errors.New("something went wrong"), assetpack.ExitGeneralError},
		{"invalid config", assetpack.ErrInvalidConfig, assetpack.ExitConfigError},
		{"unsupported hash", fmt.Errorf("hash: %w", assetpack.ErrUnsupportedHash), assetpack.ExitConfigError},
		{"invalid root wrapped", fmt.Errorf("scan: %w", assetpack.ErrInvalidRoot), assetpack.ExitInvalidRoot},
		{"profile not found", assetpack.ErrProfileNotFound, assetpack.ExitProfileError},
		{"profile corrupt", fmt.Errorf("load: %w", assetpack.ErrProfileCorrupt), assetpack.ExitProfileError},
		{"validation failed", assetpack.ErrValidationFailed, assetpack.ExitValidationFailed},
		{"plan blocked", assetpack.ErrPlanBlocked, assetpack.ExitPlanBlocked},
		{"approval denied", assetpack.ErrApprovalDenied, assetpack.ExitApprovalDenied},
		{"pack incomplete", assetpack.ErrPackIncomplete, assetpack.ExitPackIncomplete},
		{"unknown flag", errors.New("unknown flag: --foo"), assetpack.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), assetpack.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assetpack.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
