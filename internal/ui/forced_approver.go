package ui

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

//go:embed assets/overwrite_banner.txt
var overwriteBanner string

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval. It displays a countdown and automatically approves after the countdown,
// used when the --force flag is provided.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
	sleepFn func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) assetpack.Approver {
	return &ForcedApprover{
		verbose: verbose,
		output:  os.Stderr,
		sleepFn: time.Sleep,
	}
}

// RequestApproval displays a countdown and automatically approves after the countdown.
// confirm is not required from the user here; it is echoed so the log shows what was approved.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target, confirm string) (bool, error) {
	warningText := strings.ReplaceAll(overwriteBanner, "${target}", target)
	fmt.Fprintln(a.output)
	fmt.Fprint(a.output, warningText)
	fmt.Fprintln(a.output)
	if a.verbose && confirm != "" {
		fmt.Fprintf(a.output, "[VERBOSE] Forced approval for version %s\n", confirm)
	}

	countdownSeconds := int(assetpack.DefaultForceApprovalCountdown.Seconds())
	for i := countdownSeconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.output)
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rOverwriting in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(1 * time.Second)
		}
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(a.output)
		return false, ctx.Err()
	default:
	}

	fmt.Fprintf(a.output, "\r✓ Proceeding with overwrite...                                        \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ assetpack.Approver = (*ForcedApprover)(nil)
