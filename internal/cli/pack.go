package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetpack/internal/logging"
	"github.com/vvka-141/assetpack/internal/services"
	"github.com/vvka-141/assetpack/internal/tui"
	"github.com/vvka-141/assetpack/internal/ui"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

var packCmd = &cobra.Command{
	Use:   "pack <input_path>",
	Short: "Copy a drop folder into the versioned delivery tree",
	Long: `Pack scans, validates and plans the drop folder, then copies every file
into the delivery tree. Copies are verified with checksums unless
--no-verify is given. A manifest (docs/manifest.json) and an HTML report
(docs/report.html) are written into the version folder.

The pack command:
1. Refuses to run when the plan has errors (exit 23)
2. With --strict, refuses when validation has errors (exit 22)
3. With --overwrite into a version folder that already has content,
   asks you to type the version to confirm (or counts down with --force)
4. Copies files one by one; Ctrl+C stops at the next file boundary
5. Exits with code 25 when any file failed or the run was cancelled

Existing files are skipped unless --overwrite is set.

Examples:
  # Basic delivery
  assetpack pack ./drops/CrateA -o /deliveries --project Orion --asset CrateA --version v001

  # Re-deliver over an existing version from CI
  assetpack pack ./drops/CrateA -o /deliveries --project Orion --asset CrateA --version v001 \
    --overwrite --force

  # Identity and output root from assetpack.yaml in the drop folder
  assetpack pack ./drops/CrateA --strict`,
	Args:              RequireInputPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runPack,
}

var packFlags pipelineFlagValues

func init() {
	rootCmd.AddCommand(packCmd)
	addProfileFlags(packCmd, &packFlags)
	addScanFlags(packCmd, &packFlags)
	addIdentityFlags(packCmd, &packFlags)
	addPackFlags(packCmd, &packFlags)
}

func runPack(cmd *cobra.Command, args []string) error {
	inputRoot := args[0]
	verbose := getVerboseFlag(cmd)

	s, err := resolveSettings(cmd, inputRoot, &packFlags, verbose)
	if err != nil {
		return err
	}
	if packFlags.force && !s.Overwrite {
		return fmt.Errorf("--force only applies with --overwrite\n\nUse --overwrite --force to replace existing files without confirmation")
	}
	if err := requireOutputRoot(s); err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	prof, err := resolveProfile(s, logger)
	if err != nil {
		return err
	}

	// Select approver implementation based on --force flag
	var approver assetpack.Approver
	if packFlags.force {
		approver = ui.NewForcedApprover(verbose)
	} else {
		approver = ui.NewInteractiveApprover(verbose)
	}
	svc := newDeliveryService(approver, logger)
	req := buildRequest(s, inputRoot, prof, packFlags.strict)

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stderr := cmd.ErrOrStderr()
	insp, err := svc.Prepare(ctx, req)
	if err != nil {
		if insp != nil {
			printFindings(stderr, refusalFindings(insp, err))
		}
		return fmt.Errorf("pack refused: %w", err)
	}

	var result *services.Result
	job := func(onProgress assetpack.ProgressFunc, isCancelled assetpack.CancelFunc) error {
		var execErr error
		result, execErr = svc.Execute(ctx, req, insp, services.Hooks{OnProgress: onProgress, IsCancelled: isCancelled})
		return execErr
	}

	title := fmt.Sprintf("Packing %s / %s / %s", req.Identity.Project, req.Identity.Asset, req.Identity.Version)
	mode := tui.Detect()
	logger.Verbose("Progress output: %s (%s)", mode.Mode, mode.Reason)
	if mode.Mode == tui.ModeInteractive {
		err = tui.RunPack(title, len(insp.Plan), job)
	} else {
		fmt.Fprintln(stderr, title)
		err = tui.RunPackLines(ctx, stderr, job)
	}

	if result != nil {
		reportPackResult(cmd.OutOrStdout(), stderr, result)
	}
	if err != nil {
		return fmt.Errorf("pack failed: %w", err)
	}
	return nil
}

// refusalFindings picks the findings that explain why a delivery was refused.
func refusalFindings(insp *services.Inspection, err error) []assetpack.Finding {
	switch {
	case errors.Is(err, assetpack.ErrPlanBlocked):
		return insp.PlanFindings
	case errors.Is(err, assetpack.ErrValidationFailed):
		return insp.Validation
	}
	return nil
}

func reportPackResult(stdout, stderr io.Writer, result *services.Result) {
	printFindings(stderr, result.Findings())
	fmt.Fprintln(stderr)
	printPackSummary(stderr, result.Pack)

	fmt.Fprintf(stdout, "%s\n", result.DeliveryDir)
	if result.ManifestPath != "" {
		fmt.Fprintf(stderr, "Manifest: %s\n", result.ManifestPath)
	}
	if result.ReportPath != "" {
		fmt.Fprintf(stderr, "Report:   %s\n", result.ReportPath)
	}
}
