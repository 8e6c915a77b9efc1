package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetpack/internal/logging"
	"github.com/vvka-141/assetpack/internal/ui"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

var planCmd = &cobra.Command{
	Use:   "plan <input_path>",
	Short: "Preview where every file of a drop will be delivered",
	Long: `Plan scans and validates the drop folder, then maps every file to its
destination in the delivery tree without writing anything:

  <output_root>/<Project>/<Asset>/<Version>/<category>/<file>

Missing or malformed identity fields and destination collisions are ERROR
findings; the command then exits with code 23.

Examples:
  assetpack plan ./drops/CrateA -o /deliveries --project Orion --asset CrateA --version v001
  assetpack plan ./drops/CrateA -o /deliveries --project Orion --asset CrateA --version v001 --json`,
	Args:              RequireInputPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runPlan,
}

var planFlags pipelineFlagValues

func init() {
	rootCmd.AddCommand(planCmd)
	addProfileFlags(planCmd, &planFlags)
	addScanFlags(planCmd, &planFlags)
	addIdentityFlags(planCmd, &planFlags)
	planCmd.Flags().BoolVar(&planFlags.json, "json", false, "Print the manifest the pack run would write, without hashes")
}

func runPlan(cmd *cobra.Command, args []string) error {
	inputRoot := args[0]
	verbose := getVerboseFlag(cmd)

	s, err := resolveSettings(cmd, inputRoot, &planFlags, verbose)
	if err != nil {
		return err
	}
	if err := requireOutputRoot(s); err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	prof, err := resolveProfile(s, logger)
	if err != nil {
		return err
	}

	svc := newDeliveryService(ui.NewInteractiveApprover(verbose), logger)
	req := buildRequest(s, inputRoot, prof, false)
	insp, err := svc.Inspect(context.Background(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if planFlags.json {
		if err := writeJSON(out, svc.Preview(req, insp)); err != nil {
			return err
		}
	} else {
		printPlan(out, insp.Plan)
		if findings := insp.Findings(); len(findings) > 0 {
			fmt.Fprintln(out)
			printFindings(out, findings)
		}
		if insp.DeliveryDir != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "\n%d item(s) planned into %s\n", len(insp.Plan), insp.DeliveryDir)
		}
	}

	if assetpack.HasErrors(insp.PlanFindings) {
		return fmt.Errorf("%d plan error(s): %w",
			assetpack.CountByLevel(insp.PlanFindings)[assetpack.LevelError], assetpack.ErrPlanBlocked)
	}
	return nil
}
