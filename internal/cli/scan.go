package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/files/scanner"
	"github.com/vvka-141/assetpack/internal/logging"
)

var scanCmd = &cobra.Command{
	Use:   "scan <input_path>",
	Short: "Inventory a drop folder",
	Long: `Scan walks the drop folder and reports file and folder counts, total size
and an extension histogram. Extensions outside the built-in allow-list are
listed separately. Nothing is validated or written.

Examples:
  assetpack scan ./drops/CrateA
  assetpack scan ./drops/CrateA --ignore-dir .git --ignore-dir tmp
  assetpack scan ./drops/CrateA --json`,
	Args:              RequireInputPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

var scanFlags pipelineFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)
	addScanFlags(scanCmd, &scanFlags)
	scanCmd.Flags().BoolVar(&scanFlags.json, "json", false, "Print the summary as JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	inputRoot := args[0]
	verbose := getVerboseFlag(cmd)

	s, err := resolveSettings(cmd, inputRoot, &scanFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	sc := scanner.NewScanner(filesystem.NewOSFileSystem(), logger)
	_, summary, err := sc.Scan(inputRoot, s.ScanOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scanFlags.json {
		return writeJSON(out, scanJSON{
			Root:        summary.Root,
			TotalFiles:  summary.TotalFiles,
			TotalDirs:   summary.TotalDirs,
			TotalBytes:  summary.TotalBytes,
			Extensions:  toExtensionJSON(summary.Extensions),
			Unsupported: toExtensionJSON(summary.Unsupported),
		})
	}
	printScanSummary(out, summary)
	return nil
}
