package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/files/scanner"
	"github.com/vvka-141/assetpack/internal/logging"
	"github.com/vvka-141/assetpack/internal/validator"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input_path>",
	Short: "Check a drop folder against a delivery profile",
	Long: `Validate scans the drop folder and checks it against a profile:
required top-level folders, spaces in names, version tokens in file names,
allowed extensions and duplicate file names.

Findings are printed as ERROR, WARNING or INFO. The command exits with
code 22 when any ERROR is reported.

Examples:
  assetpack validate ./drops/CrateA
  assetpack validate ./drops/CrateA --profile Game
  assetpack validate ./drops/CrateA --json`,
	Args:              RequireInputPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runValidate,
}

var validateFlags pipelineFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)
	addProfileFlags(validateCmd, &validateFlags)
	addScanFlags(validateCmd, &validateFlags)
	validateCmd.Flags().BoolVar(&validateFlags.json, "json", false, "Print findings as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	inputRoot := args[0]
	verbose := getVerboseFlag(cmd)

	s, err := resolveSettings(cmd, inputRoot, &validateFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	prof, err := resolveProfile(s, logger)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOSFileSystem()
	files, summary, err := scanner.NewScanner(fsys, logger).Scan(inputRoot, s.ScanOptions())
	if err != nil {
		return err
	}
	findings := validator.New(fsys, logger).Validate(summary.Root, files, summary, prof)

	out := cmd.OutOrStdout()
	if validateFlags.json {
		if err := writeJSON(out, findings); err != nil {
			return err
		}
	} else {
		printFindings(out, findings)
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d file(s) checked against %s: %s\n", len(files), prof.Name, findingCounts(findings))
	}

	if assetpack.HasErrors(findings) {
		return fmt.Errorf("%d error(s) in %s: %w",
			assetpack.CountByLevel(findings)[assetpack.LevelError], summary.Root, assetpack.ErrValidationFailed)
	}
	return nil
}
