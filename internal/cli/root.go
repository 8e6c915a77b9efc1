package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

const asciiLogo = `                       _                    _
  __ _ ___ ___  ___| |_ _ __   __ _  ___| | __
 / _` + "`" + ` / __/ __|/ _ \ __| '_ \ / _` + "`" + ` |/ __| |/ /
| (_| \__ \__ \  __/ |_| |_) | (_| | (__|   <
 \__,_|___/___/\___|\__| .__/ \__,_|\___|_|\_\
                       |_|`

var rootCmd = &cobra.Command{
	Use:   "assetpack",
	Short: "Validate and package 3D asset deliveries",
	Long: asciiLogo + `

assetpack scans an artist's drop folder, checks it against a delivery
profile, and copies every file into a normalized, versioned delivery tree:

  <output_root>/<Project>/<Asset>/<Version>/<category>/<file>

Each pack run can verify copies with checksums and writes a JSON manifest
and an HTML report into the version folder's docs/.

Configuration is layered: built-in defaults, assetpack.yaml in the input
folder, ASSETPACK_* environment variables (a .env file is honoured), then flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Input folder missing or unreadable
  21 - Profile missing or corrupt
  22 - Validation reported errors
  23 - Plan blocked (identity or destination collisions)
  24 - User denied overwrite approval
  25 - Pack finished with failures or was cancelled`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for assetpack")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag reads --verbose from the command or the root's persistent
// flags. Lookup goes through cmd.Flag so handlers invoked outside Execute,
// before cobra merges inherited flags, still see it.
func getVerboseFlag(cmd *cobra.Command) bool {
	flag := cmd.Flag("verbose")
	if flag == nil {
		fmt.Fprintln(os.Stderr, "Warning: verbose flag is not registered")
		return false
	}
	verbose, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid verbose flag value %q\n", flag.Value.String())
		return false
	}
	return verbose
}
