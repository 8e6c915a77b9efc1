package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/logging"
	"github.com/vvka-141/assetpack/internal/scaffold"
	"github.com/vvka-141/assetpack/internal/tui"
	"github.com/vvka-141/assetpack/internal/tui/wizards"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

var initCmd = &cobra.Command{
	Use:   "init [target_path]",
	Short: "Create an empty drop folder for a profile",
	Long: `Initialize a drop folder with the top-level folders a profile requires.

With --demo (the default) a few sample files named after the asset are
added, so validate, plan and pack can be tried right away:
  geo/<Asset>_v001.fbx
  tex/<Asset>_v001_diffuse.png
  export/<Asset>_v001.abc
  source/maya/<Asset>_v001.ma
  docs/readme.md

Target directory must be empty or non-existent. Without a target path in
an interactive terminal, a wizard asks for profile, location and demo files.

Examples:
  assetpack init ./drops/CrateA                  # VFX layout with demo files
  assetpack init ./drops/CrateA --profile Game
  assetpack init ./drops/Rock --asset Rock --demo=false`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

var (
	initProfile     string
	initProfilesDir string
	initAsset       string
	initDemo        bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initProfile, "profile", "p", assetpack.DefaultProfileName, "Profile whose required folders are created")
	initCmd.Flags().StringVar(&initProfilesDir, "profiles-dir", "", "Storage root holding profiles/<name>.json (default: user config dir)")
	initCmd.Flags().StringVar(&initAsset, "asset", "", "Asset name used for demo files (default: target folder name)")
	initCmd.Flags().BoolVar(&initDemo, "demo", true, "Add sample files")
	_ = initCmd.RegisterFlagCompletionFunc("profile", completeProfileFlag)
}

func runInit(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	store, err := storeFor(cmd, initProfilesDir)
	if err != nil {
		return err
	}

	targetPath := ""
	profileName := initProfile
	withDemo := initDemo

	if len(args) > 0 {
		targetPath = args[0]
	} else {
		if !tui.IsInteractive() {
			return fmt.Errorf("target path required\n\nUsage: assetpack init <target_path> [flags]\n\nExamples:\n  assetpack init .              # Current directory\n  assetpack init ./drops/CrateA # Subdirectory")
		}
		bases, err := editBases(store)
		if err != nil {
			return err
		}
		result, err := wizards.RunInitWizard(".", bases)
		if err != nil {
			return fmt.Errorf("init wizard failed: %w", err)
		}
		if result.Cancelled {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
		targetPath, profileName, withDemo = result.TargetDir, result.Profile, result.WithDemo
	}

	prof, err := store.Resolve(profileName)
	if err != nil {
		return err
	}

	asset := initAsset
	if asset == "" {
		asset = assetNameFor(targetPath)
	}

	fsys := filesystem.NewOSFileSystem()
	if err := scaffold.NewScaffolder(fsys, logger).CreateDrop(targetPath, prof, asset, withDemo); err != nil {
		return fmt.Errorf("failed to create drop: %w", err)
	}

	tree, err := scaffold.BuildFileTree(fsys, targetPath)
	if err != nil {
		// Non-fatal - just skip tree display
		fmt.Fprintf(cmd.ErrOrStderr(), "\n✓ Drop folder created in '%s' using profile '%s'\n", targetPath, prof.Name)
		return nil
	}
	wizards.ShowInitComplete(cmd.ErrOrStderr(), targetPath, prof.Name, tree)
	return nil
}

// assetNameFor derives a demo asset name from the target folder.
func assetNameFor(targetPath string) string {
	name := filepath.Base(filepath.Clean(targetPath))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		name = filepath.Base(cwd)
	}
	return name
}
