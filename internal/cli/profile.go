package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetpack/internal/logging"
	"github.com/vvka-141/assetpack/internal/profile"
	"github.com/vvka-141/assetpack/internal/tui"
	"github.com/vvka-141/assetpack/internal/tui/wizards"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage delivery profiles",
	Long: `List, inspect and edit delivery profiles.

A profile names the top-level folders a drop must contain, the file
extensions it may contain, and which validation rules apply. Game, VFX and
Mobile are built in; custom profiles are stored as JSON under
<profiles-dir>/profiles/.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and stored profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Print a profile as JSON",
	Args:              RequireProfileName,
	ValidArgsFunction: completeProfileNames,
	RunE:              runProfileShow,
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in profiles to the profiles folder",
	Long: `Init writes every built-in profile that is not stored yet, so it can be
edited by hand. Existing files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runProfileInit,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a profile derived from a base profile",
	Long: `Save derives a new profile from a base profile and stores it under <name>.
Values not given on the command line are taken from the base.

Examples:
  assetpack profile save Studio --base VFX --folders geo,tex,export
  assetpack profile save Lite --base Mobile --extensions fbx,png,json --version-token=false`,
	Args:              RequireProfileName,
	ValidArgsFunction: completeProfileNames,
	RunE:              runProfileSave,
}

var profileEditCmd = &cobra.Command{
	Use:               "edit [base]",
	Short:             "Edit a profile interactively and save the result",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeProfileNames,
	RunE:              runProfileEdit,
}

type profileFlagValues struct {
	profilesDir     string
	base            string
	folders         string
	extensions      string
	requireFolders  bool
	noSpaces        bool
	versionToken    bool
	checkExtensions bool
}

var profileFlags profileFlagValues

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd, profileShowCmd, profileInitCmd, profileSaveCmd, profileEditCmd)

	profileCmd.PersistentFlags().StringVar(&profileFlags.profilesDir, "profiles-dir", "",
		"Storage root holding profiles/<name>.json (default: user config dir, or $ASSETPACK_PROFILES_DIR)")

	profileSaveCmd.Flags().StringVar(&profileFlags.base, "base", assetpack.DefaultProfileName, "Profile to start from")
	profileSaveCmd.Flags().StringVar(&profileFlags.folders, "folders", "", "Required top-level folders, comma separated")
	profileSaveCmd.Flags().StringVar(&profileFlags.extensions, "extensions", "", "Allowed extensions, comma separated")
	profileSaveCmd.Flags().BoolVar(&profileFlags.requireFolders, "require-folders", true, "Report missing required folders as errors")
	profileSaveCmd.Flags().BoolVar(&profileFlags.noSpaces, "no-spaces", true, "Forbid spaces in folder and file names")
	profileSaveCmd.Flags().BoolVar(&profileFlags.versionToken, "version-token", true, "Warn when file names lack a version token")
	profileSaveCmd.Flags().BoolVar(&profileFlags.checkExtensions, "check-extensions", true, "Warn on extensions outside the allow-list")
	_ = profileSaveCmd.RegisterFlagCompletionFunc("base", completeProfileFlag)
}

func profileStore(cmd *cobra.Command) (*profile.Store, error) {
	return storeFor(cmd, profileFlags.profilesDir)
}

// storeFor opens the profile store at storageRoot, or at the configured
// profiles_dir (environment included) when storageRoot is empty.
func storeFor(cmd *cobra.Command, storageRoot string) (*profile.Store, error) {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	if storageRoot == "" {
		s, err := resolveSettings(cmd, "", nil, false)
		if err != nil {
			return nil, err
		}
		storageRoot = s.ProfilesDir
	}
	return openProfileStore(storageRoot, logger)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	store, err := profileStore(cmd)
	if err != nil {
		return err
	}
	stored, err := store.List()
	if err != nil {
		return err
	}

	storedSet := make(map[string]struct{}, len(stored))
	for _, n := range stored {
		storedSet[strings.ToLower(n)] = struct{}{}
	}

	out := cmd.OutOrStdout()
	for _, name := range mergeNames(profile.BuiltinNames(), stored) {
		var tags []string
		if profile.IsBuiltin(name) {
			tags = append(tags, "built-in")
		}
		if _, ok := storedSet[strings.ToLower(name)]; ok {
			tags = append(tags, "stored")
		}
		fmt.Fprintf(out, "%-16s %s\n", name, strings.Join(tags, ", "))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "\nProfiles folder: %s\n", store.Dir())
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	store, err := profileStore(cmd)
	if err != nil {
		return err
	}
	p, err := store.Resolve(args[0])
	if err != nil {
		return err
	}
	data, err := profile.Encode(p)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runProfileInit(cmd *cobra.Command, args []string) error {
	store, err := profileStore(cmd)
	if err != nil {
		return err
	}
	if err := store.EnsurePersisted(); err != nil {
		return fmt.Errorf("failed to write built-in profiles: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, name := range profile.BuiltinNames() {
		fmt.Fprintln(out, store.Path(name))
	}
	return nil
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	store, err := profileStore(cmd)
	if err != nil {
		return err
	}
	base, err := store.Resolve(profileFlags.base)
	if err != nil {
		return err
	}

	p := profile.Customize(base, saveEdits(cmd, args[0], base.Rules))
	path, err := store.Save(p)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Saved profile '%s' (based on %s)\n", p.Name, base.Name)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// saveEdits collects the edits given on the command line; unset flags keep the base value.
func saveEdits(cmd *cobra.Command, name string, rules assetpack.Rules) profile.Edits {
	flags := cmd.Flags()
	edits := profile.Edits{Name: name}
	if flags.Changed("folders") {
		edits.RequiredFolders = profile.ParseList(profileFlags.folders)
	}
	if flags.Changed("extensions") {
		edits.Extensions = profile.ParseList(profileFlags.extensions)
	}

	if flags.Changed("require-folders") {
		rules.ErrorMissingRequiredFolders = profileFlags.requireFolders
	}
	if flags.Changed("no-spaces") {
		rules.EnforceNoSpaces = profileFlags.noSpaces
	}
	if flags.Changed("version-token") {
		rules.WarnMissingVersionToken = profileFlags.versionToken
	}
	if flags.Changed("check-extensions") {
		rules.WarnUnsupportedExtensions = profileFlags.checkExtensions
	}
	edits.Rules = &rules
	return edits
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	if !tui.IsInteractive() {
		return fmt.Errorf("profile edit requires an interactive terminal\n\nUse 'assetpack profile save <name> --base <profile> ...' in scripts")
	}

	store, err := profileStore(cmd)
	if err != nil {
		return err
	}
	bases, err := editBases(store)
	if err != nil {
		return err
	}

	initial := assetpack.DefaultProfileName
	if len(args) > 0 {
		initial = args[0]
	}
	result, err := wizards.RunProfileWizard(bases, initial)
	if err != nil {
		return fmt.Errorf("profile editor failed: %w", err)
	}
	if result.Cancelled {
		fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
		return nil
	}

	path, err := store.Save(result.Profile)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Saved profile '%s' (based on %s)\n", result.Profile.Name, result.Base)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// editBases returns the built-ins followed by stored profiles, stored versions winning.
func editBases(store *profile.Store) ([]assetpack.Profile, error) {
	stored, err := store.List()
	if err != nil {
		return nil, err
	}

	var bases []assetpack.Profile
	for _, name := range mergeNames(profile.BuiltinNames(), stored) {
		p, err := store.Resolve(name)
		if err != nil {
			return nil, err
		}
		bases = append(bases, p)
	}
	return bases, nil
}
