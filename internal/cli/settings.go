package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/assetpack/internal/config"
	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/files/scanner"
	"github.com/vvka-141/assetpack/internal/logging"
	"github.com/vvka-141/assetpack/internal/pack"
	"github.com/vvka-141/assetpack/internal/planner"
	"github.com/vvka-141/assetpack/internal/profile"
	"github.com/vvka-141/assetpack/internal/services"
	"github.com/vvka-141/assetpack/internal/validator"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// pipelineFlagValues holds the flags shared by scan, validate, plan and pack.
// Each command registers only the groups it needs.
type pipelineFlagValues struct {
	profile     string
	profilesDir string

	ignoreDirs     []string
	includeHidden  bool
	followSymlinks bool

	outputRoot      string
	project         string
	asset           string
	deliveryVersion string

	overwrite  bool
	force      bool
	noVerify   bool
	hashAlgo   string
	strict     bool
	noManifest bool
	noReport   bool

	json bool
}

func addProfileFlags(cmd *cobra.Command, f *pipelineFlagValues) {
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "",
		"Delivery profile to validate against (default: VFX, or $ASSETPACK_PROFILE)")
	cmd.Flags().StringVar(&f.profilesDir, "profiles-dir", "",
		"Storage root holding profiles/<name>.json (default: user config dir)")
	_ = cmd.RegisterFlagCompletionFunc("profile", completeProfileFlag)
}

func addScanFlags(cmd *cobra.Command, f *pipelineFlagValues) {
	cmd.Flags().StringSliceVar(&f.ignoreDirs, "ignore-dir", nil,
		"Directory names to skip (can be specified multiple times)\n"+
			"Replaces the defaults: "+strings.Join(assetpack.DefaultIgnoredDirs, ", "))
	cmd.Flags().BoolVar(&f.includeHidden, "include-hidden", false,
		"Include files and folders whose name starts with '.'")
	cmd.Flags().BoolVar(&f.followSymlinks, "follow-symlinks", false,
		"Descend into symbolic links to directories")
}

func addIdentityFlags(cmd *cobra.Command, f *pipelineFlagValues) {
	cmd.Flags().StringVarP(&f.outputRoot, "output", "o", "",
		"Output root the delivery tree is created under (or $ASSETPACK_OUTPUT_ROOT)")
	cmd.Flags().StringVar(&f.project, "project", "", "Project name")
	cmd.Flags().StringVar(&f.asset, "asset", "", "Asset name")
	cmd.Flags().StringVar(&f.deliveryVersion, "version", "", "Delivery version, e.g. v001")
	_ = cmd.MarkFlagDirname("output")
}

func addPackFlags(cmd *cobra.Command, f *pipelineFlagValues) {
	cmd.Flags().BoolVar(&f.overwrite, "overwrite", false,
		"Replace files that already exist in the delivery tree\n"+
			"Requires interactive confirmation when the version folder has content, unless --force is used")
	cmd.Flags().BoolVar(&f.force, "force", false,
		"Skip the interactive confirmation (a short countdown is shown instead)\n"+
			"Use with --overwrite for CI/CD pipelines")
	cmd.Flags().BoolVar(&f.noVerify, "no-verify", false, "Skip checksum verification of copied files")
	cmd.Flags().StringVar(&f.hashAlgo, "hash", "", "Checksum algorithm: sha1|md5 (default sha1)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Refuse to pack when validation reports errors")
	cmd.Flags().BoolVar(&f.noManifest, "no-manifest", false, "Do not write docs/manifest.json")
	cmd.Flags().BoolVar(&f.noReport, "no-report", false, "Do not write docs/report.html")
	_ = cmd.RegisterFlagCompletionFunc("hash", completeHashAlgorithms)
}

// apply layers explicitly set flags over the resolved settings.
func (f *pipelineFlagValues) apply(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("profile") {
		s.Profile = f.profile
	}
	if flags.Changed("profiles-dir") {
		s.ProfilesDir = f.profilesDir
	}
	if flags.Changed("ignore-dir") {
		s.IgnoreDirs = append([]string(nil), f.ignoreDirs...)
	}
	if flags.Changed("include-hidden") {
		s.IgnoreHidden = !f.includeHidden
	}
	if flags.Changed("follow-symlinks") {
		s.FollowSymlinks = f.followSymlinks
	}
	if flags.Changed("output") {
		s.OutputRoot = f.outputRoot
	}
	if flags.Changed("project") {
		s.Project = f.project
	}
	if flags.Changed("asset") {
		s.Asset = f.asset
	}
	if flags.Changed("version") {
		s.Version = f.deliveryVersion
	}
	if flags.Changed("overwrite") {
		s.Overwrite = f.overwrite
	}
	if flags.Changed("no-verify") {
		s.VerifyHash = !f.noVerify
	}
	if flags.Changed("hash") {
		s.HashAlgo = strings.ToLower(strings.TrimSpace(f.hashAlgo))
	}
	if flags.Changed("no-manifest") {
		s.Manifest = !f.noManifest
	}
	if flags.Changed("no-report") {
		s.Report = !f.noReport
	}
}

// resolveSettings builds the effective settings for a command on inputRoot.
// A nil f skips flag overrides.
// Priority (highest to lowest): flags > ASSETPACK_* environment (.env included) > assetpack.yaml > defaults
func resolveSettings(cmd *cobra.Command, inputRoot string, f *pipelineFlagValues, verbose bool) (config.Settings, error) {
	_ = godotenv.Load()

	var projectCfg *config.ProjectConfig
	if filesystem.IsDir(filesystem.NewOSFileSystem(), inputRoot) {
		cfg, err := config.Load(inputRoot)
		switch {
		case err == nil:
			projectCfg = cfg
			if verbose {
				fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %s\n", filepath.Join(inputRoot, config.ConfigFileName))
			}
		case errors.Is(err, config.ErrConfigNotFound):
		default:
			return config.Settings{}, fmt.Errorf("%w: %v", assetpack.ErrInvalidConfig, err)
		}
	}

	s, err := config.Resolve(projectCfg)
	if err != nil {
		return config.Settings{}, err
	}
	if f != nil {
		f.apply(cmd, &s)
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Settings resolved:\n")
		fmt.Fprintf(os.Stderr, "  Profile: %s\n", s.Profile)
		fmt.Fprintf(os.Stderr, "  Output Root: %s\n", s.OutputRoot)
		fmt.Fprintf(os.Stderr, "  Identity: %s / %s / %s\n", s.Project, s.Asset, s.Version)
		fmt.Fprintf(os.Stderr, "  Ignored Dirs: %s\n", strings.Join(s.IgnoreDirs, ", "))
		fmt.Fprintf(os.Stderr, "  Hash: %s (verify=%t)\n", s.HashAlgo, s.VerifyHash)
	}
	return s, nil
}

// requireOutputRoot fails with a configuration error when no output root is configured.
func requireOutputRoot(s config.Settings) error {
	if strings.TrimSpace(s.OutputRoot) == "" {
		return fmt.Errorf("output root is required\n\nSet it with --output, output_root in %s, or $%s_OUTPUT_ROOT: %w",
			config.ConfigFileName, config.EnvPrefix, assetpack.ErrInvalidConfig)
	}
	return nil
}

// defaultStorageRoot returns <user config dir>/assetpack.
func defaultStorageRoot() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w\n\nTip: pass --profiles-dir explicitly", err)
	}
	return filepath.Join(dir, assetpack.ToolName), nil
}

// openProfileStore opens the profile store under storageRoot, or the default location when empty.
func openProfileStore(storageRoot string, logger assetpack.Logger) (*profile.Store, error) {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	if storageRoot == "" {
		root, err := defaultStorageRoot()
		if err != nil {
			return nil, err
		}
		storageRoot = root
	}
	return profile.NewStore(filesystem.NewOSFileSystem(), storageRoot, logger), nil
}

// resolveProfile loads the configured profile, falling back to the built-in of the same name.
func resolveProfile(s config.Settings, logger assetpack.Logger) (assetpack.Profile, error) {
	store, err := openProfileStore(s.ProfilesDir, logger)
	if err != nil {
		return assetpack.Profile{}, err
	}
	return store.Resolve(s.Profile)
}

// newDeliveryService wires the pipeline on the OS filesystem.
func newDeliveryService(approver assetpack.Approver, logger assetpack.Logger) *services.DeliveryService {
	fsys := filesystem.NewOSFileSystem()
	return services.NewDeliveryService(
		fsys,
		scanner.NewScanner(fsys, logger),
		validator.New(fsys, logger),
		planner.New(logger),
		pack.NewExecutor(fsys, logger),
		approver,
		logger,
	)
}

// buildRequest converts resolved settings into a delivery request.
func buildRequest(s config.Settings, inputRoot string, prof assetpack.Profile, strict bool) services.Request {
	return services.Request{
		InputRoot:   inputRoot,
		OutputRoot:  s.OutputRoot,
		Identity:    s.Identity(),
		Profile:     prof,
		Scan:        s.ScanOptions(),
		Pack:        s.PackOptions(),
		Strict:      strict,
		Manifest:    s.Manifest,
		Report:      s.Report,
		ToolVersion: version,
	}
}
