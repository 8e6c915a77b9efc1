package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig mirrors assetpack.yaml. Pointer fields distinguish
// "not set" from an explicit false so the file only overrides what it names.
type ProjectConfig struct {
	Profile        string   `yaml:"profile,omitempty"`
	ProfilesDir    string   `yaml:"profiles_dir,omitempty"`
	OutputRoot     string   `yaml:"output_root,omitempty"`
	Project        string   `yaml:"project,omitempty"`
	Asset          string   `yaml:"asset,omitempty"`
	Version        string   `yaml:"version,omitempty"`
	IgnoreDirs     []string `yaml:"ignore_dirs,omitempty"`
	IgnoreHidden   *bool    `yaml:"ignore_hidden,omitempty"`
	FollowSymlinks *bool    `yaml:"follow_symlinks,omitempty"`
	Overwrite      *bool    `yaml:"overwrite,omitempty"`
	VerifyHash     *bool    `yaml:"verify_hash,omitempty"`
	HashAlgo       string   `yaml:"hash_algo,omitempty"`
	Manifest       *bool    `yaml:"manifest,omitempty"`
	Report         *bool    `yaml:"report,omitempty"`
}

const ConfigFileName = "assetpack.yaml"

// EnvPrefix namespaces environment overrides, e.g. ASSETPACK_HASH_ALGO.
const EnvPrefix = "ASSETPACK"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

// Save writes cfg as assetpack.yaml under dir.
func Save(dir string, cfg *ProjectConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", ConfigFileName, err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Settings is the effective configuration after defaults, file and environment are layered.
type Settings struct {
	Profile        string   `mapstructure:"profile"`
	ProfilesDir    string   `mapstructure:"profiles_dir"`
	OutputRoot     string   `mapstructure:"output_root"`
	Project        string   `mapstructure:"project"`
	Asset          string   `mapstructure:"asset"`
	Version        string   `mapstructure:"version"`
	IgnoreDirs     []string `mapstructure:"ignore_dirs"`
	IgnoreHidden   bool     `mapstructure:"ignore_hidden"`
	FollowSymlinks bool     `mapstructure:"follow_symlinks"`
	Overwrite      bool     `mapstructure:"overwrite"`
	VerifyHash     bool     `mapstructure:"verify_hash"`
	HashAlgo       string   `mapstructure:"hash_algo"`
	Manifest       bool     `mapstructure:"manifest"`
	Report         bool     `mapstructure:"report"`
}

// Identity returns the delivery identity named by the settings.
func (s Settings) Identity() assetpack.Identity {
	return assetpack.Identity{Project: s.Project, Asset: s.Asset, Version: s.Version}
}

// ScanOptions converts the traversal settings.
func (s Settings) ScanOptions() assetpack.ScanOptions {
	return assetpack.ScanOptions{
		IgnoredDirs:      append([]string(nil), s.IgnoreDirs...),
		IgnoreHidden:     s.IgnoreHidden,
		FollowSymlinks:   s.FollowSymlinks,
		RootIgnoredFiles: []string{ConfigFileName},
	}
}

// PackOptions converts the copy settings. Callbacks are left for the caller.
func (s Settings) PackOptions() assetpack.PackOptions {
	return assetpack.PackOptions{
		Overwrite:  s.Overwrite,
		VerifyHash: s.VerifyHash,
		HashAlgo:   assetpack.HashAlgorithm(s.HashAlgo),
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Profile) == "" {
		return fmt.Errorf("profile must not be empty: %w", assetpack.ErrInvalidConfig)
	}
	if _, err := assetpack.ParseHashAlgorithm(s.HashAlgo); err != nil {
		return err
	}
	return nil
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Profile:      assetpack.DefaultProfileName,
		IgnoreDirs:   append([]string(nil), assetpack.DefaultIgnoredDirs...),
		IgnoreHidden: true,
		VerifyHash:   true,
		HashAlgo:     string(assetpack.DefaultHashAlgorithm),
		Manifest:     true,
		Report:       true,
	}
}

// Resolve layers built-in defaults, the optional project file and
// ASSETPACK_* environment variables, in increasing priority.
// CLI flags are applied on top by the caller.
func Resolve(file *ProjectConfig) (Settings, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("profile", d.Profile)
	v.SetDefault("profiles_dir", d.ProfilesDir)
	v.SetDefault("output_root", d.OutputRoot)
	v.SetDefault("project", "")
	v.SetDefault("asset", "")
	v.SetDefault("version", "")
	v.SetDefault("ignore_dirs", d.IgnoreDirs)
	v.SetDefault("ignore_hidden", d.IgnoreHidden)
	v.SetDefault("follow_symlinks", d.FollowSymlinks)
	v.SetDefault("overwrite", d.Overwrite)
	v.SetDefault("verify_hash", d.VerifyHash)
	v.SetDefault("hash_algo", d.HashAlgo)
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("report", d.Report)

	if file != nil {
		if err := v.MergeConfigMap(file.values()); err != nil {
			return Settings{}, fmt.Errorf("merge %s: %w", ConfigFileName, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", assetpack.ErrInvalidConfig, err)
	}
	s.IgnoreDirs = splitList(s.IgnoreDirs)
	s.HashAlgo = strings.ToLower(strings.TrimSpace(s.HashAlgo))

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// values returns only the keys the file sets.
func (c *ProjectConfig) values() map[string]interface{} {
	m := make(map[string]interface{})
	setString := func(key, val string) {
		if val != "" {
			m[key] = val
		}
	}
	setBool := func(key string, val *bool) {
		if val != nil {
			m[key] = *val
		}
	}

	setString("profile", c.Profile)
	setString("profiles_dir", c.ProfilesDir)
	setString("output_root", c.OutputRoot)
	setString("project", c.Project)
	setString("asset", c.Asset)
	setString("version", c.Version)
	setString("hash_algo", c.HashAlgo)
	if c.IgnoreDirs != nil {
		m["ignore_dirs"] = c.IgnoreDirs
	}
	setBool("ignore_hidden", c.IgnoreHidden)
	setBool("follow_symlinks", c.FollowSymlinks)
	setBool("overwrite", c.Overwrite)
	setBool("verify_hash", c.VerifyHash)
	setBool("manifest", c.Manifest)
	setBool("report", c.Report)
	return m
}

// splitList flattens comma-separated entries, which is how lists arrive from the environment.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
