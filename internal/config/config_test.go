package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `profile: Game
profiles_dir: /srv/assetpack
output_root: /deliveries
project: Orion
asset: CrateA
version: v003
ignore_dirs: [".git", "tmp"]
ignore_hidden: false
follow_symlinks: true
overwrite: true
verify_hash: false
hash_algo: md5
manifest: false
report: true
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Game", cfg.Profile)
	assert.Equal(t, "/srv/assetpack", cfg.ProfilesDir)
	assert.Equal(t, "/deliveries", cfg.OutputRoot)
	assert.Equal(t, "Orion", cfg.Project)
	assert.Equal(t, "CrateA", cfg.Asset)
	assert.Equal(t, "v003", cfg.Version)
	assert.Equal(t, []string{".git", "tmp"}, cfg.IgnoreDirs)
	require.NotNil(t, cfg.IgnoreHidden)
	assert.False(t, *cfg.IgnoreHidden)
	require.NotNil(t, cfg.FollowSymlinks)
	assert.True(t, *cfg.FollowSymlinks)
	require.NotNil(t, cfg.VerifyHash)
	assert.False(t, *cfg.VerifyHash)
	assert.Equal(t, "md5", cfg.HashAlgo)
	require.NotNil(t, cfg.Report)
	assert.True(t, *cfg.Report)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "project: Orion\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Orion", cfg.Project)
	assert.Empty(t, cfg.Profile)
	assert.Nil(t, cfg.Overwrite)
	assert.Nil(t, cfg.IgnoreDirs)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "project: [unclosed\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()
	overwrite := true
	path, err := Save(dir, &ProjectConfig{Project: "Orion", Version: "v010", Overwrite: &overwrite})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), path)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Orion", cfg.Project)
	assert.Equal(t, "v010", cfg.Version)
	require.NotNil(t, cfg.Overwrite)
	assert.True(t, *cfg.Overwrite)
	assert.Nil(t, cfg.Manifest)
}

func TestResolve_Defaults(t *testing.T) {
	s, err := Resolve(nil)
	require.NoError(t, err)

	assert.Equal(t, Defaults(), s)
	assert.Equal(t, "VFX", s.Profile)
	assert.Equal(t, "sha1", s.HashAlgo)
	assert.True(t, s.IgnoreHidden)
	assert.True(t, s.VerifyHash)
	assert.False(t, s.Overwrite)
	assert.Equal(t, assetpack.DefaultIgnoredDirs, s.IgnoreDirs)
}

func TestResolve_FileOverridesDefaults(t *testing.T) {
	off := false
	s, err := Resolve(&ProjectConfig{
		Profile:      "Mobile",
		Project:      "Orion",
		IgnoreHidden: &off,
		VerifyHash:   &off,
		IgnoreDirs:   []string{"cache"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Mobile", s.Profile)
	assert.Equal(t, "Orion", s.Project)
	assert.False(t, s.IgnoreHidden)
	assert.False(t, s.VerifyHash)
	assert.Equal(t, []string{"cache"}, s.IgnoreDirs)
	// untouched keys keep their defaults
	assert.True(t, s.Manifest)
	assert.Equal(t, "sha1", s.HashAlgo)
}

func TestResolve_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("ASSETPACK_PROJECT", "FromEnv")
	t.Setenv("ASSETPACK_HASH_ALGO", "MD5")
	t.Setenv("ASSETPACK_OVERWRITE", "true")
	t.Setenv("ASSETPACK_IGNORE_DIRS", "build,dist")

	s, err := Resolve(&ProjectConfig{Project: "FromFile", HashAlgo: "sha1"})
	require.NoError(t, err)

	assert.Equal(t, "FromEnv", s.Project)
	assert.Equal(t, "md5", s.HashAlgo)
	assert.True(t, s.Overwrite)
	assert.Equal(t, []string{"build", "dist"}, s.IgnoreDirs)
}

func TestResolve_UnsupportedHash(t *testing.T) {
	_, err := Resolve(&ProjectConfig{HashAlgo: "sha256"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, assetpack.ErrUnsupportedHash))
}

func TestSettings_Conversions(t *testing.T) {
	s := Defaults()
	s.Project, s.Asset, s.Version = "Orion", "CrateA", "v001"
	s.Overwrite = true
	s.FollowSymlinks = true

	assert.Equal(t, assetpack.Identity{Project: "Orion", Asset: "CrateA", Version: "v001"}, s.Identity())

	scan := s.ScanOptions()
	assert.True(t, scan.IgnoreHidden)
	assert.True(t, scan.FollowSymlinks)
	assert.Equal(t, assetpack.DefaultIgnoredDirs, scan.IgnoredDirs)
	assert.Equal(t, []string{ConfigFileName}, scan.RootIgnoredFiles)

	pack := s.PackOptions()
	assert.True(t, pack.Overwrite)
	assert.True(t, pack.VerifyHash)
	assert.Equal(t, assetpack.HashSHA1, pack.HashAlgo)
	assert.Nil(t, pack.OnProgress)
}
