package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/assetpack/internal/config"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func newPipelineCmd(f *pipelineFlagValues) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addProfileFlags(cmd, f)
	addScanFlags(cmd, f)
	addIdentityFlags(cmd, f)
	addPackFlags(cmd, f)
	return cmd
}

func TestResolveSettings_Layering(t *testing.T) {
	input := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(input, config.ConfigFileName), []byte(
		"profile: Mobile\nproject: FromFile\nasset: FromFile\nhash_algo: md5\n"), 0o644))
	t.Setenv("ASSETPACK_ASSET", "FromEnv")
	t.Setenv("ASSETPACK_OUTPUT_ROOT", "/env/out")

	var f pipelineFlagValues
	cmd := newPipelineCmd(&f)
	require.NoError(t, cmd.Flags().Set("project", "FromFlag"))
	require.NoError(t, cmd.Flags().Set("include-hidden", "true"))
	require.NoError(t, cmd.Flags().Set("no-verify", "true"))

	s, err := resolveSettings(cmd, input, &f, false)
	require.NoError(t, err)

	assert.Equal(t, "Mobile", s.Profile)
	assert.Equal(t, "FromFlag", s.Project)
	assert.Equal(t, "FromEnv", s.Asset)
	assert.Equal(t, "/env/out", s.OutputRoot)
	assert.Equal(t, "md5", s.HashAlgo)
	assert.False(t, s.IgnoreHidden)
	assert.False(t, s.VerifyHash)
	// untouched flags keep lower layers
	assert.True(t, s.Manifest)
}

func TestResolveSettings_InvalidProjectConfig(t *testing.T) {
	input := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(input, config.ConfigFileName), []byte("profile: [oops\n"), 0o644))

	var f pipelineFlagValues
	_, err := resolveSettings(newPipelineCmd(&f), input, &f, false)
	require.Error(t, err)
	assert.Equal(t, assetpack.ExitConfigError, assetpack.ExitCodeForError(err))
}

func TestResolveSettings_HashFlagValidated(t *testing.T) {
	var f pipelineFlagValues
	cmd := newPipelineCmd(&f)
	require.NoError(t, cmd.Flags().Set("hash", "SHA256"))

	_, err := resolveSettings(cmd, t.TempDir(), &f, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, assetpack.ErrUnsupportedHash)
}

func TestResolveSettings_IgnoreDirFlagReplacesDefaults(t *testing.T) {
	var f pipelineFlagValues
	cmd := newPipelineCmd(&f)
	require.NoError(t, cmd.Flags().Set("ignore-dir", "cache"))
	require.NoError(t, cmd.Flags().Set("ignore-dir", "tmp"))

	s, err := resolveSettings(cmd, t.TempDir(), &f, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"cache", "tmp"}, s.IgnoreDirs)
}

func TestRequireOutputRoot(t *testing.T) {
	s := config.Defaults()
	err := requireOutputRoot(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, assetpack.ErrInvalidConfig)

	s.OutputRoot = "/deliveries"
	assert.NoError(t, requireOutputRoot(s))
}

func TestBuildRequest(t *testing.T) {
	s := config.Defaults()
	s.OutputRoot = "/deliveries"
	s.Project, s.Asset, s.Version = "Orion", "CrateA", "v001"
	s.Report = false
	prof := assetpack.NewProfile("Game", []string{"geo"}, []string{"fbx"}, assetpack.AllRules())

	req := buildRequest(s, "/drop", prof, true)
	assert.Equal(t, "/drop", req.InputRoot)
	assert.Equal(t, "/deliveries", req.OutputRoot)
	assert.Equal(t, assetpack.Identity{Project: "Orion", Asset: "CrateA", Version: "v001"}, req.Identity)
	assert.Equal(t, "Game", req.Profile.Name)
	assert.True(t, req.Strict)
	assert.True(t, req.Manifest)
	assert.False(t, req.Report)
	assert.Equal(t, assetpack.HashSHA1, req.Pack.HashAlgo)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KiB", formatBytes(1024))
	assert.Equal(t, "1.5 MiB", formatBytes(1536*1024))
}

func TestPrintPlan(t *testing.T) {
	var out bytes.Buffer
	printPlan(&out, []assetpack.PlanItem{
		{RelPath: "tex/a_v001.png", Dst: "/d/textures/a_v001.png", Category: "textures"},
		{RelPath: "geo/a_v001.fbx", Dst: "/d/export/fbx/a_v001.fbx", Category: "export/fbx"},
	})
	assert.Equal(t,
		"textures    tex/a_v001.png -> /d/textures/a_v001.png\n"+
			"export/fbx  geo/a_v001.fbx -> /d/export/fbx/a_v001.fbx\n",
		out.String())
}

func TestFindingCounts(t *testing.T) {
	findings := []assetpack.Finding{
		assetpack.Errorf("A", "", "a"),
		assetpack.Warnf("B", "", "b"),
		assetpack.Warnf("C", "", "c"),
	}
	assert.Equal(t, "1 error(s), 2 warning(s), 0 info", findingCounts(findings))
}
