package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

var gameDrop = map[string]string{
	"geo/CrateA_v001.fbx":         "fbx",
	"tex/CrateA_v001_diffuse.png": "png",
	"export/CrateA_v001.usd":      "usd",
	"source/CrateA_v001.zip":      "zip",
}

func writeDrop(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// resetFlags restores every flag of cmd to its default and clears Changed,
// since commands and their flag values are package globals.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	})
}

// prepareCmd resets cmd, applies flags and captures output.
// Interactive front-ends are disabled and profiles live in a temporary folder.
func prepareCmd(t *testing.T, cmd *cobra.Command, flags map[string]string) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("ASSETPACK_NON_INTERACTIVE", "1")
	t.Setenv("ASSETPACK_PROFILES_DIR", t.TempDir())

	resetFlags(t, cmd)
	for name, value := range flags {
		require.NoError(t, cmd.Flags().Set(name, value), name)
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})
	return &stdout, &stderr
}
