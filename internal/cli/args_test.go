package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func TestRequireInputPath(t *testing.T) {
	cmd := &cobra.Command{Use: "validate <input_path>"}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireInputPath(cmd, []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required argument: <input_path>")
		assert.Contains(t, err.Error(), "Example:")
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		assert.NoError(t, RequireInputPath(cmd, []string{"./drops/CrateA"}))
	})

	t.Run("returns usage error when too many args", func(t *testing.T) {
		err := RequireInputPath(cmd, []string{"a", "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 1 arg")
		assert.Equal(t, assetpack.ExitUsageError, assetpack.ExitCodeForError(err))
	})
}

func TestRequireProfileName(t *testing.T) {
	cmd := &cobra.Command{Use: "show <name>"}

	err := RequireProfileName(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required argument: <name>")
	assert.Contains(t, err.Error(), "assetpack profile list")

	assert.NoError(t, RequireProfileName(cmd, []string{"VFX"}))
	assert.Error(t, RequireProfileName(cmd, []string{"VFX", "Game"}))
}
