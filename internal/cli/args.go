package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireInputPath validates that exactly one input_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireInputPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <input_path>

Usage: %s

Example:
  %s ./drops/CrateA`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireProfileName validates that exactly one profile name argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireProfileName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <name>

Usage: %s

Example:
  %s VFX

Use 'assetpack profile list' to see available profiles.`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
