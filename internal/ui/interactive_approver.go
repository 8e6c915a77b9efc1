package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type the delivery version
// before files in an existing delivery folder are overwritten.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover bound to stdin and stderr.
func NewInteractiveApprover(verbose bool) assetpack.Approver {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  os.Stderr,
	}
}

// RequestApproval prompts the user to type confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target, confirm string) (bool, error) {
	fmt.Fprintf(a.output, "\n⚠️  WARNING: The delivery folder '%s' already has content\n", target)
	fmt.Fprintln(a.output, "Existing files with the same name will be replaced!")
	fmt.Fprintf(a.output, "\nTo confirm, type the version '%s' and press Enter: ", confirm)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && !(err == io.EOF && input != "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input != "" && input == confirm {
			fmt.Fprintln(a.output, "✓ Confirmed. Proceeding with overwrite...")
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Input '%s' does not match version '%s'. Operation cancelled.\n", input, confirm)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ assetpack.Approver = (*InteractiveApprover)(nil)
