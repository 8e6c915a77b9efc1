package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/vvka-141/assetpack/internal/cli"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// crashEnv makes the binary panic on start so the crash exit path can be tested.
const crashEnv = "ASSETPACK_TEST_PANIC"

func main() {
	os.Exit(run(os.Stderr, cli.Execute))
}

// run executes the CLI and turns its outcome, including a panic, into an exit code.
func run(stderr io.Writer, execute func() error) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "assetpack crashed: %v\n", r)
			fmt.Fprintln(stderr, "A delivery being packed may be incomplete; re-run pack with --overwrite once fixed.")
			fmt.Fprintf(stderr, "\n%s\n", debug.Stack())
			code = assetpack.ExitPanic
		}
	}()

	if os.Getenv(crashEnv) == "1" {
		panic("crash requested by " + crashEnv)
	}
	return assetpack.ExitCodeForError(execute())
}
