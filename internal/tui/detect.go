package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Mode selects between the bubbletea progress view and plain line output.
type Mode int

const (
	ModeNonInteractive Mode = iota
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "line"
}

// NonInteractiveEnv forces line output when it holds a true value.
const NonInteractiveEnv = "ASSETPACK_NON_INTERACTIVE"

// Detection is the chosen mode and the first condition that decided it.
type Detection struct {
	Mode   Mode
	Reason string
}

// Detect inspects the environment and the standard streams.
func Detect() Detection {
	return detect(os.Getenv, term.IsTerminal)
}

// DetectMode returns only the mode part of Detect.
func DetectMode() Mode {
	return Detect().Mode
}

// IsInteractive reports whether prompts and the progress view may be shown.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// detect applies the rules in order: explicit opt-out, CI, NO_COLOR,
// a dumb terminal, then the stdin and stdout terminal checks.
func detect(getenv func(string) string, isTerminal func(fd int) bool) Detection {
	if envEnabled(getenv(NonInteractiveEnv)) {
		return lineOutput(NonInteractiveEnv + " is set")
	}
	// CI=false is common in local shells that copy CI env files.
	if envEnabled(getenv("CI")) {
		return lineOutput("running under CI")
	}
	if getenv("NO_COLOR") != "" {
		return lineOutput("NO_COLOR is set")
	}
	if getenv("TERM") == "dumb" {
		return lineOutput("TERM=dumb cannot render the progress view")
	}
	if !isTerminal(int(os.Stdin.Fd())) {
		return lineOutput("stdin is not a terminal")
	}
	if !isTerminal(int(os.Stdout.Fd())) {
		return lineOutput("stdout is not a terminal")
	}
	return Detection{Mode: ModeInteractive, Reason: "attached to a terminal"}
}

func lineOutput(reason string) Detection {
	return Detection{Mode: ModeNonInteractive, Reason: reason}
}

// envEnabled treats any non-empty value other than a parseable false as on,
// so ASSETPACK_NON_INTERACTIVE=yes behaves like =1.
func envEnabled(v string) bool {
	if v == "" {
		return false
	}
	on, err := strconv.ParseBool(v)
	return err != nil || on
}
