package components

import "github.com/charmbracelet/lipgloss"

// Shared palette, ANSI 256 codes.
var (
	colorAccent = lipgloss.Color("39")
	colorText   = lipgloss.Color("252")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
	colorOK     = lipgloss.Color("34")
	colorError  = lipgloss.Color("196")
)
