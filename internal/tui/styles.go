package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

var (
	colorAccent  = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("240")
	colorInfo    = lipgloss.Color("245")
	colorWarning = lipgloss.Color("214")
	colorError   = lipgloss.Color("196")
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	HelpStyle    = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
	CounterStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
)

// Finding level markers.
const (
	SymbolError   = "✗"
	SymbolWarning = "!"
	SymbolInfo    = "•"
)

// LevelStyle returns the style used to render a finding of the given level.
func LevelStyle(level assetpack.Level) lipgloss.Style {
	switch level {
	case assetpack.LevelError:
		return errorStyle
	case assetpack.LevelWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

// LevelSymbol returns the marker for a finding level.
func LevelSymbol(level assetpack.Level) string {
	switch level {
	case assetpack.LevelError:
		return SymbolError
	case assetpack.LevelWarning:
		return SymbolWarning
	default:
		return SymbolInfo
	}
}

// RenderFinding formats one finding as a styled status line.
func RenderFinding(f assetpack.Finding) string {
	return LevelStyle(f.Level).Render(LevelSymbol(f.Level) + " " + f.String())
}
