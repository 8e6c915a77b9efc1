package wizards

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type wizardStyles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Label       lipgloss.Style
	FocusedBox  lipgloss.Style
}

type wizardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Tab    key.Binding
}

func defaultWizardStyles() wizardStyles {
	return wizardStyles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginBottom(1),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FocusedBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1),
	}
}

// Quit is ctrl+c only; "q" is a valid character in text fields.
func defaultWizardKeys() wizardKeys {
	return wizardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Back:   key.NewBinding(key.WithKeys("esc")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
		Tab:    key.NewBinding(key.WithKeys("tab")),
	}
}

// choiceLine renders one radio/checkbox row with an optional description.
func (s wizardStyles) choiceLine(selected bool, symbol, label, desc string) string {
	cursor := "  "
	style := s.Unselected
	if selected {
		cursor = ""
		style = s.Selected
	}
	line := cursor + style.Render(symbol+" "+label) + "\n"
	if desc != "" {
		line += s.Description.Render(desc) + "\n"
	}
	return line
}
