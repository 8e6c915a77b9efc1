package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option is one entry of a Picker.
type Option struct {
	Label       string
	Description string
	Value       string
}

type pickerKeys struct {
	up     key.Binding
	down   key.Binding
	choose key.Binding
	quit   key.Binding
}

var defaultPickerKeys = pickerKeys{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	choose: key.NewBinding(key.WithKeys("enter")),
	quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// Picker chooses one option from a list with the arrow keys.
type Picker struct {
	title    string
	options  []Option
	cursor   int
	chosen   int
	quit     bool
	showHelp bool
}

// NewPicker creates a picker with the cursor on the first option.
func NewPicker(title string, options []Option) Picker {
	return Picker{title: title, options: options, chosen: -1, showHelp: true}
}

// At moves the cursor to idx, clamped to the option range.
func (p Picker) At(idx int) Picker {
	p.cursor = max(0, min(idx, len(p.options)-1))
	return p
}

// Quiet hides the key help line so a parent view can render its own.
func (p Picker) Quiet() Picker {
	p.showHelp = false
	return p
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch {
	case key.Matches(km, defaultPickerKeys.up):
		p.cursor = max(0, p.cursor-1)
	case key.Matches(km, defaultPickerKeys.down):
		p.cursor = min(len(p.options)-1, p.cursor+1)
	case key.Matches(km, defaultPickerKeys.choose):
		p.chosen = p.cursor
		return p, tea.Quit
	case key.Matches(km, defaultPickerKeys.quit):
		p.quit = true
		return p, tea.Quit
	}
	return p, nil
}

var (
	pickerTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	pickerOn    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	pickerOff   = lipgloss.NewStyle().Foreground(colorMuted)
	pickerDesc  = lipgloss.NewStyle().Foreground(colorFaint).MarginLeft(4)
	pickerHelp  = lipgloss.NewStyle().Foreground(colorFaint).MarginTop(1)
)

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(pickerTitle.Render(p.title))
	b.WriteString("\n\n")

	for i, opt := range p.options {
		if i == p.cursor {
			b.WriteString(pickerOn.Render("● " + opt.Label))
		} else {
			b.WriteString("  " + pickerOff.Render("○ "+opt.Label))
		}
		b.WriteString("\n")
		if opt.Description != "" {
			b.WriteString(pickerDesc.Render(opt.Description))
			b.WriteString("\n")
		}
	}

	if p.showHelp {
		b.WriteString(pickerHelp.Render("\n↑/↓ navigate • enter select • q quit"))
	}
	return b.String()
}

// Cursor returns the highlighted index.
func (p Picker) Cursor() int { return p.cursor }

// Chosen returns the index picked with enter, or -1.
func (p Picker) Chosen() int { return p.chosen }

// Done reports whether an option was picked.
func (p Picker) Done() bool { return p.chosen >= 0 }

// Quit reports whether the picker was dismissed without a choice.
func (p Picker) Quit() bool { return p.quit }

// Value returns the value of the picked option, or "".
func (p Picker) Value() string {
	if p.chosen < 0 || p.chosen >= len(p.options) {
		return ""
	}
	return p.options[p.chosen].Value
}
