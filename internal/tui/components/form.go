package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formState int

const (
	formEditing formState = iota
	formSubmitted
	formCancelled
)

type formKeys struct {
	next   key.Binding
	prev   key.Binding
	enter  key.Binding
	cancel key.Binding
}

type formStyles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Input   lipgloss.Style
	Focused lipgloss.Style
	Marker  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

var defaultFormKeys = formKeys{
	next:   key.NewBinding(key.WithKeys("tab", "down")),
	prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

func newFormStyles() formStyles {
	return formStyles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Label:   lipgloss.NewStyle().Foreground(colorMuted),
		Input:   lipgloss.NewStyle().Foreground(colorText),
		Focused: lipgloss.NewStyle().Foreground(colorAccent),
		Marker:  lipgloss.NewStyle().Foreground(colorError),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Help:    lipgloss.NewStyle().Foreground(colorFaint).MarginTop(1),
	}
}

// Form collects a column of fields. Enter moves to the next field and
// submits from the last one once every field validates; esc cancels.
type Form struct {
	title  string
	fields []Field
	focus  int
	state  formState
	styles formStyles
}

// NewForm creates a form over fields in display order.
func NewForm(title string, fields ...Field) Form {
	return Form{title: title, fields: fields, styles: newFormStyles()}
}

// Init implements tea.Model.
func (f Form) Init() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus].focus()
}

// Update implements tea.Model.
func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, defaultFormKeys.cancel):
			f.state = formCancelled
			return f, tea.Quit
		case key.Matches(km, defaultFormKeys.next):
			return f.move(1)
		case key.Matches(km, defaultFormKeys.prev):
			return f.move(-1)
		case key.Matches(km, defaultFormKeys.enter):
			if f.focus < len(f.fields)-1 {
				return f.move(1)
			}
			if f.validateAll() {
				f.state = formSubmitted
				return f, tea.Quit
			}
			return f, nil
		}
	}

	if f.focus >= len(f.fields) {
		return f, nil
	}
	var cmd tea.Cmd
	f.fields = append([]Field(nil), f.fields...)
	f.fields[f.focus], cmd = f.fields[f.focus].update(msg)
	return f, cmd
}

// move shifts focus by step. Moving forward requires the current field to be valid.
func (f Form) move(step int) (tea.Model, tea.Cmd) {
	target := f.focus + step
	if target < 0 || target >= len(f.fields) {
		return f, nil
	}
	f.fields = append([]Field(nil), f.fields...)
	if step > 0 && f.fields[f.focus].validate() != nil {
		return f, nil
	}
	f.fields[f.focus].blur()
	f.focus = target
	return f, f.fields[f.focus].focus()
}

func (f *Form) validateAll() bool {
	ok := true
	for i := range f.fields {
		if f.fields[i].validate() != nil {
			ok = false
		}
	}
	return ok
}

// View implements tea.Model.
func (f Form) View() string {
	parts := make([]string, 0, len(f.fields))
	for i, field := range f.fields {
		parts = append(parts, field.view(i == f.focus, f.styles))
	}
	return f.styles.Title.Render(f.title) + "\n\n" +
		strings.Join(parts, "\n\n") +
		f.styles.Help.Render("\ntab next • shift+tab prev • enter submit • esc cancel")
}

// Submitted reports whether the form was accepted.
func (f Form) Submitted() bool { return f.state == formSubmitted }

// Cancelled reports whether the form was abandoned.
func (f Form) Cancelled() bool { return f.state == formCancelled }

func (f Form) index(name string) int {
	for i := range f.fields {
		if f.fields[i].key == name {
			return i
		}
	}
	return -1
}

// Value returns the text of the field named by key, or "" if there is none.
func (f Form) Value(name string) string {
	if i := f.index(name); i >= 0 {
		return f.fields[i].Value()
	}
	return ""
}

// Err returns the validation error of the field named by key.
func (f Form) Err(name string) error {
	if i := f.index(name); i >= 0 {
		return f.fields[i].err
	}
	return nil
}

// SetValue replaces the text of the field named by key.
func (f *Form) SetValue(name, value string) {
	if i := f.index(name); i >= 0 {
		f.fields[i].set(value)
	}
}

// Values returns every field value by key.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.key] = field.Value()
	}
	return out
}
