package components

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrFieldRequired is reported by a required field left blank.
var ErrFieldRequired = errors.New("this field is required")

// Field is one labelled line of a Form, addressed by its key.
type Field struct {
	key      string
	label    string
	input    textinput.Model
	required bool
	check    func(string) error
	err      error
}

// NewField creates an empty field. key identifies it inside the form.
func NewField(key, label string) Field {
	in := textinput.New()
	in.CharLimit = 256
	in.Width = 46
	return Field{key: key, label: label, input: in}
}

// Placeholder sets the hint shown while the field is empty.
func (f Field) Placeholder(hint string) Field {
	f.input.Placeholder = hint
	return f
}

// Initial pre-fills the field.
func (f Field) Initial(value string) Field {
	f.input.SetValue(value)
	f.input.CursorEnd()
	return f
}

// Required rejects blank input.
func (f Field) Required() Field {
	f.required = true
	return f
}

// Check installs a validator that runs on every edit.
func (f Field) Check(fn func(string) error) Field {
	f.check = fn
	return f
}

// Key returns the field key.
func (f Field) Key() string { return f.key }

// Value returns the current text.
func (f Field) Value() string { return f.input.Value() }

// Err returns the last validation error.
func (f Field) Err() error { return f.err }

func (f *Field) focus() tea.Cmd {
	return f.input.Focus()
}

func (f *Field) blur() {
	f.input.Blur()
}

func (f *Field) set(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
	f.err = nil
}

func (f Field) update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.check != nil {
		f.err = f.check(f.input.Value())
	}
	return f, cmd
}

func (f *Field) validate() error {
	switch {
	case f.required && strings.TrimSpace(f.input.Value()) == "":
		f.err = ErrFieldRequired
	case f.check != nil:
		f.err = f.check(f.input.Value())
	default:
		f.err = nil
	}
	return f.err
}

func (f Field) view(focused bool, st formStyles) string {
	var b strings.Builder

	label := f.label
	if f.required {
		label += st.Marker.Render(" *")
	}
	b.WriteString(st.Label.Render(label))
	b.WriteString("\n")

	input := st.Input
	if focused {
		input = st.Focused
	}
	b.WriteString(input.Render(f.input.View()))

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(st.Error.Render(f.err.Error()))
	}
	return b.String()
}
