package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type statusState int

const (
	statusRunning statusState = iota
	statusOK
	statusFailed
)

// Status is a one-line activity indicator: a spinner with a message
// while running, then a check mark or a cross.
type Status struct {
	spin  spinner.Model
	text  string
	state statusState
	err   error
}

// StatusMsg ends a Status. Err marks a failure.
type StatusMsg struct {
	Text string
	Err  error
}

// Succeeded ends a Status with text.
func Succeeded(text string) StatusMsg { return StatusMsg{Text: text} }

// Failed ends a Status with err.
func Failed(err error) StatusMsg { return StatusMsg{Err: err} }

var (
	statusSpin = lipgloss.NewStyle().Foreground(colorAccent)
	statusText = lipgloss.NewStyle().Foreground(colorText)
	statusOKs  = lipgloss.NewStyle().Foreground(colorOK)
	statusErr  = lipgloss.NewStyle().Foreground(colorError)
)

// NewStatus creates a running indicator.
func NewStatus(text string) Status {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(statusSpin))
	return Status{spin: s, text: text}
}

// Init starts the spinner.
func (s Status) Init() tea.Cmd { return s.spin.Tick }

// Update advances the spinner or applies a StatusMsg.
func (s Status) Update(msg tea.Msg) (Status, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusMsg:
		s.state, s.err = statusOK, msg.Err
		if msg.Err != nil {
			s.state = statusFailed
		} else {
			s.text = msg.Text
		}
		return s, nil
	case spinner.TickMsg:
		if s.state != statusRunning {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Set replaces the running message.
func (s *Status) Set(text string) { s.text = text }

// View implements tea.Model.
func (s Status) View() string {
	switch s.state {
	case statusOK:
		return statusOKs.Render("✓ " + s.text)
	case statusFailed:
		return statusErr.Render("✗ " + s.err.Error())
	}
	return s.spin.View() + " " + statusText.Render(s.text)
}

// Finished reports whether the status has ended.
func (s Status) Finished() bool { return s.state != statusRunning }

// OK reports whether the status ended successfully.
func (s Status) OK() bool { return s.state == statusOK }

// Err returns the failure, if any.
func (s Status) Err() error { return s.err }
