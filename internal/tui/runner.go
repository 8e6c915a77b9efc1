package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/assetpack/internal/tui/components"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// Job runs a pack with the supplied callbacks and reports its final error.
type Job func(onProgress assetpack.ProgressFunc, isCancelled assetpack.CancelFunc) error

var errCancelled = errors.New("cancelled by user")

type progressMsg struct {
	index   int
	total   int
	relPath string
}

type packDoneMsg struct {
	err error
}

// PackModel renders a running pack: a spinner naming the current file and a progress bar.
type PackModel struct {
	title      string
	total      int
	index      int
	current    string
	bar        progress.Model
	status     components.Status
	keys       PackKeys
	cancel     *atomic.Bool
	cancelling bool
	done       bool
	err        error
}

// NewPackModel creates a progress model. cancel is set when the user asks to stop.
func NewPackModel(title string, total int, cancel *atomic.Bool) PackModel {
	if cancel == nil {
		panic("cancel flag cannot be nil")
	}
	return PackModel{
		title:  title,
		total:  total,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		status: components.NewStatus("Preparing..."),
		keys:   DefaultPackKeys(),
		cancel: cancel,
	}
}

// Init implements tea.Model.
func (m PackModel) Init() tea.Cmd {
	return m.status.Init()
}

// Update implements tea.Model.
func (m PackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) && !m.done {
			m.cancel.Store(true)
			m.cancelling = true
			m.status.Set("Cancelling after the current file...")
		}
		return m, nil

	case tea.WindowSizeMsg:
		width := msg.Width - 20
		if width > 60 {
			width = 60
		}
		if width > 10 {
			m.bar.Width = width
		}
		return m, nil

	case progressMsg:
		m.index = msg.index
		m.total = msg.total
		m.current = msg.relPath
		if !m.cancelling {
			m.status.Set(msg.relPath)
		}
		return m, nil

	case packDoneMsg:
		m.done = true
		m.err = msg.err

		var result components.StatusMsg
		switch {
		case msg.err != nil:
			result = components.Failed(msg.err)
		case m.cancelling:
			result = components.Failed(errCancelled)
		default:
			result = components.Succeeded(fmt.Sprintf("Packed %d file(s)", m.total))
		}
		m.status, _ = m.status.Update(result)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	return m, cmd
}

// Percent is the completed share of the plan.
func (m PackModel) Percent() float64 {
	if m.total == 0 {
		if m.done {
			return 1
		}
		return 0
	}
	completed := m.index - 1
	if m.done && !m.cancelling && m.err == nil {
		completed = m.total
	}
	if completed < 0 {
		completed = 0
	}
	return float64(completed) / float64(m.total)
}

// Cancelled reports whether the user asked to stop.
func (m PackModel) Cancelled() bool {
	return m.cancelling
}

// Err returns the error the job finished with.
func (m PackModel) Err() error {
	return m.err
}

// View implements tea.Model.
func (m PackModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.status.View())
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.Percent()))
	b.WriteString(" ")
	b.WriteString(CounterStyle.Render(fmt.Sprintf("%d/%d", m.index, m.total)))
	b.WriteString("\n")

	if !m.done {
		b.WriteString(HelpStyle.Render(m.keys.HelpText()))
		b.WriteString("\n")
	}

	return b.String()
}

// RunPack runs job on a worker goroutine while a bubbletea program shows progress.
// Cancelling from the keyboard sets the flag the job polls between items.
func RunPack(title string, total int, job Job) error {
	var cancel atomic.Bool
	p := tea.NewProgram(NewPackModel(title, total, &cancel))

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		err := job(func(index, total int, item assetpack.PlanItem) {
			p.Send(progressMsg{index: index, total: total, relPath: item.RelPath})
		}, cancel.Load)
		p.Send(packDoneMsg{err: err})
	}()

	final, runErr := p.Run()
	// the program may end early (e.g. a terminal error); stop the job at its next boundary
	cancel.Store(true)
	<-finished

	if runErr != nil {
		return fmt.Errorf("progress display: %w", runErr)
	}
	if m, ok := final.(PackModel); ok {
		return m.Err()
	}
	return nil
}

// LineProgress prints one line per item, for CI logs and pipes.
func LineProgress(w io.Writer) assetpack.ProgressFunc {
	return func(index, total int, item assetpack.PlanItem) {
		fmt.Fprintf(w, "[%d/%d] %s\n", index, total, item.RelPath)
	}
}

// RunPackLines runs job with line progress. Cancelling ctx stops the job at its next boundary.
func RunPackLines(ctx context.Context, w io.Writer, job Job) error {
	return job(LineProgress(w), func() bool {
		return ctx.Err() != nil
	})
}
