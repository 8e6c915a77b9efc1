package wizards

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/assetpack/internal/files/filesystem"
	"github.com/vvka-141/assetpack/internal/tui/components"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// InitResult holds the result of the init wizard.
type InitResult struct {
	Cancelled bool
	TargetDir string
	Profile   string
	WithDemo  bool
}

// InitWizard guides users through creating a drop folder layout.
type InitWizard struct {
	step initStep

	// Profile selection
	profiles   []assetpack.Profile
	profileIdx int

	// Target directory
	target    textinput.Model
	completer *components.PathCompleter

	// Demo files choice
	withDemo bool

	result InitResult

	// Dimensions
	width  int
	height int

	styles wizardStyles
	keys   wizardKeys
}

type initStep int

const (
	initStepProfile initStep = iota
	initStepTarget
	initStepDemo
	initStepComplete
)

// NewInitWizard creates a new init wizard.
func NewInitWizard(targetDir string, profiles []assetpack.Profile) InitWizard {
	if targetDir == "" {
		targetDir = "."
	}
	ti := textinput.New()
	ti.Placeholder = "./drop"
	ti.CharLimit = 512
	ti.Width = 60
	ti.SetValue(targetDir)

	return InitWizard{
		step:      initStepProfile,
		profiles:  profiles,
		target:    ti,
		completer: components.NewPathCompleter(filesystem.NewOSFileSystem(), true),
		withDemo:  true,
		width:     80,
		height:    24,
		styles:    defaultWizardStyles(),
		keys:      defaultWizardKeys(),
	}
}

// Init implements tea.Model.
func (w InitWizard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (w InitWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if key.Matches(msg, w.keys.Quit) {
			w.result.Cancelled = true
			return w, tea.Quit
		}

		switch w.step {
		case initStepProfile:
			return w.updateProfile(msg)
		case initStepTarget:
			return w.updateTarget(msg)
		case initStepDemo:
			return w.updateDemo(msg)
		case initStepComplete:
			return w.updateComplete(msg)
		}
	}

	if w.step == initStepTarget {
		var cmd tea.Cmd
		w.target, cmd = w.target.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w InitWizard) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.profileIdx > 0 {
			w.profileIdx--
		}
	case key.Matches(msg, w.keys.Down):
		if w.profileIdx < len(w.profiles)-1 {
			w.profileIdx++
		}
	case key.Matches(msg, w.keys.Select):
		w.result.Profile = w.profiles[w.profileIdx].Name
		w.step = initStepTarget
		return w, w.target.Focus()
	case key.Matches(msg, w.keys.Back):
		w.result.Cancelled = true
		return w, tea.Quit
	}
	return w, nil
}

func (w InitWizard) updateTarget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Tab):
		w.target.SetValue(w.completer.Next(w.target.Value()))
		w.target.CursorEnd()
		return w, nil
	case key.Matches(msg, w.keys.Select):
		if strings.TrimSpace(w.target.Value()) == "" {
			return w, nil
		}
		w.result.TargetDir = strings.TrimSpace(w.target.Value())
		w.target.Blur()
		w.step = initStepDemo
		return w, nil
	case key.Matches(msg, w.keys.Back):
		w.target.Blur()
		w.step = initStepProfile
		return w, nil
	}

	w.completer.Reset()
	var cmd tea.Cmd
	w.target, cmd = w.target.Update(msg)
	return w, cmd
}

func (w InitWizard) updateDemo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Up), key.Matches(msg, w.keys.Down):
		w.withDemo = !w.withDemo
	case key.Matches(msg, w.keys.Select):
		w.result.WithDemo = w.withDemo
		w.step = initStepComplete
	case key.Matches(msg, w.keys.Back):
		w.step = initStepTarget
		return w, w.target.Focus()
	}
	return w, nil
}

func (w InitWizard) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Select):
		return w, tea.Quit
	case key.Matches(msg, w.keys.Back):
		w.step = initStepDemo
	}
	return w, nil
}

// View implements tea.Model.
func (w InitWizard) View() string {
	var b strings.Builder

	b.WriteString(w.styles.Title.Render("assetpack init - Drop Layout"))
	b.WriteString("\n")

	switch w.step {
	case initStepProfile:
		b.WriteString(w.viewProfile())
	case initStepTarget:
		b.WriteString(w.viewTarget())
	case initStepDemo:
		b.WriteString(w.viewDemo())
	case initStepComplete:
		b.WriteString(w.viewComplete())
	}

	return b.String()
}

func (w InitWizard) viewProfile() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Select a profile"))
	b.WriteString("\n\n")

	for i, p := range w.profiles {
		symbol := "○"
		if i == w.profileIdx {
			symbol = "●"
		}
		desc := "folders: " + strings.Join(p.RequiredFolders, ", ")
		b.WriteString(w.styles.choiceLine(i == w.profileIdx, symbol, p.Name, desc))
	}

	b.WriteString(w.styles.Help.Render("\n↑/↓ navigate • enter select • esc quit"))

	return b.String()
}

func (w InitWizard) viewTarget() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Where should the drop folder be created?"))
	b.WriteString("\n\n")
	b.WriteString(w.styles.Label.Render("Target directory:"))
	b.WriteString("\n")
	b.WriteString(w.styles.FocusedBox.Render(w.target.View()))
	b.WriteString("\n")
	b.WriteString(w.styles.Description.Render("must be empty or not exist yet"))
	b.WriteString("\n")

	b.WriteString(w.styles.Help.Render("\ntab complete • enter continue • esc back"))

	return b.String()
}

func (w InitWizard) viewDemo() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Add demo files?"))
	b.WriteString("\n\n")

	options := []struct {
		selected bool
		name     string
		desc     string
	}{
		{w.withDemo, "Yes, add demo files (recommended)", "Placeholder files that pass validation and show the naming conventions"},
		{!w.withDemo, "No, folders only", "Creates the required folders of the profile"},
	}

	for _, opt := range options {
		symbol := "○"
		if opt.selected {
			symbol = "●"
		}
		b.WriteString(w.styles.choiceLine(opt.selected, symbol, opt.name, opt.desc))
	}

	b.WriteString(w.styles.Help.Render("\n↑/↓ toggle • enter select • esc back"))

	return b.String()
}

func (w InitWizard) viewComplete() string {
	var b strings.Builder

	b.WriteString(w.styles.Success.Render("✓ Ready to create drop folder"))
	b.WriteString("\n\n")

	absPath, _ := filepath.Abs(w.result.TargetDir)
	b.WriteString(fmt.Sprintf("Directory: %s\n", absPath))
	b.WriteString(fmt.Sprintf("Profile:   %s\n", w.result.Profile))
	b.WriteString(fmt.Sprintf("Demo:      %t\n", w.result.WithDemo))

	b.WriteString(w.styles.Help.Render("\nenter create • esc back • ctrl+c cancel"))

	return b.String()
}

// Result returns the wizard result.
func (w InitWizard) Result() InitResult {
	return w.result
}

// RunInitWizard executes the init wizard.
func RunInitWizard(targetDir string, profiles []assetpack.Profile) (InitResult, error) {
	if len(profiles) == 0 {
		return InitResult{Cancelled: true}, fmt.Errorf("no profiles available")
	}

	wizard := NewInitWizard(targetDir, profiles)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return InitResult{Cancelled: true}, err
	}

	return model.(InitWizard).Result(), nil
}

// ShowInitComplete prints the created layout and next steps.
// tree is rendered as given, including its root line.
func ShowInitComplete(w io.Writer, targetDir, profileName, tree string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "✓ Drop folder created successfully!")
	fmt.Fprintln(w)
	fmt.Fprint(w, tree)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  1. Copy the asset files into the folders above")
	fmt.Fprintf(w, "  2. Run: assetpack validate %s --profile %s\n", targetDir, profileName)
	fmt.Fprintf(w, "  3. Run: assetpack pack %s --project <name> --asset <name> --version v001\n", targetDir)
	fmt.Fprintln(w)
}
