package wizards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/assetpack/internal/profile"
	"github.com/vvka-141/assetpack/internal/tui/components"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

// ProfileResult holds the outcome of the profile editor.
type ProfileResult struct {
	Cancelled bool
	Base      string
	Profile   assetpack.Profile
}

type profileStep int

const (
	profileStepBase profileStep = iota
	profileStepFields
	profileStepRules
	profileStepReview
)

// Form field keys.
const (
	fieldName       = "name"
	fieldFolders    = "folders"
	fieldExtensions = "extensions"
)

type ruleToggle struct {
	label string
	desc  string
	get   func(assetpack.Rules) bool
	set   func(*assetpack.Rules, bool)
}

var ruleToggles = []ruleToggle{
	{
		label: "Error on missing required folders",
		desc:  "REQ_FOLDER_MISSING",
		get:   func(r assetpack.Rules) bool { return r.ErrorMissingRequiredFolders },
		set:   func(r *assetpack.Rules, v bool) { r.ErrorMissingRequiredFolders = v },
	},
	{
		label: "Forbid spaces in names",
		desc:  "SPACE_IN_DIRNAME / SPACE_IN_FILENAME",
		get:   func(r assetpack.Rules) bool { return r.EnforceNoSpaces },
		set:   func(r *assetpack.Rules, v bool) { r.EnforceNoSpaces = v },
	},
	{
		label: "Warn on missing version token",
		desc:  "VERSION_TOKEN_MISSING, e.g. _v001",
		get:   func(r assetpack.Rules) bool { return r.WarnMissingVersionToken },
		set:   func(r *assetpack.Rules, v bool) { r.WarnMissingVersionToken = v },
	},
	{
		label: "Warn on extensions outside the allow-list",
		desc:  "UNSUPPORTED_EXTENSION",
		get:   func(r assetpack.Rules) bool { return r.WarnUnsupportedExtensions },
		set:   func(r *assetpack.Rules, v bool) { r.WarnUnsupportedExtensions = v },
	},
}

// ProfileWizard edits a copy of a base profile and produces a new one.
// The base is never modified.
type ProfileWizard struct {
	step profileStep

	bases   []assetpack.Profile
	baseIdx int
	picker  components.Picker
	form    components.Form

	rules     assetpack.Rules
	ruleIdx   int
	result    ProfileResult
	formError string

	styles wizardStyles
	keys   wizardKeys
}

// NewProfileWizard creates an editor over bases. initial preselects a base by name.
func NewProfileWizard(bases []assetpack.Profile, initial string) ProfileWizard {
	w := ProfileWizard{
		step:   profileStepBase,
		bases:  bases,
		styles: defaultWizardStyles(),
		keys:   defaultWizardKeys(),
	}
	for i, b := range bases {
		if strings.EqualFold(b.Name, initial) {
			w.baseIdx = i
		}
	}
	w.picker = w.newPicker()
	return w
}

// BuiltinBases returns the built-in profiles in display order.
func BuiltinBases() []assetpack.Profile {
	defaults := profile.Defaults()
	bases := make([]assetpack.Profile, 0, len(defaults))
	for _, name := range profile.BuiltinNames() {
		bases = append(bases, defaults[name])
	}
	return bases
}

func (w ProfileWizard) newPicker() components.Picker {
	options := make([]components.Option, len(w.bases))
	for i, b := range w.bases {
		options[i] = components.Option{
			Label:       b.Name,
			Description: fmt.Sprintf("folders: %s", strings.Join(b.RequiredFolders, ", ")),
			Value:       b.Name,
		}
	}
	return components.NewPicker("Start from profile", options).Quiet().At(w.baseIdx)
}

func (w ProfileWizard) newForm(base assetpack.Profile) components.Form {
	name := components.NewField(fieldName, "Profile name").
		Placeholder(assetpack.CustomProfileName).
		Initial(assetpack.CustomProfileName).
		Required()
	folders := components.NewField(fieldFolders, "Required top-level folders").
		Placeholder("Geo, Textures").
		Initial(strings.Join(base.RequiredFolders, ", "))
	exts := components.NewField(fieldExtensions, "Allowed extensions").
		Placeholder("fbx, png").
		Initial(strings.Join(base.SortedExtensions(), ", ")).
		Check(func(s string) error {
			if len(profile.ParseList(s)) == 0 {
				return fmt.Errorf("at least one extension is required")
			}
			return nil
		})
	return components.NewForm("Edit "+base.Name, name, folders, exts)
}

// Init implements tea.Model.
func (w ProfileWizard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (w ProfileWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(keyMsg, w.keys.Quit) {
		w.result.Cancelled = true
		return w, tea.Quit
	}

	switch w.step {
	case profileStepBase:
		return w.updateBase(msg)
	case profileStepFields:
		return w.updateFields(msg)
	case profileStepRules:
		if isKey {
			return w.updateRules(keyMsg)
		}
	case profileStepReview:
		if isKey {
			return w.updateReview(keyMsg)
		}
	}
	return w, nil
}

func (w ProfileWizard) updateBase(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, _ := w.picker.Update(msg)
	w.picker = next.(components.Picker)

	switch {
	case w.picker.Quit():
		w.result.Cancelled = true
		return w, tea.Quit
	case w.picker.Done():
		w.baseIdx = w.picker.Chosen()
		base := w.bases[w.baseIdx]
		w.result.Base = base.Name
		w.rules = base.Rules
		w.form = w.newForm(base)
		w.step = profileStepFields
		return w, w.form.Init()
	}
	return w, nil
}

func (w ProfileWizard) updateFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := w.form.Update(msg)
	w.form = next.(components.Form)

	switch {
	case w.form.Cancelled():
		w.picker = w.newPicker()
		w.step = profileStepBase
		return w, nil
	case w.form.Submitted():
		w.formError = ""
		w.step = profileStepRules
		return w, nil
	}
	if err := w.form.Err(fieldExtensions); err != nil {
		w.formError = err.Error()
	} else {
		w.formError = ""
	}
	return w, cmd
}

func (w ProfileWizard) updateRules(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.ruleIdx > 0 {
			w.ruleIdx--
		}
	case key.Matches(msg, w.keys.Down):
		if w.ruleIdx < len(ruleToggles)-1 {
			w.ruleIdx++
		}
	case key.Matches(msg, w.keys.Toggle):
		t := ruleToggles[w.ruleIdx]
		t.set(&w.rules, !t.get(w.rules))
	case key.Matches(msg, w.keys.Select):
		w.result.Profile = w.build()
		w.step = profileStepReview
	case key.Matches(msg, w.keys.Back):
		// reopen the form with the values typed so far
		w.form = w.reopenForm()
		w.step = profileStepFields
		return w, w.form.Init()
	}
	return w, nil
}

func (w ProfileWizard) reopenForm() components.Form {
	form := w.newForm(w.bases[w.baseIdx])
	for k, v := range w.form.Values() {
		form.SetValue(k, v)
	}
	return form
}

func (w ProfileWizard) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Select):
		return w, tea.Quit
	case key.Matches(msg, w.keys.Back):
		w.step = profileStepRules
	}
	return w, nil
}

func (w ProfileWizard) build() assetpack.Profile {
	rules := w.rules
	return profile.Customize(w.bases[w.baseIdx], profile.Edits{
		Name:            w.form.Value(fieldName),
		RequiredFolders: profile.ParseList(w.form.Value(fieldFolders)),
		Extensions:      profile.ParseList(w.form.Value(fieldExtensions)),
		Rules:           &rules,
	})
}

// View implements tea.Model.
func (w ProfileWizard) View() string {
	var b strings.Builder

	b.WriteString(w.styles.Title.Render("assetpack profile edit"))
	b.WriteString("\n")

	switch w.step {
	case profileStepBase:
		b.WriteString(w.picker.View())
		b.WriteString(w.styles.Help.Render("\n↑/↓ navigate • enter select • esc cancel"))
	case profileStepFields:
		b.WriteString(w.form.View())
		if w.formError != "" {
			b.WriteString("\n")
			b.WriteString(w.styles.Error.Render("Error: " + w.formError))
		}
	case profileStepRules:
		b.WriteString(w.viewRules())
	case profileStepReview:
		b.WriteString(w.viewReview())
	}

	return b.String()
}

func (w ProfileWizard) viewRules() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Validation rules"))
	b.WriteString("\n\n")

	for i, t := range ruleToggles {
		symbol := "[ ]"
		if t.get(w.rules) {
			symbol = "[x]"
		}
		b.WriteString(w.styles.choiceLine(i == w.ruleIdx, symbol, t.label, t.desc))
	}

	b.WriteString(w.styles.Help.Render("\n↑/↓ navigate • space toggle • enter continue • esc back"))
	return b.String()
}

func (w ProfileWizard) viewReview() string {
	var b strings.Builder
	p := w.result.Profile

	b.WriteString(w.styles.Success.Render("✓ Profile ready"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Name:       %s (from %s)\n", p.Name, w.result.Base))
	b.WriteString(fmt.Sprintf("Folders:    %s\n", strings.Join(p.RequiredFolders, ", ")))
	b.WriteString(fmt.Sprintf("Extensions: %s\n", strings.Join(p.SortedExtensions(), ", ")))
	for _, t := range ruleToggles {
		state := "off"
		if t.get(p.Rules) {
			state = "on"
		}
		b.WriteString(fmt.Sprintf("  %-44s %s\n", t.label, state))
	}

	b.WriteString(w.styles.Help.Render("\nenter save • esc back"))
	return b.String()
}

// Result returns the wizard result.
func (w ProfileWizard) Result() ProfileResult {
	return w.result
}

// RunProfileWizard executes the profile editor.
func RunProfileWizard(bases []assetpack.Profile, initial string) (ProfileResult, error) {
	if len(bases) == 0 {
		return ProfileResult{Cancelled: true}, fmt.Errorf("no base profiles available")
	}

	p := tea.NewProgram(NewProfileWizard(bases, initial), tea.WithAltScreen())
	model, err := p.Run()
	if err != nil {
		return ProfileResult{Cancelled: true}, err
	}
	return model.(ProfileWizard).Result(), nil
}
