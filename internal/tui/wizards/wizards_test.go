package wizards

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/assetpack/internal/profile"
	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func press(t *testing.T, m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyMsg(k))
	}
	return m, cmd
}

func asProfileWizard(t *testing.T, m tea.Model) ProfileWizard {
	t.Helper()
	w, ok := m.(ProfileWizard)
	require.True(t, ok, "expected ProfileWizard, got %T", m)
	return w
}

func asInitWizard(t *testing.T, m tea.Model) InitWizard {
	t.Helper()
	w, ok := m.(InitWizard)
	require.True(t, ok, "expected InitWizard, got %T", m)
	return w
}

func TestBuiltinBases_DisplayOrder(t *testing.T) {
	bases := BuiltinBases()
	require.Len(t, bases, 3)
	assert.Equal(t, []string{profile.Game, profile.VFX, profile.Mobile},
		[]string{bases[0].Name, bases[1].Name, bases[2].Name})
}

func TestProfileWizard_InitialSelection(t *testing.T) {
	w := NewProfileWizard(BuiltinBases(), "mobile")
	assert.Equal(t, profileStepBase, w.step)
	assert.Equal(t, 2, w.baseIdx)
	assert.Contains(t, w.View(), "Start from profile")
}

func TestProfileWizard_HappyPath(t *testing.T) {
	var m tea.Model = NewProfileWizard(BuiltinBases(), "Mobile")

	m, _ = press(t, m, "enter")
	w := asProfileWizard(t, m)
	require.Equal(t, profileStepFields, w.step)
	assert.Equal(t, "Custom", w.form.Value(fieldName))
	assert.Equal(t, "geo, tex, export, docs", w.form.Value(fieldFolders))

	m, _ = press(t, m, "Lite", "tab", "tab", "enter")
	w = asProfileWizard(t, m)
	require.Equal(t, profileStepRules, w.step)

	// second toggle is the spaces rule
	m, _ = press(t, m, "down", "space", "enter")
	w = asProfileWizard(t, m)
	require.Equal(t, profileStepReview, w.step)
	assert.Contains(t, w.View(), "CustomLite")

	m, cmd := press(t, m, "enter")
	assert.True(t, isQuitCmd(cmd))

	result := asProfileWizard(t, m).Result()
	assert.False(t, result.Cancelled)
	assert.Equal(t, "Mobile", result.Base)

	p := result.Profile
	mobile, _ := profile.Lookup(profile.Mobile)
	assert.Equal(t, "CustomLite", p.Name)
	assert.Equal(t, mobile.RequiredFolders, p.RequiredFolders)
	assert.Equal(t, mobile.SortedExtensions(), p.SortedExtensions())
	assert.False(t, p.Rules.EnforceNoSpaces)
	assert.True(t, p.Rules.ErrorMissingRequiredFolders)
	assert.True(t, p.Rules.WarnMissingVersionToken)
	assert.True(t, p.Rules.WarnUnsupportedExtensions)
}

func TestProfileWizard_EditFoldersAndExtensions(t *testing.T) {
	var m tea.Model = NewProfileWizard(BuiltinBases(), "Game")

	m, _ = press(t, m, "enter", "tab", "ctrl+u", "Geo, Tex", "tab", "ctrl+u", ".FBX png", "enter", "enter", "enter")

	result := asProfileWizard(t, m).Result()
	assert.Equal(t, []string{"Geo", "Tex"}, result.Profile.RequiredFolders)
	assert.Equal(t, []string{"fbx", "png"}, result.Profile.SortedExtensions())
	assert.Equal(t, assetpack.AllRules(), result.Profile.Rules)
}

func TestProfileWizard_EmptyExtensionsBlockSubmit(t *testing.T) {
	var m tea.Model = NewProfileWizard(BuiltinBases(), "VFX")

	m, _ = press(t, m, "enter", "tab", "tab", "ctrl+u", "enter")
	w := asProfileWizard(t, m)
	assert.Equal(t, profileStepFields, w.step)
	assert.Contains(t, w.View(), "at least one extension is required")
}

func TestProfileWizard_EscInFormReturnsToBase(t *testing.T) {
	var m tea.Model = NewProfileWizard(BuiltinBases(), "VFX")

	m, _ = press(t, m, "enter", "esc")
	w := asProfileWizard(t, m)
	assert.Equal(t, profileStepBase, w.step)
	assert.False(t, w.Result().Cancelled)

	// the base can be changed after going back
	m, _ = press(t, m, "up", "enter")
	w = asProfileWizard(t, m)
	assert.Equal(t, profileStepFields, w.step)
	assert.Equal(t, "Game", w.Result().Base)
}

func TestProfileWizard_EscInRulesKeepsTypedValues(t *testing.T) {
	var m tea.Model = NewProfileWizard(BuiltinBases(), "VFX")

	m, _ = press(t, m, "enter", "ctrl+u", "Studio", "tab", "tab", "enter", "esc")
	w := asProfileWizard(t, m)
	require.Equal(t, profileStepFields, w.step)
	assert.Equal(t, "Studio", w.form.Value(fieldName))
}

func TestProfileWizard_CtrlCCancels(t *testing.T) {
	var m tea.Model = NewProfileWizard(BuiltinBases(), "VFX")

	m, cmd := press(t, m, "enter", "ctrl+c")
	assert.True(t, isQuitCmd(cmd))
	assert.True(t, asProfileWizard(t, m).Result().Cancelled)
}

func TestProfileWizard_EscOnBaseCancels(t *testing.T) {
	var m tea.Model = NewProfileWizard(BuiltinBases(), "VFX")

	m, cmd := press(t, m, "esc")
	assert.True(t, isQuitCmd(cmd))
	assert.True(t, asProfileWizard(t, m).Result().Cancelled)
}

func TestProfileWizard_BaseIsNotModified(t *testing.T) {
	bases := BuiltinBases()
	before := append([]string(nil), bases[0].RequiredFolders...)

	var m tea.Model = NewProfileWizard(bases, "Game")
	_, _ = press(t, m, "enter", "tab", "ctrl+u", "only", "tab", "enter", "space", "enter", "enter")

	assert.Equal(t, before, bases[0].RequiredFolders)
	assert.Equal(t, assetpack.AllRules(), bases[0].Rules)
}

func TestInitWizard_HappyPath(t *testing.T) {
	target := filepath.Join(t.TempDir(), "drop")
	var m tea.Model = NewInitWizard(target, BuiltinBases())

	m, _ = press(t, m, "down", "enter")
	w := asInitWizard(t, m)
	require.Equal(t, initStepTarget, w.step)
	assert.Equal(t, "VFX", w.Result().Profile)

	m, _ = press(t, m, "enter")
	require.Equal(t, initStepDemo, asInitWizard(t, m).step)

	m, _ = press(t, m, "down", "enter")
	w = asInitWizard(t, m)
	require.Equal(t, initStepComplete, w.step)
	assert.Contains(t, w.View(), "Ready to create drop folder")

	m, cmd := press(t, m, "enter")
	assert.True(t, isQuitCmd(cmd))

	result := asInitWizard(t, m).Result()
	assert.False(t, result.Cancelled)
	assert.Equal(t, target, result.TargetDir)
	assert.Equal(t, "VFX", result.Profile)
	assert.False(t, result.WithDemo)
}

func TestInitWizard_TabCompletesTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "textures_src"), 0755))

	var m tea.Model = NewInitWizard(filepath.Join(dir, "tex"), BuiltinBases())
	m, _ = press(t, m, "enter", "tab")

	w := asInitWizard(t, m)
	assert.Equal(t, filepath.Join(dir, "textures_src")+string(filepath.Separator), w.target.Value())
}

func TestInitWizard_EscOnFirstStepCancels(t *testing.T) {
	var m tea.Model = NewInitWizard("", BuiltinBases())

	m, cmd := press(t, m, "esc")
	assert.True(t, isQuitCmd(cmd))
	assert.True(t, asInitWizard(t, m).Result().Cancelled)
}

func TestInitWizard_BackNavigation(t *testing.T) {
	var m tea.Model = NewInitWizard("drop", BuiltinBases())

	m, _ = press(t, m, "enter", "enter", "esc")
	assert.Equal(t, initStepTarget, asInitWizard(t, m).step)

	m, _ = press(t, m, "esc")
	assert.Equal(t, initStepProfile, asInitWizard(t, m).step)
}

func TestShowInitComplete(t *testing.T) {
	var out bytes.Buffer
	ShowInitComplete(&out, "drop", "Game", "├── geo\n└── tex\n")

	s := out.String()
	assert.Contains(t, s, "Drop folder created successfully")
	assert.Contains(t, s, "└── tex")
	assert.Contains(t, s, "assetpack validate drop --profile Game")
}
