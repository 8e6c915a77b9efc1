package tui

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func applyMsg(t *testing.T, m PackModel, msg tea.Msg) (PackModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PackModel)
	require.True(t, ok, "expected PackModel, got %T", next)
	return pm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPackModel_ProgressAdvances(t *testing.T) {
	var cancel atomic.Bool
	m := NewPackModel("Packing", 4, &cancel)
	assert.Equal(t, 0.0, m.Percent())

	m, _ = applyMsg(t, m, progressMsg{index: 3, total: 4, relPath: "textures/a_v001.png"})
	assert.InDelta(t, 0.5, m.Percent(), 1e-9)
	assert.Contains(t, m.View(), "textures/a_v001.png")
	assert.Contains(t, m.View(), "3/4")

	m, cmd := applyMsg(t, m, packDoneMsg{})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, 1.0, m.Percent())
	assert.Contains(t, m.View(), "Packed 4 file(s)")
	assert.NoError(t, m.Err())
}

func TestPackModel_CancelKeySetsFlag(t *testing.T) {
	var cancel atomic.Bool
	m := NewPackModel("Packing", 2, &cancel)
	m, _ = applyMsg(t, m, progressMsg{index: 1, total: 2, relPath: "a.png"})

	m, cmd := applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd, "cancel waits for the job to stop")
	assert.True(t, cancel.Load())
	assert.True(t, m.Cancelled())
	assert.Contains(t, m.View(), "Cancelling")

	m, cmd = applyMsg(t, m, packDoneMsg{})
	assert.True(t, isQuit(cmd))
	assert.Contains(t, m.View(), "cancelled by user")
	assert.Equal(t, 0.0, m.Percent())
}

func TestPackModel_JobError(t *testing.T) {
	var cancel atomic.Bool
	m := NewPackModel("Packing", 1, &cancel)

	m, _ = applyMsg(t, m, packDoneMsg{err: assetpack.ErrPackIncomplete})
	assert.True(t, errors.Is(m.Err(), assetpack.ErrPackIncomplete))
	assert.Contains(t, m.View(), "pack incomplete")
}

func TestPackModel_EmptyPlan(t *testing.T) {
	var cancel atomic.Bool
	m := NewPackModel("Packing", 0, &cancel)
	m, _ = applyMsg(t, m, packDoneMsg{})
	assert.Equal(t, 1.0, m.Percent())
}

func TestNewPackModel_NilFlagPanics(t *testing.T) {
	assert.Panics(t, func() { NewPackModel("x", 1, nil) })
}

func TestRunPackLines(t *testing.T) {
	var out bytes.Buffer
	items := []assetpack.PlanItem{{RelPath: "a.png"}, {RelPath: "b.fbx"}}

	err := RunPackLines(context.Background(), &out, func(onProgress assetpack.ProgressFunc, isCancelled assetpack.CancelFunc) error {
		for i, item := range items {
			if isCancelled() {
				return assetpack.ErrPackIncomplete
			}
			onProgress(i+1, len(items), item)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "[1/2] a.png\n[2/2] b.fbx\n", out.String())
}

func TestRunPackLines_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var polled bool
	err := RunPackLines(ctx, &bytes.Buffer{}, func(_ assetpack.ProgressFunc, isCancelled assetpack.CancelFunc) error {
		polled = isCancelled()
		return nil
	})
	require.NoError(t, err)
	assert.True(t, polled)
}

func TestRenderFinding(t *testing.T) {
	out := RenderFinding(assetpack.Errorf(assetpack.CodeCopyFailed, "a.png", "boom"))
	assert.Contains(t, out, "COPY_FAILED")
	assert.Contains(t, out, SymbolError)
	assert.Contains(t, RenderFinding(assetpack.Warnf("X", "", "w")), SymbolWarning)
}
