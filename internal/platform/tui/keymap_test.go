package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"up", core.ActionRotate},
		{"w", core.ActionRotate},
		{"x", core.ActionRotate},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{" ", core.ActionDrop},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"esc", core.ActionPause},
		{"r", core.ActionRestart},
		{"b", core.ActionBack},
		{"z", core.ActionNone},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(keyMsg(tt.key))
		assert.Equal(t, tt.want, got, "key %q", tt.key)
		assert.False(t, quit, "key %q", tt.key)
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, k := range []string{"q", "ctrl+c"} {
		action, quit := km.MapKey(keyMsg(k))
		assert.True(t, quit, k)
		assert.Equal(t, core.ActionQuit, action)
	}
}

func TestMapKeyToFrameCountsRepeats(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapKeyToFrame(keyMsg("left"), &frame)
	km.MapKeyToFrame(keyMsg("left"), &frame)
	assert.Equal(t, 2, frame.Count(core.ActionLeft))

	assert.True(t, km.MapKeyToFrame(keyMsg("q"), &frame))
	assert.False(t, frame.Has(core.ActionQuit))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(keyMsg("up")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyMsg("j")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(keyMsg("enter")))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(keyMsg("esc")))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(keyMsg("tab")))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyMsg("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(keyMsg("z")))
}
