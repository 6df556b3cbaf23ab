package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("j") != nil {
		t.Error("expected nil binding for j")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_HintsGroupByDescription(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("o", func() tea.Msg { return ShowModalMsg{} }, "about")
	reg.Bind("1", func() tea.Msg { return SelectTabMsg{} })

	hints := reg.Hints()
	require.Len(t, hints, 2)
	assert.Equal(t, "about", hints[0].Help().Desc)
	assert.Equal(t, "quit", hints[1].Help().Desc)
	assert.ElementsMatch(t, []string{"ctrl+c", "q"}, hints[1].Keys())
}

func TestKeyHandler_Handle(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("x"))
	require.True(t, consumed)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)

	consumed, cmd = h.Handle(keyMsg("left"))
	assert.False(t, consumed, "unbound keys fall through to the router")
	assert.Nil(t, cmd)
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeyLeft.String() returns "left", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// click creates a left-button press at (x, y).
func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
