package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayStack_PushPop(t *testing.T) {
	var s OverlayStack
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(Overlay{View: NewInfoModal("t", "b"), Dismiss: []string{"esc"}})
	top, ok := s.Peek()
	require.True(t, ok)
	assert.True(t, top.IsDismissKey("esc"))
	assert.False(t, top.IsDismissKey("q"))
	assert.Equal(t, 1, s.Len())

	_, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestOverlayStack_ClickTop(t *testing.T) {
	var s OverlayStack
	modal := NewInfoModal("Title", "Body")
	s.Push(Overlay{View: modal, Dismiss: []string{"esc"}})

	const w, h = 100, 40
	_, x, y, ok := s.Place(w, h)
	require.True(t, ok)
	box := modal.View()
	assert.Equal(t, (w-lipgloss.Width(box))/2, x)
	assert.Equal(t, (h-lipgloss.Height(box))/2, y)

	// Backdrop click dismisses.
	cmd := s.ClickTop(w, h, 0, 0)
	require.NotNil(t, cmd)
	assert.IsType(t, DismissModalMsg{}, cmd())

	// Click inside the body does nothing.
	assert.Nil(t, s.ClickTop(w, h, x+3, y+4))

	// Close button sits at the right end of the first content row.
	row := Styles.Modal.GetBorderTopSize() + Styles.Modal.GetPaddingTop()
	right := modalWidth - Styles.Modal.GetBorderRightSize() - Styles.Modal.GetPaddingRight()
	cmd = s.ClickTop(w, h, x+right-1, y+row)
	require.NotNil(t, cmd)
	assert.IsType(t, DismissModalMsg{}, cmd())
}

func TestInfoModal_EscDismisses(t *testing.T) {
	m := NewInfoModal("t", "b")
	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, DismissModalMsg{}, cmd())

	_, cmd = m.Update(keyMsg("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, modalWidth, lipgloss.Width(m.View()))
}
