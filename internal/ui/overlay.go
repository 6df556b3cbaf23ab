package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a modal view with the keys that dismiss it.
type Overlay struct {
	View    View
	Dismiss []string // e.g. "esc"
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	for _, k := range o.Dismiss {
		if k == key {
			return true
		}
	}
	return false
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// Place centers the top overlay on a width x height backdrop and returns the
// rendered screen with the box origin. ok is false when the stack is empty.
func (s *OverlayStack) Place(width, height int) (screen string, x, y int, ok bool) {
	top, ok := s.Peek()
	if !ok {
		return "", 0, 0, false
	}
	box := top.View.View()
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	x, y = max((width-bw)/2, 0), max((height-bh)/2, 0)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box), x, y, true
}

// ClickTop routes a screen click to the top overlay. Clicks outside the box
// (on the backdrop) dismiss it.
func (s *OverlayStack) ClickTop(width, height, cx, cy int) tea.Cmd {
	top, ok := s.Peek()
	if !ok {
		return nil
	}
	_, x, y, _ := s.Place(width, height)
	box := top.View.View()
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	if cx < x || cx >= x+bw || cy < y || cy >= y+bh {
		return dismissModal
	}
	if c, ok := top.View.(Clickable); ok {
		return c.Click(cx-x, cy-y)
	}
	return nil
}
