package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Clickable is implemented by views that react to mouse presses.
// x and y are relative to the view's top-left corner.
type Clickable interface {
	Click(x, y int) tea.Cmd
}
