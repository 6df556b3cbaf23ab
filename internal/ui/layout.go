package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StackLayout renders panels top to bottom, separated by blank lines, and
// remembers where each one landed so clicks can be handed to the panel under
// the cursor in panel-local coordinates.
type StackLayout struct {
	Panels []Panel
	Gap    int // blank lines between panels

	tops    []int
	heights []int
}

// NewStackLayout creates a layout with a one-line gap.
func NewStackLayout(panels ...Panel) *StackLayout {
	return &StackLayout{Panels: panels, Gap: 1}
}

// Update forwards msg to every panel and batches their commands.
func (l *StackLayout) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range l.Panels {
		v, cmd := l.Panels[i].View.Update(msg)
		l.Panels[i].View = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders all panels and records their rows.
func (l *StackLayout) View() string {
	l.tops = l.tops[:0]
	l.heights = l.heights[:0]
	var parts []string
	row := 0
	for i, p := range l.Panels {
		s := p.View.View()
		h := lipgloss.Height(s)
		l.tops = append(l.tops, row)
		l.heights = append(l.heights, h)
		parts = append(parts, s)
		row += h
		if i < len(l.Panels)-1 {
			row += l.Gap
		}
	}
	return strings.Join(parts, strings.Repeat("\n", l.Gap+1))
}

// Top returns the first row of the panel with id, as of the last View.
func (l *StackLayout) Top(id string) (int, bool) {
	for i, p := range l.Panels {
		if p.ID == id && i < len(l.tops) {
			return l.tops[i], true
		}
	}
	return 0, false
}

// Click hands a screen click to the panel under it.
func (l *StackLayout) Click(x, y int) tea.Cmd {
	for i, p := range l.Panels {
		if i >= len(l.tops) {
			break
		}
		if y < l.tops[i] || y >= l.tops[i]+l.heights[i] {
			continue
		}
		if c, ok := p.View.(Clickable); ok {
			return c.Click(x, y-l.tops[i])
		}
		return nil
	}
	return nil
}
