package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, active dots
	ColorHighlight = "205" // Magenta - for active tab, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Darker gray - for inactive dots
)

// Indicator glyphs.
const (
	dotActive   = "●"
	dotInactive = "○"
	controlPrev = "‹"
	controlNext = "›"
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title     lipgloss.Style // Bold accent color - for the deck title
	Card      lipgloss.Style // Slide card border
	CardTitle lipgloss.Style
	Author    lipgloss.Style
	Control   lipgloss.Style // Slider side controls
	DotOn     lipgloss.Style
	DotOff    lipgloss.Style
	TabOn     lipgloss.Style
	TabOff    lipgloss.Style
	TabBody   lipgloss.Style
	Button    lipgloss.Style // Header buttons
	Modal     lipgloss.Style
	Muted     lipgloss.Style
	Normal    lipgloss.Style
	Error     lipgloss.Style
	Empty     lipgloss.Style // Empty state text (muted, italic)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Author: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Control: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	DotOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	DotOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	TabOn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	TabOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabBody: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		PaddingLeft(2),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
