package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slider/internal/carousel"
)

// KeyMap implements help.KeyMap for the help bar: slider keys first, then the
// registry's described bindings.
type KeyMap struct {
	slider   []key.Binding
	registry *KeybindRegistry
}

// NewKeyMap builds the help key map for the carousel keys and registry.
func NewKeyMap(keys carousel.Keys, registry *KeybindRegistry) *KeyMap {
	km := &KeyMap{registry: registry}
	if len(keys.Previous) > 0 {
		km.slider = append(km.slider, key.NewBinding(key.WithKeys(keys.Previous...), key.WithHelp(strings.Join(keys.Previous, "/"), "prev slide")))
	}
	if len(keys.Next) > 0 {
		km.slider = append(km.slider, key.NewBinding(key.WithKeys(keys.Next...), key.WithHelp(strings.Join(keys.Next, "/"), "next slide")))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding(nil), km.slider...)
	if km.registry != nil {
		out = append(out, km.registry.Hints()...)
	}
	return out
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// HelpView renders the help bar and the status line.
type HelpView struct {
	help   help.Model
	keys   help.KeyMap
	Status string
	Err    bool
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView creates a help bar for keys.
func NewHelpView(keys help.KeyMap) *HelpView {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return &HelpView{help: h, keys: keys}
}

// Init implements View.
func (v *HelpView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.help.Width = msg.Width
	}
	return v, nil
}

// View implements View.
func (v *HelpView) View() string {
	bar := v.help.View(v.keys)
	if v.Status == "" {
		return bar
	}
	style := Styles.Muted
	if v.Err {
		style = Styles.Error
	}
	return bar + "\n" + style.Render(v.Status)
}
