package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys to commands.
// Keys use tea.KeyMsg.String() notation: "q", "ctrl+c", "esc", "tab".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// Hints returns bound keys that have descriptions, grouped by description,
// sorted by description so related keys (e.g. q and ctrl+c) share one entry.
func (r *KeybindRegistry) Hints() []key.Binding {
	byDesc := make(map[string][]string)
	for k, d := range r.descriptions {
		if r.bindings[k] != nil {
			byDesc[d] = append(byDesc[d], k)
		}
	}
	descs := make([]string, 0, len(byDesc))
	for d := range byDesc {
		descs = append(descs, d)
	}
	sort.Strings(descs)

	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := byDesc[d]
		sort.Strings(keys)
		out = append(out, key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], d)))
	}
	return out
}

// KeyHandler dispatches key presses to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// Unbound keys are not consumed and fall through to the carousel router.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}
