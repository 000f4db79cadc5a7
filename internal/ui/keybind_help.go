package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap adapts the leader hints of a KeyHandler to bubbles/help.
type KeyMap struct {
	handler *KeyHandler
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap returns the help key map for h.
func NewKeyMap(h *KeyHandler) KeyMap {
	return KeyMap{handler: h}
}

// ShortHelp lists the keys that can follow the current sequence, sorted,
// then esc.
func (km KeyMap) ShortHelp() []key.Binding {
	h := km.handler
	if h == nil || h.Registry == nil {
		return nil
	}
	hints := h.Registry.LeaderHints(h.Sequence(), h.Page)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp is ShortHelp in one column.
func (km KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}

// RenderKeybindHelp draws the leader help box: the sequence typed so far and
// the keys that can follow it.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil {
		return ""
	}
	bindings := NewKeyMap(h).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	hm := help.New()
	hm.Styles.ShortKey = Styles.Selected
	hm.Styles.ShortDesc = Styles.Muted
	hm.Styles.ShortSeparator = Styles.Muted

	prefix := h.Sequence()
	if prefix == "" {
		prefix = leaderSeq
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Render(Styles.Muted.Render(prefix) + " " + hm.ShortHelpView(bindings))
}
