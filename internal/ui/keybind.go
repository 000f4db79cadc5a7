package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is how the space leader is written in a sequence.
const leaderSeq = "SPC"

// binding is one registered key sequence.
type binding struct {
	cmd  tea.Cmd
	desc string
	// pages limits the binding to these page IDs. Empty means every page.
	pages []string
}

func (b binding) appliesTo(page string) bool {
	return len(b.pages) == 0 || slices.Contains(b.pages, page)
}

// KeybindRegistry maps key sequences to commands.
//
// Sequences are space separated key names as tea.KeyMsg.String reports
// them, with the space bar written "SPC": "a", "esc", "SPC r", "SPC t e".
type KeybindRegistry struct {
	bindings map[string]binding
	submenus map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		submenus: make(map[string]string),
	}
}

// SetSubmenuLabel names the submenu opened by a key after SPC.
func (r *KeybindRegistry) SetSubmenuLabel(key, label string) {
	r.submenus[key] = label
}

// Bind binds seq on every page. A later bind of the same sequence wins.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindForPages(seq, cmd, "")
}

// BindWithDesc is Bind with a description for the leader help.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindForPages(seq, cmd, desc)
}

// BindForPages binds seq while one of pages is current. With no pages the
// binding is global.
func (r *KeybindRegistry) BindForPages(seq string, cmd tea.Cmd, desc string, pages ...string) {
	r.bindings[canonical(seq)] = binding{cmd: cmd, desc: desc, pages: pages}
}

// Lookup returns the command bound to seq on any page.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[canonical(seq)].cmd
}

// LookupIn returns the command bound to seq while page is current.
func (r *KeybindRegistry) LookupIn(seq, page string) tea.Cmd {
	b, ok := r.bindings[canonical(seq)]
	if !ok || !b.appliesTo(page) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer sequence bound on page continues seq.
func (r *KeybindRegistry) HasPrefix(seq, page string) bool {
	prefix := canonical(seq) + " "
	for s, b := range r.bindings {
		if b.cmd != nil && strings.HasPrefix(s, prefix) && b.appliesTo(page) {
			return true
		}
	}
	return false
}

// LeaderHints returns the keys that can follow seq on page, each with a
// description. An empty seq means just after SPC. A key that opens a
// submenu is described by its submenu label.
func (r *KeybindRegistry) LeaderHints(seq, page string) map[string]string {
	if seq == "" {
		seq = leaderSeq
	}
	seq = canonical(seq)
	hints := make(map[string]string)
	for s, b := range r.bindings {
		rest, ok := strings.CutPrefix(s, seq+" ")
		if !ok || b.cmd == nil || !b.appliesTo(page) {
			continue
		}
		next, _, deeper := strings.Cut(rest, " ")
		switch {
		case deeper:
			if _, seen := hints[next]; seen {
				continue
			}
			if label, ok := r.submenus[next]; ok {
				hints[next] = label
			} else {
				hints[next] = next + "…"
			}
		case b.desc != "":
			hints[next] = b.desc
		default:
			hints[next] = s
		}
	}
	return hints
}

// canonical rewrites the space bar as SPC and collapses whitespace.
func canonical(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = seqPart(p)
	}
	return strings.Join(parts, " ")
}

func seqPart(key string) string {
	if key == " " || key == "space" {
		return leaderSeq
	}
	return key
}

// KeyHandler turns key presses into bound commands. The space bar starts a
// leader sequence that collects keys until one is bound or nothing more can
// follow.
type KeyHandler struct {
	Registry *KeybindRegistry
	// Page is the current page ID; page-scoped bindings match against it.
	Page string
	// LeaderWaiting is set while a leader sequence is being typed.
	LeaderWaiting bool
	// Buffer holds the sequence typed so far, starting with SPC.
	Buffer []string
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle reports whether the key belonged to a binding or to a leader
// sequence, and the command to run if one completed.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (bool, tea.Cmd) {
	part := seqPart(msg.String())

	if h.LeaderWaiting {
		if part == "esc" {
			h.reset()
			return true, nil
		}
		h.Buffer = append(h.Buffer, part)
		seq := strings.Join(h.Buffer, " ")
		if cmd := h.Registry.LookupIn(seq, h.Page); cmd != nil {
			h.reset()
			return true, cmd
		}
		if !h.Registry.HasPrefix(seq, h.Page) {
			h.reset()
		}
		return true, nil
	}

	if part == leaderSeq {
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil
	}
	if cmd := h.Registry.LookupIn(part, h.Page); cmd != nil {
		return true, cmd
	}
	return false, nil
}

// Sequence is the leader sequence typed so far, or "".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}
