package ui

// FocusManager tracks and rotates keyboard focus across the tappable nodes
// drawn in the last frame. Nodes are identified by their zone ID.
type FocusManager struct {
	Current  string   // zone ID of the focused node, "" for none
	Order    []string // Tab order, in draw order
	OnChange func(from, to string)
}

// Sync replaces the tab order. Focus is dropped if the focused node is no
// longer drawn.
func (f *FocusManager) Sync(order []string) {
	f.Order = order
	if f.Current == "" {
		return
	}
	for _, id := range order {
		if id == f.Current {
			return
		}
	}
	f.set("")
}

// Next advances focus to the next node in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous node in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index()
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(f.Order) - 1
	default:
		next = (idx + delta + len(f.Order)) % len(f.Order)
	}
	f.set(f.Order[next])
	return f.Current
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// SetFocus sets focus to the given node ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

// Clear drops focus.
func (f *FocusManager) Clear() { f.set("") }

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
