package ui

// Tabs tracks which one of a fixed, ordered set of entries is active.
type Tabs struct {
	ids    []string
	active int
}

// NewTabs creates a Tabs controller over ids with the first id active.
// An empty ids list yields a controller with no valid state.
func NewTabs(ids []string) *Tabs {
	t := &Tabs{ids: append([]string(nil), ids...), active: -1}
	if len(t.ids) > 0 {
		t.active = 0
	}
	return t
}

// Len returns the number of entries.
func (t *Tabs) Len() int { return len(t.ids) }

// Valid reports whether the controller references an entry.
func (t *Tabs) Valid() bool { return t.active >= 0 }

// Select makes id the active entry. Selecting the already active id is a
// no-op. Unknown ids are rejected and leave the state unchanged.
func (t *Tabs) Select(id string) bool {
	for i, v := range t.ids {
		if v == id {
			t.active = i
			return true
		}
	}
	return false
}

// Active returns the active id, or "" when there are no entries.
func (t *Tabs) Active() string {
	if t.active < 0 {
		return ""
	}
	return t.ids[t.active]
}

// ActiveIndex returns the position of the active id, or -1.
func (t *Tabs) ActiveIndex() int { return t.active }

// IsActive reports whether id is the active entry.
func (t *Tabs) IsActive(id string) bool {
	return t.active >= 0 && t.ids[t.active] == id
}

// Next activates the entry after the active one, wrapping around.
func (t *Tabs) Next() {
	if len(t.ids) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.ids)
}

// Prev activates the entry before the active one, wrapping around.
func (t *Tabs) Prev() {
	if len(t.ids) == 0 {
		return
	}
	t.active = (t.active - 1 + len(t.ids)) % len(t.ids)
}
