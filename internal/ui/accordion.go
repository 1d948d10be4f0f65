package ui

// Accordion tracks at most one open entry among n entries.
//
// The open entry is a single shared value rather than one flag per entry, so
// opening an entry always closes the previous one.
type Accordion struct {
	n    int
	open int // -1 when every entry is closed
}

// NewAccordion creates an Accordion over n entries, all closed.
func NewAccordion(n int) *Accordion {
	if n < 0 {
		n = 0
	}
	return &Accordion{n: n, open: -1}
}

// Len returns the number of entries.
func (a *Accordion) Len() int { return a.n }

// Toggle closes entry i if it is open, otherwise opens it. Out of range
// indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.n {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// IsOpen reports whether entry i is the open entry.
func (a *Accordion) IsOpen(i int) bool {
	return a.open >= 0 && a.open == i
}

// Open returns the open entry and true, or -1 and false when none is open.
func (a *Accordion) Open() (int, bool) {
	return a.open, a.open >= 0
}

// Close closes the open entry, if any.
func (a *Accordion) Close() { a.open = -1 }
