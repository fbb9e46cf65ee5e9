package state

import "fmt"

// WindowStart returns the index of the first sibling to display when
// selected is highlighted among total siblings and size rows are available.
//
// The list does not scroll until the selection leaves the first window. Near
// the end the window is pinned to the tail, and in between the selection is
// centred. size must be positive.
func WindowStart(selected, total, size int) int {
	if size <= 0 {
		panic(fmt.Sprintf("state: window size must be positive, got %d", size))
	}
	switch {
	case total <= size:
		return 0
	case selected < size:
		return 0
	case selected > total-size:
		return total - size
	default:
		return selected - size/2
	}
}

// Window is the visible slice [Start, End) of a list of siblings and the
// on-screen row of the selection within it.
type Window struct {
	Start int
	End   int
	Row   int
}

// Len returns the number of visible rows.
func (w Window) Len() int {
	return w.End - w.Start
}

// VisibleWindow computes the window for selected among total siblings.
func VisibleWindow(selected, total, size int) Window {
	start := WindowStart(selected, total, size)
	end := start + size
	if end > total {
		end = total
	}
	return Window{Start: start, End: end, Row: selected - start}
}

// Window returns the visible slice of the current children for size rows.
func (n *Navigator) Window(size int) Window {
	return VisibleWindow(n.cursor, len(n.Children()), size)
}
