package state

import "github.com/atomicstack/tree-navigator/internal/logging/events"

// MoveUp moves the cursor to the previous entry. It stops at the first entry
// and reports whether the cursor moved.
func (n *Navigator) MoveUp() bool {
	return n.moveCursorBy(-1)
}

// MoveDown moves the cursor to the next entry. It stops at the last entry
// and reports whether the cursor moved.
func (n *Navigator) MoveDown() bool {
	return n.moveCursorBy(1)
}

func (n *Navigator) moveCursorBy(delta int) bool {
	count := len(n.Children())
	if count == 0 {
		n.cursor = 0
		return false
	}
	old := n.cursor
	n.cursor += delta
	if n.cursor < 0 {
		n.cursor = 0
	}
	if n.cursor >= count {
		n.cursor = count - 1
	}
	if n.cursor == old {
		return false
	}
	events.Nav.Cursor(int(n.current), n.cursor)
	return true
}
