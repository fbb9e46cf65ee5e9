package state

import (
	"github.com/atomicstack/tree-navigator/internal/logging/events"
	"github.com/atomicstack/tree-navigator/internal/menu"
)

// Navigator walks a menu tree. It holds the node whose children are shown
// and a cursor into those children.
type Navigator struct {
	tree    *menu.Tree
	current menu.NodeID
	cursor  int
}

// NewNavigator starts a session at the root of tree with the cursor on the
// first entry.
func NewNavigator(tree *menu.Tree) *Navigator {
	return &Navigator{tree: tree, current: menu.RootID}
}

// Tree returns the tree being navigated.
func (n *Navigator) Tree() *menu.Tree {
	return n.tree
}

// Current returns the node whose children are displayed.
func (n *Navigator) Current() menu.NodeID {
	return n.current
}

// Cursor returns the highlighted position among the current children. It is
// 0 when there are no children.
func (n *Navigator) Cursor() int {
	return n.cursor
}

// Children returns the ids of the current node's children.
func (n *Navigator) Children() []menu.NodeID {
	return n.tree.Children(n.current)
}

// Titles returns the titles of the current node's children.
func (n *Navigator) Titles() []string {
	return n.tree.Titles(n.current)
}

// AtRoot reports whether the current node is the root.
func (n *Navigator) AtRoot() bool {
	return n.current == menu.RootID
}

// Path returns the titles from the first level below the root down to the
// current node. It is empty at the root.
func (n *Navigator) Path() []string {
	var path []string
	for id := n.current; id != menu.RootID; {
		node := n.tree.Node(id)
		path = append(path, node.Title)
		parent, ok := n.tree.Parent(id)
		if !ok {
			break
		}
		id = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Apply runs one command and reports whether the session is over.
func (n *Navigator) Apply(cmd Command) Result {
	switch cmd {
	case CommandMoveUp:
		n.MoveUp()
	case CommandMoveDown:
		n.MoveDown()
	case CommandEnter:
		if payload, ok := n.Enter(); ok {
			return Result{Status: StatusSelected, Payload: payload}
		}
	case CommandBack:
		n.Back()
	case CommandQuit:
		events.Nav.Quit(int(n.current), n.cursor)
		return Result{Status: StatusQuit}
	}
	return Result{Status: StatusBrowsing}
}

// Enter acts on the highlighted child. A leaf yields its payload and true.
// An interior child becomes the current node with the cursor on its first
// entry. With no children Enter does nothing.
func (n *Navigator) Enter() (string, bool) {
	children := n.Children()
	if len(children) == 0 {
		return "", false
	}
	target := n.tree.Node(children[n.cursor])
	if target.IsLeaf() {
		events.Nav.Select(int(target.ID), target.Title, target.Payload)
		return target.Payload, true
	}
	events.Nav.Enter(int(n.current), int(target.ID), target.Title)
	n.current = target.ID
	n.cursor = 0
	return "", false
}

// Back returns to the parent node and highlights the entry that was entered.
// It reports false at the root.
func (n *Navigator) Back() bool {
	parent, ok := n.tree.Parent(n.current)
	if !ok {
		return false
	}
	idx := n.tree.IndexOf(parent, n.current)
	if idx < 0 {
		idx = 0
	}
	events.Nav.Back(int(n.current), int(parent), idx)
	n.current = parent
	n.cursor = idx
	return true
}
