package menu

import (
	"fmt"
	"strings"
)

// NodeID indexes a node in a Tree.
type NodeID int

const (
	// RootID is the id of the root node of every tree.
	RootID NodeID = 0
	// NoParent is the parent of the root.
	NoParent NodeID = -1

	rootTitle         = "root"
	indentationSpaces = 2
)

// Node is one entry of the menu. A leaf carries a payload and no children;
// an interior node carries children and no payload.
type Node struct {
	ID         NodeID
	Title      string
	Payload    string
	HasPayload bool
	Children   []NodeID
	Parent     NodeID
}

// IsLeaf reports whether selecting the node ends the session.
func (n *Node) IsLeaf() bool {
	return n.HasPayload
}

// Tree is an immutable arena of menu nodes. Node 0 is always the root.
type Tree struct {
	nodes []Node
}

// Len returns the number of nodes including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.Node(RootID)
}

// Node returns the node with the given id. Ids are only ever produced by the
// tree itself, so an unknown id is a programming error and panics.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("menu: node id %d out of range [0,%d)", id, len(t.nodes)))
	}
	return &t.nodes[id]
}

// Children returns the ordered child ids of id. The slice must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.Node(id).Children
}

// Parent returns the parent of id. The second result is false for the root.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	p := t.Node(id).Parent
	return p, p != NoParent
}

// Titles returns the titles of id's children in display order.
func (t *Tree) Titles(id NodeID) []string {
	children := t.Children(id)
	titles := make([]string, len(children))
	for i, child := range children {
		titles[i] = t.nodes[child].Title
	}
	return titles
}

// IndexOf returns the position of child within parent's children, or -1.
func (t *Tree) IndexOf(parent, child NodeID) int {
	for i, id := range t.Children(parent) {
		if id == child {
			return i
		}
	}
	return -1
}

// Stats summarises the shape of a tree.
type Stats struct {
	Nodes  int `json:"nodes"`
	Leaves int `json:"leaves"`
	Depth  int `json:"depth"`
}

// Stats counts nodes and leaves and measures the deepest level below the
// root. Parents always precede their children in the arena, so one pass
// suffices.
func (t *Tree) Stats() Stats {
	st := Stats{Nodes: len(t.nodes)}
	depth := make([]int, len(t.nodes))
	for i := 1; i < len(t.nodes); i++ {
		node := &t.nodes[i]
		depth[i] = depth[node.Parent] + 1
		if depth[i] > st.Depth {
			st.Depth = depth[i]
		}
		if node.HasPayload {
			st.Leaves++
		}
	}
	return st
}

// String renders the tree one node per line, indented by depth, with leaves
// shown as "title : payload".
func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return ""
	}
	type frame struct {
		id    NodeID
		depth int
	}
	var b strings.Builder
	stack := []frame{{id: RootID}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := &t.nodes[top.id]
		b.WriteString(strings.Repeat(" ", top.depth*indentationSpaces))
		b.WriteString(node.Title)
		if node.HasPayload {
			b.WriteString(" : ")
			b.WriteString(node.Payload)
		}
		b.WriteByte('\n')
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: node.Children[i], depth: top.depth + 1})
		}
	}
	return b.String()
}
