package menu

import "github.com/atomicstack/tree-navigator/internal/source"

// Build converts a generic document into a Tree. Mapping keys become nodes in
// document order and string values become payloads. Any other shape is
// skipped: the node it would have populated keeps neither children nor a
// payload. Build never fails.
//
// Nodes are numbered in pre-order. Construction uses an explicit work list so
// deeply nested documents do not grow the call stack.
func Build(doc source.Value) *Tree {
	t := &Tree{nodes: []Node{{ID: RootID, Title: rootTitle, Parent: NoParent}}}

	type pending struct {
		parent NodeID
		entry  source.Entry
	}
	var work []pending
	push := func(parent NodeID, v source.Value) {
		for i := len(v.Entries) - 1; i >= 0; i-- {
			work = append(work, pending{parent: parent, entry: v.Entries[i]})
		}
	}

	// A bare string at the top level has nowhere to go: the root stays an
	// (empty) interior node.
	if doc.Kind == source.KindMap {
		push(RootID, doc)
	}

	for len(work) > 0 {
		next := work[len(work)-1]
		work = work[:len(work)-1]

		id := NodeID(len(t.nodes))
		node := Node{ID: id, Title: next.entry.Key, Parent: next.parent}
		value := next.entry.Value
		if value.Kind == source.KindString {
			node.Payload = value.Str
			node.HasPayload = true
		}
		t.nodes = append(t.nodes, node)
		t.nodes[next.parent].Children = append(t.nodes[next.parent].Children, id)

		if value.Kind == source.KindMap {
			push(id, value)
		}
	}
	return t
}
