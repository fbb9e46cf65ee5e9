package state

import (
	"fmt"
	"testing"

	"github.com/atomicstack/tree-navigator/internal/menu"
	"github.com/atomicstack/tree-navigator/internal/source"
	"pgregory.net/rapid"
)

func sampleTree() *menu.Tree {
	return menu.Build(source.Map(
		source.E("a", source.Map(
			source.E("b", source.String("val_b")),
			source.E("c", source.String("val_c")),
		)),
		source.E("d", source.String("val_d")),
	))
}

func TestNewNavigatorStartsAtRoot(t *testing.T) {
	n := NewNavigator(sampleTree())
	if !n.AtRoot() || n.Cursor() != 0 {
		t.Fatalf("expected root with cursor 0, got node %d cursor %d", n.Current(), n.Cursor())
	}
	if len(n.Path()) != 0 {
		t.Fatalf("expected empty path at root, got %v", n.Path())
	}
}

func TestSelectTopLevelLeaf(t *testing.T) {
	n := NewNavigator(sampleTree())
	if res := n.Apply(CommandMoveDown); res.Done() {
		t.Fatalf("expected browsing after move")
	}
	if n.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", n.Cursor())
	}
	res := n.Apply(CommandEnter)
	if res.Status != StatusSelected || res.Payload != "val_d" {
		t.Fatalf("expected selection of val_d, got %#v", res)
	}
}

func TestDescendAndSelectNestedLeaf(t *testing.T) {
	n := NewNavigator(sampleTree())
	if res := n.Apply(CommandEnter); res.Done() {
		t.Fatalf("expected descending into a, got %#v", res)
	}
	if got := n.Titles(); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("expected children [b c], got %v", got)
	}
	if n.Cursor() != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", n.Cursor())
	}
	if path := n.Path(); len(path) != 1 || path[0] != "a" {
		t.Fatalf("expected path [a], got %v", path)
	}
	n.Apply(CommandMoveDown)
	res := n.Apply(CommandEnter)
	if res.Status != StatusSelected || res.Payload != "val_c" {
		t.Fatalf("expected selection of val_c, got %#v", res)
	}
}

func TestBackRestoresParentCursor(t *testing.T) {
	n := NewNavigator(sampleTree())
	n.Apply(CommandEnter)
	n.Apply(CommandMoveDown)
	if !n.Back() {
		t.Fatalf("expected back to move")
	}
	if !n.AtRoot() || n.Cursor() != 0 {
		t.Fatalf("expected root with cursor on a, got node %d cursor %d", n.Current(), n.Cursor())
	}
}

func TestBackAtRootIsNoOp(t *testing.T) {
	n := NewNavigator(sampleTree())
	n.MoveDown()
	if n.Back() {
		t.Fatalf("expected back at root to report no movement")
	}
	if !n.AtRoot() || n.Cursor() != 1 {
		t.Fatalf("expected state unchanged, got node %d cursor %d", n.Current(), n.Cursor())
	}
}

func TestMoveClampsAtBoundaries(t *testing.T) {
	n := NewNavigator(sampleTree())
	if n.MoveUp() {
		t.Fatalf("expected no movement above first entry")
	}
	if !n.MoveDown() {
		t.Fatalf("expected movement to second entry")
	}
	if n.MoveDown() || n.MoveDown() {
		t.Fatalf("expected no movement past last entry")
	}
	if n.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", n.Cursor())
	}
}

func TestEmptyMenuIsInert(t *testing.T) {
	n := NewNavigator(menu.Build(source.Map()))
	for _, cmd := range []Command{CommandMoveDown, CommandMoveUp, CommandEnter, CommandBack, CommandNone} {
		if res := n.Apply(cmd); res.Done() {
			t.Fatalf("expected %s to keep browsing, got %#v", cmd, res)
		}
		if n.Cursor() != 0 || !n.AtRoot() {
			t.Fatalf("expected untouched state after %s", cmd)
		}
	}
}

func TestEmptySubmenuIsInert(t *testing.T) {
	n := NewNavigator(menu.Build(source.Map(source.E("hollow", source.Map()))))
	n.Apply(CommandEnter)
	if n.AtRoot() {
		t.Fatalf("expected to descend into empty submenu")
	}
	n.Apply(CommandMoveDown)
	if res := n.Apply(CommandEnter); res.Done() || n.Cursor() != 0 {
		t.Fatalf("expected enter to be a no-op, got %#v cursor %d", res, n.Cursor())
	}
	n.Apply(CommandBack)
	if !n.AtRoot() {
		t.Fatalf("expected back to reach root")
	}
}

func TestQuitFromAnyDepth(t *testing.T) {
	n := NewNavigator(sampleTree())
	n.Apply(CommandEnter)
	n.Apply(CommandMoveDown)
	res := n.Apply(CommandQuit)
	if res.Status != StatusQuit || res.Payload != "" {
		t.Fatalf("expected quit without payload, got %#v", res)
	}
}

func TestCommandString(t *testing.T) {
	if CommandBack.String() != "back" || Command(99).String() != "none" {
		t.Fatalf("unexpected command names")
	}
}

func genTree(t *rapid.T) *menu.Tree {
	var gen func(depth int, label string) source.Value
	gen = func(depth int, label string) source.Value {
		if depth == 0 || rapid.Bool().Draw(t, label+"-leaf") {
			return source.String(label)
		}
		n := rapid.IntRange(0, 6).Draw(t, label+"-len")
		v := source.Map()
		for i := 0; i < n; i++ {
			child := fmt.Sprintf("%s.%d", label, i)
			v.Entries = append(v.Entries, source.E(child, gen(depth-1, child)))
		}
		return v
	}
	return menu.Build(gen(4, "r"))
}

var navCommands = []Command{CommandNone, CommandMoveUp, CommandMoveDown, CommandEnter, CommandBack}

func TestCursorStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(t)
		n := NewNavigator(tree)
		steps := rapid.SliceOfN(rapid.SampledFrom(navCommands), 0, 60).Draw(t, "commands")
		for _, cmd := range steps {
			res := n.Apply(cmd)
			if res.Done() {
				if res.Status != StatusSelected {
					t.Fatalf("unexpected termination %#v", res)
				}
				return
			}
			count := len(n.Children())
			if count == 0 && n.Cursor() != 0 {
				t.Fatalf("expected cursor 0 with no children, got %d", n.Cursor())
			}
			if count > 0 && (n.Cursor() < 0 || n.Cursor() >= count) {
				t.Fatalf("cursor %d out of range for %d children", n.Cursor(), count)
			}
			if tree.Node(n.Current()).IsLeaf() {
				t.Fatalf("current node %d is a leaf", n.Current())
			}
		}
	})
}

func TestEnterBackRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(t)
		n := NewNavigator(tree)
		steps := rapid.SliceOfN(rapid.SampledFrom(navCommands), 0, 30).Draw(t, "prefix")
		for _, cmd := range steps {
			if n.Apply(cmd).Done() {
				return
			}
		}
		children := n.Children()
		if len(children) == 0 || tree.Node(children[n.Cursor()]).IsLeaf() {
			return
		}
		node, cursor := n.Current(), n.Cursor()
		n.Apply(CommandEnter)
		n.Apply(CommandBack)
		if n.Current() != node || n.Cursor() != cursor {
			t.Fatalf("expected (%d,%d) after round trip, got (%d,%d)", node, cursor, n.Current(), n.Cursor())
		}
	})
}
