package shumway

import (
	"errors"
	"strings"
	"testing"
)

func mustAdd(t *testing.T, parent, child *Node) {
	t.Helper()
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild(%q, %q): %v", parent.Name(), child.Name(), err)
	}
}

// childNames joins the children's names with commas.
func childNames(n *Node) string {
	names := make([]string, len(n.Children()))
	for i, c := range n.Children() {
		names[i] = c.Name()
	}
	return strings.Join(names, ",")
}

func containerWith(t *testing.T, names ...string) (*Node, []*Node) {
	t.Helper()
	parent := NewContainer("parent")
	children := make([]*Node, len(names))
	for i, name := range names {
		children[i] = NewNode(name)
		mustAdd(t, parent, children[i])
	}
	return parent, children
}

// assertOwnership checks that every child points back at n.
func assertOwnership(t *testing.T, n *Node) {
	t.Helper()
	seen := make(map[*Node]bool)
	for i, c := range n.Children() {
		if c.Parent() != n {
			t.Errorf("child %d (%q) has parent %v", i, c.Name(), c.Parent())
		}
		if seen[c] {
			t.Errorf("child %q appears twice", c.Name())
		}
		seen[c] = true
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewNode("child")
	mustAdd(t, parent, child)

	if child.Parent() != parent {
		t.Error("child.Parent() should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	got, err := parent.ChildAt(0)
	if err != nil || got != child {
		t.Errorf("ChildAt(0) = %v, %v", got, err)
	}
}

func TestAddChildReparent(t *testing.T) {
	x := NewContainer("x")
	y := NewContainer("y")
	other := NewNode("other")
	child := NewNode("child")
	mustAdd(t, x, child)
	mustAdd(t, y, other)

	mustAdd(t, y, child)
	if x.NumChildren() != 0 || x.Contains(child) {
		t.Error("x should no longer hold child")
	}
	if idx, err := y.ChildIndex(child); err != nil || idx != 1 {
		t.Errorf("ChildIndex in y = %d, %v, want 1", idx, err)
	}
	if child.Parent() != y {
		t.Error("child.Parent() should be y")
	}
	assertOwnership(t, x)
	assertOwnership(t, y)
}

func TestAddChildAt(t *testing.T) {
	parent, _ := containerWith(t, "a", "c")
	if err := parent.AddChildAt(NewNode("b"), 1); err != nil {
		t.Fatal(err)
	}
	if err := parent.AddChildAt(NewNode("start"), 0); err != nil {
		t.Fatal(err)
	}
	if err := parent.AddChildAt(NewNode("end"), 4); err != nil {
		t.Fatal(err)
	}
	if got := childNames(parent); got != "start,a,b,c,end" {
		t.Errorf("order = %s", got)
	}
}

func TestAddChildAtOutOfRange(t *testing.T) {
	parent, _ := containerWith(t, "a", "b")
	child := NewNode("child")

	for _, index := range []int{5, 3, -1} {
		err := parent.AddChildAt(child, index)
		if !errors.Is(err, ErrRange) {
			t.Errorf("AddChildAt(%d): err = %v, want ErrRange", index, err)
		}
	}
	if got := childNames(parent); got != "a,b" {
		t.Errorf("order = %s, want a,b", got)
	}
	if child.Parent() != nil {
		t.Error("rejected child must stay detached")
	}
}

func TestAddChildAtOutOfRangeKeepsOldParent(t *testing.T) {
	from, kids := containerWith(t, "a")
	to := NewContainer("to")

	if err := to.AddChildAt(kids[0], 3); !errors.Is(err, ErrRange) {
		t.Fatalf("err = %v, want ErrRange", err)
	}
	if kids[0].Parent() != from || from.NumChildren() != 1 {
		t.Error("a failed reparent must not detach the child")
	}
}

func TestAddChildSameParentMovesToEnd(t *testing.T) {
	parent, kids := containerWith(t, "a", "b", "c")
	mustAdd(t, parent, kids[0])
	if got := childNames(parent); got != "b,c,a" {
		t.Errorf("order = %s, want b,c,a", got)
	}
	assertOwnership(t, parent)
}

func TestAddChildAtSameParent(t *testing.T) {
	parent, kids := containerWith(t, "a", "b", "c")
	if err := parent.AddChildAt(kids[2], 0); err != nil {
		t.Fatal(err)
	}
	if got := childNames(parent); got != "c,a,b" {
		t.Errorf("order = %s, want c,a,b", got)
	}
	if parent.NumChildren() != 3 {
		t.Errorf("NumChildren = %d, want 3", parent.NumChildren())
	}
}

func TestAddChildRejections(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	mustAdd(t, parent, child)
	mustAdd(t, child, grandchild)

	tests := []struct {
		name   string
		parent *Node
		child  *Node
	}{
		{"self", parent, parent},
		{"nil", parent, nil},
		{"cycle", grandchild, parent},
		{"direct cycle", child, parent},
		{"leaf parent", NewNode("leaf"), NewNode("x")},
		{"stage child", parent, NewStage()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parent.AddChild(tt.child)
			if !errors.Is(err, ErrArgument) {
				t.Fatalf("err = %v, want ErrArgument", err)
			}
		})
	}
	if childNames(parent) != "child" || childNames(child) != "grandchild" || grandchild.NumChildren() != 0 {
		t.Error("rejected calls must not change the tree")
	}
}

// --- Removal ---

func TestRemoveChild(t *testing.T) {
	parent, kids := containerWith(t, "a", "b", "c")
	got, err := parent.RemoveChild(kids[1])
	if err != nil || got != kids[1] {
		t.Fatalf("RemoveChild = %v, %v", got, err)
	}
	if kids[1].Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if got := childNames(parent); got != "a,c" {
		t.Errorf("order = %s, want a,c", got)
	}
}

func TestRemoveChildNotPresent(t *testing.T) {
	parent, _ := containerWith(t, "a")
	other, kids := containerWith(t, "x")

	for _, c := range []*Node{NewNode("stranger"), kids[0], nil} {
		if _, err := parent.RemoveChild(c); !errors.Is(err, ErrArgument) {
			t.Errorf("RemoveChild: err = %v, want ErrArgument", err)
		}
	}
	if parent.NumChildren() != 1 || other.NumChildren() != 1 {
		t.Error("failed removals must not change any list")
	}
}

func TestRemoveChildAtThenChildAt(t *testing.T) {
	parent, kids := containerWith(t, "a", "b", "c")

	removed, err := parent.RemoveChildAt(1)
	if err != nil || removed != kids[1] {
		t.Fatalf("RemoveChildAt(1) = %v, %v", removed, err)
	}
	if parent.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", parent.NumChildren())
	}
	next, err := parent.ChildAt(1)
	if err != nil || next != kids[2] {
		t.Errorf("ChildAt(1) = %v, %v, want c", next, err)
	}

	if _, err := parent.RemoveChildAt(1); err != nil {
		t.Fatal(err)
	}
	if _, err := parent.ChildAt(1); !errors.Is(err, ErrRange) {
		t.Errorf("ChildAt past the end: err = %v, want ErrRange", err)
	}
}

func TestRemoveChildAtOutOfRange(t *testing.T) {
	parent, _ := containerWith(t, "a", "b")
	for _, index := range []int{2, -1, 10} {
		if _, err := parent.RemoveChildAt(index); !errors.Is(err, ErrRange) {
			t.Errorf("RemoveChildAt(%d): err = %v, want ErrRange", index, err)
		}
	}
	if parent.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", parent.NumChildren())
	}
}

func TestRemoveChildren(t *testing.T) {
	tests := []struct {
		begin, end int
		want       string
	}{
		{0, 5, ""},
		{1, 3, "a,d,e"},
		{2, 2, "a,b,c,d,e"},
		{4, 5, "a,b,c,d"},
		{0, 1, "b,c,d,e"},
	}
	for _, tt := range tests {
		parent, kids := containerWith(t, "a", "b", "c", "d", "e")
		if err := parent.RemoveChildren(tt.begin, tt.end); err != nil {
			t.Fatalf("RemoveChildren(%d, %d): %v", tt.begin, tt.end, err)
		}
		if got := childNames(parent); got != tt.want {
			t.Errorf("RemoveChildren(%d, %d) left %q, want %q", tt.begin, tt.end, got, tt.want)
		}
		for i, c := range kids {
			inRange := i >= tt.begin && i < tt.end
			if inRange && c.Parent() != nil {
				t.Errorf("child %q should be detached", c.Name())
			}
			if !inRange && c.Parent() != parent {
				t.Errorf("child %q should stay attached", c.Name())
			}
		}
	}
}

func TestRemoveChildrenInvalidRange(t *testing.T) {
	for _, r := range [][2]int{{-1, 2}, {3, 2}, {0, 4}, {4, 4}} {
		parent, _ := containerWith(t, "a", "b", "c")
		if err := parent.RemoveChildren(r[0], r[1]); !errors.Is(err, ErrRange) {
			t.Errorf("RemoveChildren(%d, %d): err = %v, want ErrRange", r[0], r[1], err)
		}
		if parent.NumChildren() != 3 {
			t.Errorf("RemoveChildren(%d, %d) changed the list", r[0], r[1])
		}
	}
}

func TestRemoveAllChildren(t *testing.T) {
	parent, kids := containerWith(t, "a", "b", "c")
	parent.RemoveAllChildren()
	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
	for _, c := range kids {
		if c.Parent() != nil {
			t.Errorf("%q still has a parent", c.Name())
		}
	}
}

func TestRemoveFromParent(t *testing.T) {
	parent, kids := containerWith(t, "a", "b")
	kids[0].RemoveFromParent()
	if got := childNames(parent); got != "b" {
		t.Errorf("order = %s, want b", got)
	}
	// No-op when already detached.
	kids[0].RemoveFromParent()
}

func TestRemovedNodeStaysUsable(t *testing.T) {
	parent, kids := containerWith(t, "a")
	a := kids[0]
	a.SetPosition(5, 5)
	if _, err := parent.RemoveChild(a); err != nil {
		t.Fatal(err)
	}
	assertVec(t, "detached LocalToGlobal", a.LocalToGlobal(Vec2{}), Vec2{5, 5})
	other := NewContainer("other")
	mustAdd(t, other, a)
}

// --- Queries ---

func TestChildQueries(t *testing.T) {
	parent, kids := containerWith(t, "a", "b", "b")

	if parent.ChildByName("b") != kids[1] {
		t.Error("ChildByName should return the first match")
	}
	if parent.ChildByName("zzz") != nil {
		t.Error("ChildByName of a missing name should be nil")
	}
	if idx, err := parent.ChildIndex(kids[2]); err != nil || idx != 2 {
		t.Errorf("ChildIndex = %d, %v, want 2", idx, err)
	}
	if _, err := parent.ChildIndex(NewNode("x")); !errors.Is(err, ErrArgument) {
		t.Errorf("ChildIndex of a stranger: err = %v, want ErrArgument", err)
	}
	if !parent.Contains(kids[0]) || parent.Contains(NewNode("x")) || parent.Contains(parent) {
		t.Error("Contains reports direct children only")
	}
	if _, err := parent.ChildAt(-1); !errors.Is(err, ErrRange) {
		t.Errorf("ChildAt(-1): err = %v, want ErrRange", err)
	}
	if _, err := parent.ChildAt(3); !errors.Is(err, ErrRange) {
		t.Errorf("ChildAt(3): err = %v, want ErrRange", err)
	}
}

// --- Reordering ---

func TestSetChildIndex(t *testing.T) {
	tests := []struct {
		child string
		index int
		want  string
	}{
		{"a", 3, "b,c,d,a"},
		{"d", 0, "d,a,b,c"},
		{"b", 2, "a,c,b,d"},
		{"c", 1, "a,c,b,d"},
		{"b", 1, "a,b,c,d"},
	}
	for _, tt := range tests {
		parent, _ := containerWith(t, "a", "b", "c", "d")
		if err := parent.SetChildIndex(parent.ChildByName(tt.child), tt.index); err != nil {
			t.Fatal(err)
		}
		if got := childNames(parent); got != tt.want {
			t.Errorf("SetChildIndex(%s, %d) = %s, want %s", tt.child, tt.index, got, tt.want)
		}
		assertOwnership(t, parent)
	}
}

func TestSetChildIndexErrors(t *testing.T) {
	parent, kids := containerWith(t, "a", "b")
	if err := parent.SetChildIndex(kids[0], 2); !errors.Is(err, ErrRange) {
		t.Errorf("err = %v, want ErrRange", err)
	}
	if err := parent.SetChildIndex(NewNode("x"), 0); !errors.Is(err, ErrArgument) {
		t.Errorf("err = %v, want ErrArgument", err)
	}
	if got := childNames(parent); got != "a,b" {
		t.Errorf("order = %s, want a,b", got)
	}
}

func TestSwapChildren(t *testing.T) {
	parent, kids := containerWith(t, "a", "b", "c")
	if err := parent.SwapChildren(kids[0], kids[2]); err != nil {
		t.Fatal(err)
	}
	if got := childNames(parent); got != "c,b,a" {
		t.Errorf("order = %s, want c,b,a", got)
	}
	if err := parent.SwapChildren(kids[0], NewNode("x")); !errors.Is(err, ErrArgument) {
		t.Errorf("err = %v, want ErrArgument", err)
	}
}

func TestSwapChildrenAt(t *testing.T) {
	parent, _ := containerWith(t, "a", "b", "c")
	if err := parent.SwapChildrenAt(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := parent.SwapChildrenAt(2, 2); err != nil {
		t.Fatal(err)
	}
	if got := childNames(parent); got != "b,a,c" {
		t.Errorf("order = %s, want b,a,c", got)
	}
	if err := parent.SwapChildrenAt(0, 3); !errors.Is(err, ErrRange) {
		t.Errorf("err = %v, want ErrRange", err)
	}
	if err := parent.SwapChildrenAt(-1, 0); !errors.Is(err, ErrRange) {
		t.Errorf("err = %v, want ErrRange", err)
	}
	assertOwnership(t, parent)
}

// --- Benchmarks ---

func BenchmarkAddRemoveChild(b *testing.B) {
	parent := NewContainer("parent")
	for i := 0; i < 100; i++ {
		_ = parent.AddChild(NewNode("c"))
	}
	child := NewNode("child")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parent.AddChildAt(child, 50)
		_, _ = parent.RemoveChild(child)
	}
}
