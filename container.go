package shumway

import "strconv"

// --- Tree manipulation ---

// AddChild appends child to this container.
// If child already has a parent, it is removed from that parent first.
func (n *Node) AddChild(child *Node) error {
	return n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at index, which must lie in [0, NumChildren()].
// If child already has a parent, it is removed from that parent first. When
// that parent is n itself, index is applied to the shortened list.
func (n *Node) AddChildAt(child *Node, index int) error {
	if err := n.checkAttach("AddChildAt", child); err != nil {
		return err
	}
	if index < 0 || index > len(n.children) {
		return rangeError("AddChildAt", index, len(n.children))
	}
	if child.parent == n && index == len(n.children) {
		index--
	}
	if child.parent != nil {
		child.parent.detachChild(child)
	}
	n.markDirty()
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childAttached(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	return nil
}

// checkAttach validates child before any mutation happens.
func (n *Node) checkAttach(op string, child *Node) error {
	if !n.isContainer() {
		return argumentError(op, "node "+strconv.Quote(n.name)+" is not a container")
	}
	if child == nil {
		return argumentError(op, "nil child")
	}
	if child == n {
		return argumentError(op, "cannot add a node to itself")
	}
	if child.Type == NodeTypeStage {
		return argumentError(op, "the stage cannot be a child")
	}
	if n.hasAncestor(child) {
		return argumentError(op, "adding "+strconv.Quote(child.name)+" would create a cycle")
	}
	return nil
}

// RemoveChild detaches child from this container and returns it.
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	index := n.indexOf(child)
	if index < 0 {
		return nil, argumentError("RemoveChild", "node is not a child")
	}
	return n.RemoveChildAt(index)
}

// RemoveChildAt removes and returns the child at index, which must lie in
// [0, NumChildren()).
func (n *Node) RemoveChildAt(index int) (*Node, error) {
	if index < 0 || index >= len(n.children) {
		return nil, rangeError("RemoveChildAt", index, len(n.children)-1)
	}
	child := n.children[index]
	n.markDirty()
	n.removeAt(index)
	child.parent = nil
	n.childDetached(child)
	return child, nil
}

// RemoveChildren removes the children in the half-open range [begin, end).
// Both bounds must lie in [0, NumChildren()] and end must not precede begin.
func (n *Node) RemoveChildren(begin, end int) error {
	num := len(n.children)
	if begin < 0 || begin > num {
		return rangeError("RemoveChildren", begin, num)
	}
	if end < begin || end > num {
		return rangeError("RemoveChildren", end, num)
	}
	if begin == end {
		return nil
	}
	n.markDirty()
	removed := make([]*Node, end-begin)
	copy(removed, n.children[begin:end])
	copy(n.children[begin:], n.children[end:])
	for i := num - (end - begin); i < num; i++ {
		n.children[i] = nil
	}
	n.children = n.children[:num-(end-begin)]
	for _, child := range removed {
		child.parent = nil
		clearSubtreeBounds(child)
	}
	n.invalidateEnvelope()
	return nil
}

// RemoveAllChildren detaches every child. Children stay valid.
func (n *Node) RemoveAllChildren() {
	_ = n.RemoveChildren(0, len(n.children))
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	_, _ = n.parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at index, which must lie in [0, NumChildren()).
func (n *Node) ChildAt(index int) (*Node, error) {
	if index < 0 || index >= len(n.children) {
		return nil, rangeError("ChildAt", index, len(n.children)-1)
	}
	return n.children[index], nil
}

// ChildByName returns the first child with the given name, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// ChildIndex returns the position of child in this container.
func (n *Node) ChildIndex(child *Node) (int, error) {
	index := n.indexOf(child)
	if index < 0 {
		return -1, argumentError("ChildIndex", "node is not a child")
	}
	return index, nil
}

// Contains reports whether child is a direct child of this container.
func (n *Node) Contains(child *Node) bool {
	return n.indexOf(child) >= 0
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) error {
	oldIndex := n.indexOf(child)
	if oldIndex < 0 {
		return argumentError("SetChildIndex", "node is not a child")
	}
	if index < 0 || index >= len(n.children) {
		return rangeError("SetChildIndex", index, len(n.children)-1)
	}
	if oldIndex == index {
		return nil
	}
	n.markDirty()
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.childrenReordered()
	return nil
}

// SwapChildren exchanges the positions of two children.
func (n *Node) SwapChildren(child1, child2 *Node) error {
	i1 := n.indexOf(child1)
	i2 := n.indexOf(child2)
	if i1 < 0 || i2 < 0 {
		return argumentError("SwapChildren", "node is not a child")
	}
	return n.SwapChildrenAt(i1, i2)
}

// SwapChildrenAt exchanges the children at two indices in [0, NumChildren()).
func (n *Node) SwapChildrenAt(index1, index2 int) error {
	num := len(n.children)
	if index1 < 0 || index1 >= num {
		return rangeError("SwapChildrenAt", index1, num-1)
	}
	if index2 < 0 || index2 >= num {
		return rangeError("SwapChildrenAt", index2, num-1)
	}
	if index1 == index2 {
		return nil
	}
	n.markDirty()
	n.children[index1], n.children[index2] = n.children[index2], n.children[index1]
	n.childrenReordered()
	return nil
}

// MouseChildren reports whether children receive pointer hits. Always true.
func (n *Node) MouseChildren() bool { return true }

// SetMouseChildren only accepts true; disabling child hits is not supported.
func (n *Node) SetMouseChildren(v bool) error {
	if !v {
		return notImplemented("SetMouseChildren")
	}
	return nil
}

// TabChildren reports whether children take part in tab order. Always true.
func (n *Node) TabChildren() bool { return true }

// SetTabChildren only accepts true; tab order control is not supported.
func (n *Node) SetTabChildren(v bool) error {
	if !v {
		return notImplemented("SetTabChildren")
	}
	return nil
}

// --- Helpers ---

func (n *Node) indexOf(child *Node) int {
	if child == nil || child.parent != n {
		return -1
	}
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeAt removes the entry at index without touching the child.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeAt(index int) {
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}

// detachChild unlinks child from n as the first step of a reparent.
func (n *Node) detachChild(child *Node) {
	index := n.indexOf(child)
	if index < 0 {
		return
	}
	n.markDirty()
	n.removeAt(index)
	child.parent = nil
	n.childDetached(child)
}

// childAttached and childDetached run after the list changed. The child's
// cached bounds may target spaces above its old or new parent.
func (n *Node) childAttached(child *Node) {
	clearSubtreeBounds(child)
	n.invalidateEnvelope()
}

func (n *Node) childDetached(child *Node) {
	clearSubtreeBounds(child)
	n.invalidateEnvelope()
}

func (n *Node) childrenReordered() {
	n.invalidateEnvelope()
}
