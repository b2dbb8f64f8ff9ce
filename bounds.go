package shumway

// Bounds returns the axis-aligned bounds of this node and its descendants in
// the space of target. A nil target means global space and target == n
// means the node's own space before its matrix is applied.
//
// Results are cached per target. Rotated content is enclosed, not rotated:
// the four corners of the natural bounds are mapped and their bounding box
// is returned. If target is unrelated to n and its matrix chain is singular,
// the zero Rect is returned.
func (n *Node) Bounds(target *Node) Rect {
	if n.boundsValid && n.boundsTarget == target {
		return n.bounds
	}
	natural := n.naturalBounds()
	if target == n {
		n.bounds, n.boundsTarget, n.boundsValid = natural, target, true
		return natural
	}
	var acc boundsAccumulator
	for _, p := range rectCorners(natural) {
		q, err := n.LocalToSpace(p, target)
		if err != nil {
			return Rect{}
		}
		acc.addPoint(q.X, q.Y)
	}
	r := acc.rect()
	// Only spaces on the ancestor chain are tracked by invalidation.
	if target == nil || n.hasAncestor(target) {
		n.bounds, n.boundsTarget, n.boundsValid = r, target, true
	}
	return r
}

// naturalBounds returns the envelope in the node's own space: the authored
// bbox if present, otherwise the union of the children's bounds, in either
// case extended by the shape's self bounds.
func (n *Node) naturalBounds() Rect {
	if n.envelopeValid {
		return n.envelope
	}
	var acc boundsAccumulator
	if n.bbox != nil {
		acc.addRect(*n.bbox)
	} else {
		for _, child := range n.children {
			acc.addRect(child.Bounds(n))
		}
	}
	if n.shape != nil {
		if sb, ok := n.shape.SelfBounds(); ok {
			acc.addRect(sb)
		}
	}
	n.envelope = acc.rect()
	n.envelopeValid = true
	return n.envelope
}

// Width returns the width of the node's global bounds.
func (n *Node) Width() float64 { return n.Bounds(nil).Width }

// Height returns the height of the node's global bounds.
func (n *Node) Height() float64 { return n.Bounds(nil).Height }

// TakeRedrawRegion returns the accumulated global area that changed since the
// last call and clears it. The second result is false when nothing changed.
func (n *Node) TakeRedrawRegion() (Rect, bool) {
	r, ok := n.redraw, n.redrawValid
	n.redraw = Rect{}
	n.redrawValid = false
	return r, ok
}

// InvalidateShape tells the node its Shape changed. Graphics does this on its
// own; other Shape implementations must call it after every change.
func (n *Node) InvalidateShape() {
	n.markDirty()
	n.invalidateEnvelope()
}

// --- Invalidation ---

// markDirty records the node's current global bounds as needing a redraw and
// drops its bounds cache. Call it before the geometry changes.
func (n *Node) markDirty() {
	b := n.Bounds(nil)
	if n.redrawValid {
		n.redraw = n.redraw.Union(b)
	} else {
		n.redraw = b
		n.redrawValid = true
	}
	n.boundsValid = false
}

// invalidateEnvelope drops the natural bounds of n and every ancestor, since
// each ancestor's envelope is built from its children.
func (n *Node) invalidateEnvelope() {
	for p := n; p != nil; p = p.parent {
		p.envelopeValid = false
		p.boundsValid = false
	}
}

// transformChanged runs after n's matrix changed. Descendants may hold bounds
// mapped through that matrix, and the parent's envelope contains n.
func (n *Node) transformChanged() {
	if globalDebug {
		debugCheckSingular(n)
	}
	clearSubtreeBounds(n)
	if n.parent != nil {
		n.parent.invalidateEnvelope()
	}
}

// clearSubtreeBounds drops the target-space bounds of node and all its
// descendants. Natural bounds stay valid.
func clearSubtreeBounds(node *Node) {
	node.boundsValid = false
	for _, child := range node.children {
		clearSubtreeBounds(child)
	}
}
