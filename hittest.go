package shumway

// --- Shape collaborator ---

// Shape supplies the vector geometry of a node. Coordinates are in the
// node's own space.
type Shape interface {
	// SelfBounds returns the bounds of all sub-paths including stroke
	// widths. ok is false when the shape has no geometry.
	SelfBounds() (r Rect, ok bool)
	// SubPaths returns the drawable sub-paths in paint order.
	SubPaths() []SubPath
}

// SubPath is one independently styled piece of a Shape.
type SubPath interface {
	// HitTestFill reports whether (x, y) lies in the filled region. Unfilled
	// sub-paths always report false.
	HitTestFill(x, y float64) bool
	// Stroked reports whether the sub-path has a line style.
	Stroked() bool
	// StrokeRegion returns the outline of the stroke. Implementations build
	// it on first use and cache it until the sub-path changes.
	StrokeRegion() StrokeRegion
}

// StrokeRegion is the area covered by a stroked outline.
type StrokeRegion interface {
	HitTest(x, y float64) bool
}

// shapeContains tests (lx, ly) against every sub-path's fill, falling back to
// the stroke outline for stroked sub-paths.
func shapeContains(s Shape, lx, ly float64) bool {
	for _, sp := range s.SubPaths() {
		if sp.HitTestFill(lx, ly) {
			return true
		}
		if !sp.Stroked() {
			continue
		}
		if region := sp.StrokeRegion(); region != nil && region.HitTest(lx, ly) {
			return true
		}
	}
	return false
}

// --- Hit testing ---

// HitTestPoint reports whether the global point (x, y) hits this node.
//
// With shapeFlag false the point is tested against the node's natural bounds.
// With shapeFlag true it is tested against the shape's fills and strokes and
// then, recursively, against every descendant. A node whose matrix chain is
// singular is never hit.
func (n *Node) HitTestPoint(x, y float64, shapeFlag bool) bool {
	return n.hitTest(x, y, shapeFlag, false)
}

// HitTestSelf is a shape-accurate HitTestPoint that ignores children.
func (n *Node) HitTestSelf(x, y float64) bool {
	return n.hitTest(x, y, true, true)
}

func (n *Node) hitTest(x, y float64, shapeFlag, ignoreChildren bool) bool {
	lp, err := n.GlobalToLocal(Vec2{x, y})
	if err != nil {
		return false
	}
	if !shapeFlag {
		return n.Bounds(n).Contains(lp.X, lp.Y)
	}
	if n.shape != nil && shapeContains(n.shape, lp.X, lp.Y) {
		return true
	}
	if ignoreChildren {
		return false
	}
	for _, child := range n.children {
		if child.hitTest(x, y, true, false) {
			return true
		}
	}
	return false
}

// HitTestObject reports whether the global bounds of n and other overlap
// with positive area.
func (n *Node) HitTestObject(other *Node) bool {
	if other == nil {
		return false
	}
	return n.Bounds(nil).Intersects(other.Bounds(nil))
}

// ObjectsUnderPoint returns every descendant whose own shape is hit by the
// global point p, in painter order (back to front).
func (n *Node) ObjectsUnderPoint(p Vec2) []*Node {
	return n.collectUnderPoint(p, nil)
}

func (n *Node) collectUnderPoint(p Vec2, buf []*Node) []*Node {
	for _, child := range n.children {
		if child.shape != nil && child.hitTest(p.X, p.Y, true, true) {
			buf = append(buf, child)
		}
		buf = child.collectUnderPoint(p, buf)
	}
	return buf
}
