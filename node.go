package shumway

import "strconv"

// nodeIDCounter is a plain counter (no atomic; the display list is
// single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is one element of the display list. A single struct serves leaves,
// containers and the stage; Type decides which tree operations apply.
//
// The parent pointer is a back-reference only. A container owns its
// children; a node removed from its container stays valid and independent.
type Node struct {
	ID   uint32
	Type NodeType

	name string

	// Hierarchy
	parent   *Node
	children []*Node

	// Transform
	x, y           float64
	rotation       float64
	scaleX, scaleY float64
	matrix         Matrix
	mode           TransformMode
	colorTransform ColorTransform

	// Presentation
	visible          bool
	alpha            float64
	cacheAsBitmap    bool
	opaqueBackground *Color

	// Geometry sources
	bbox  *Rect
	shape Shape

	// Caches. envelope is the natural bounds in the node's own space;
	// bounds is the envelope mapped into boundsTarget's space.
	envelope      Rect
	envelopeValid bool
	bounds        Rect
	boundsTarget  *Node
	boundsValid   bool

	// Pending redraw area in global space, consumed by the renderer.
	redraw      Rect
	redrawValid bool

	// Metadata
	UserData any
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.scaleX = 1
	n.scaleY = 1
	n.matrix = IdentityMatrix
	n.colorTransform = IdentityColorTransform
	n.alpha = 1
	n.visible = true
}

// NewNode creates a leaf node with no shape and no children.
func NewNode(name string) *Node {
	n := &Node{name: name, Type: NodeTypeLeaf}
	nodeDefaults(n)
	return n
}

// NewShape creates a leaf node whose geometry comes from shape.
func NewShape(name string, shape Shape) *Node {
	n := NewNode(name)
	n.SetShape(shape)
	return n
}

// NewContainer creates a node that can hold children.
func NewContainer(name string) *Node {
	n := &Node{name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewStage creates the top-level container. Its space is global space and
// its own matrix is never applied during coordinate conversion.
func NewStage() *Node {
	n := &Node{name: "stage", Type: NodeTypeStage}
	nodeDefaults(n)
	return n
}

// Symbol is the seed a loader supplies when instantiating a display object
// from an asset library. It is copied once; later changes to the Symbol do
// not affect the instance.
type Symbol struct {
	Name string
	// BBox, when set, is the authored bounding box used instead of the
	// union of children's bounds.
	BBox     *Rect
	Shape    Shape
	Children []*Node
}

// NewSymbolInstance creates a container seeded from sym. Children that are
// already attached elsewhere are moved into the new instance. The child list
// is checked as a whole first: a nil entry, a stage or a node listed twice
// fails the call, and no child is moved.
func NewSymbolInstance(sym Symbol) (*Node, error) {
	n := NewContainer(sym.Name)
	seen := make(map[*Node]bool, len(sym.Children))
	for _, child := range sym.Children {
		if err := n.checkAttach("NewSymbolInstance", child); err != nil {
			return nil, err
		}
		if seen[child] {
			return nil, argumentError("NewSymbolInstance", "child "+strconv.Quote(child.name)+" listed twice")
		}
		seen[child] = true
	}
	if sym.BBox != nil {
		bbox := *sym.BBox
		n.bbox = &bbox
	}
	if sym.Shape != nil {
		n.SetShape(sym.Shape)
	}
	for _, child := range sym.Children {
		if err := n.AddChild(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// --- Presentation attributes ---

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// SetName sets the node's name.
func (n *Node) SetName(name string) { n.name = name }

// Visible reports whether the node is rendered.
func (n *Node) Visible() bool { return n.visible }

// SetVisible shows or hides the node.
func (n *Node) SetVisible(v bool) {
	if n.visible == v {
		return
	}
	n.markDirty()
	n.visible = v
}

// Alpha returns the node's opacity in [0, 1].
func (n *Node) Alpha() float64 { return n.alpha }

// SetAlpha sets the node's opacity.
func (n *Node) SetAlpha(a float64) {
	n.alpha = a
}

// CacheAsBitmap reports whether the renderer may cache this subtree.
func (n *Node) CacheAsBitmap() bool { return n.cacheAsBitmap }

// SetCacheAsBitmap sets the bitmap caching hint.
func (n *Node) SetCacheAsBitmap(v bool) { n.cacheAsBitmap = v }

// OpaqueBackground returns the background color, or nil when transparent.
func (n *Node) OpaqueBackground() *Color { return n.opaqueBackground }

// SetOpaqueBackground sets the background color; nil clears it.
func (n *Node) SetOpaqueBackground(c *Color) { n.opaqueBackground = c }

// Shape returns the node's shape collaborator, or nil.
func (n *Node) Shape() Shape { return n.shape }

// SetShape attaches a shape collaborator; nil detaches it.
func (n *Node) SetShape(s Shape) {
	n.markDirty()
	if g, ok := n.shape.(*Graphics); ok {
		g.detach(n)
	}
	n.shape = s
	if g, ok := s.(*Graphics); ok {
		g.attach(n)
	}
	n.invalidateEnvelope()
}

// SelfBBox returns the authored bounding box, if one was seeded.
func (n *Node) SelfBBox() (Rect, bool) {
	if n.bbox == nil {
		return Rect{}, false
	}
	return *n.bbox, true
}

// --- Lookups ---

// Parent returns the containing node, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// Root returns the topmost ancestor below the stage, or n itself when it has
// no parent. It is resolved by walking the ancestor chain on each call.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil && r.parent.Type != NodeTypeStage {
		r = r.parent
	}
	return r
}

// Stage returns the stage this node is attached under, or nil.
func (n *Node) Stage() *Node {
	for p := n; p != nil; p = p.parent {
		if p.Type == NodeTypeStage {
			return p
		}
	}
	return nil
}

// isContainer reports whether n may hold children.
func (n *Node) isContainer() bool {
	return n.Type == NodeTypeContainer || n.Type == NodeTypeStage
}
