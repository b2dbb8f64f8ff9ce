package shumway

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for points and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height are never
// negative for rectangles produced by this package.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns X + Width.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The lower edges are inside and the upper edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersection returns the overlapping region of r and other. The result has
// zero size when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	w := min(r.Right(), other.Right()) - x
	h := min(r.Bottom(), other.Bottom()) - y
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Intersects reports whether r and other overlap with positive area.
// Rectangles sharing only an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	w := min(r.Right(), other.Right()) - max(r.X, other.X)
	h := min(r.Bottom(), other.Bottom()) - max(r.Y, other.Y)
	return w > 0 && h > 0
}

// Union returns the smallest rectangle containing both r and other.
// Degenerate rectangles still contribute their position.
func (r Rect) Union(other Rect) Rect {
	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.Right(), other.Right())
	maxY := max(r.Bottom(), other.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// boundsAccumulator grows an envelope point by point or rect by rect.
type boundsAccumulator struct {
	minX, minY, maxX, maxY float64
	any                    bool
}

func (b *boundsAccumulator) addPoint(x, y float64) {
	if !b.any {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.any = true
		return
	}
	b.minX = min(b.minX, x)
	b.maxX = max(b.maxX, x)
	b.minY = min(b.minY, y)
	b.maxY = max(b.maxY, y)
}

func (b *boundsAccumulator) addRect(r Rect) {
	b.addPoint(r.X, r.Y)
	b.addPoint(r.Right(), r.Bottom())
}

func (b *boundsAccumulator) rect() Rect {
	if !b.any {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}

// NodeType distinguishes structural behavior for a Node.
type NodeType uint8

const (
	NodeTypeLeaf      NodeType = iota // plain display object, cannot hold children
	NodeTypeContainer                 // holds an ordered child list
	NodeTypeStage                     // top-level container defining global space
)

// String returns a short lowercase name for the type.
func (t NodeType) String() string {
	switch t {
	case NodeTypeLeaf:
		return "leaf"
	case NodeTypeContainer:
		return "container"
	case NodeTypeStage:
		return "stage"
	default:
		return "unknown"
	}
}
