package shumway

// BlendMode selects how a node composites over what lies beneath it. Only
// BlendNormal is supported.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendAdd
	BlendErase
)

// Filter is an effect applied when a node is rendered.
type Filter interface {
	FilterName() string
}

// SetWidth would rescale the node to a global width. Not supported.
func (n *Node) SetWidth(w float64) error { return notImplemented("SetWidth") }

// SetHeight would rescale the node to a global height. Not supported.
func (n *Node) SetHeight(h float64) error { return notImplemented("SetHeight") }

// SetFilters is not supported.
func (n *Node) SetFilters(filters []Filter) error { return notImplemented("SetFilters") }

// SetMask is not supported.
func (n *Node) SetMask(mask *Node) error { return notImplemented("SetMask") }

// SetScrollRect is not supported.
func (n *Node) SetScrollRect(r Rect) error { return notImplemented("SetScrollRect") }

// SetScale9Grid is not supported.
func (n *Node) SetScale9Grid(r Rect) error { return notImplemented("SetScale9Grid") }

// BlendMode returns BlendNormal.
func (n *Node) BlendMode() BlendMode { return BlendNormal }

// SetBlendMode accepts only BlendNormal.
func (n *Node) SetBlendMode(m BlendMode) error {
	if m != BlendNormal {
		return notImplemented("SetBlendMode")
	}
	return nil
}

// Rect would return bounds excluding strokes. Not supported; use Bounds.
func (n *Node) Rect(target *Node) (Rect, error) {
	return Rect{}, notImplemented("Rect")
}
