package shumway

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// Matrix is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// IdentityMatrix is the identity affine matrix.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// matrixFromScalars derives a node matrix from its scalar attributes.
// Rotation is in degrees. Scale is applied first, then rotation, then the
// translation by (x, y).
func matrixFromScalars(x, y, rotation, scaleX, scaleY float64) Matrix {
	sin, cos := math.Sincos(rotation * math.Pi / 180)
	return Matrix{
		cos * scaleX,
		sin * scaleX,
		-sin * scaleY,
		cos * scaleY,
		x,
		y,
	}
}

// Multiply returns m * other, which applies other first and then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of m. The second result is false when m is
// singular, in which case the returned matrix must not be used.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// Apply maps p through m.
func (m Matrix) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// TransformRect maps the four corners of r through m and returns their
// axis-aligned bounding box.
func (m Matrix) TransformRect(r Rect) Rect {
	var acc boundsAccumulator
	for _, p := range rectCorners(r) {
		q := m.Apply(p)
		acc.addPoint(q.X, q.Y)
	}
	return acc.rect()
}

// IsIdentity reports whether m is the identity matrix within a small epsilon.
func (m Matrix) IsIdentity() bool {
	const eps = 1e-10
	return math.Abs(m[0]-1) < eps &&
		math.Abs(m[1]) < eps &&
		math.Abs(m[2]) < eps &&
		math.Abs(m[3]-1) < eps &&
		math.Abs(m[4]) < eps &&
		math.Abs(m[5]) < eps
}

// GeoM converts m to an ebiten.GeoM for renderers drawing with Ebitengine.
func (m Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

func rectCorners(r Rect) [4]Vec2 {
	return [4]Vec2{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Bottom()},
		{r.X, r.Bottom()},
	}
}

// ColorTransform adjusts the color channels of a node when rendered.
// Multipliers scale each channel; offsets are added afterwards in the
// 0-255 range.
type ColorTransform struct {
	RedMultiplier, GreenMultiplier, BlueMultiplier, AlphaMultiplier float64
	RedOffset, GreenOffset, BlueOffset, AlphaOffset                 float64
}

// IdentityColorTransform leaves colors unchanged.
var IdentityColorTransform = ColorTransform{
	RedMultiplier: 1, GreenMultiplier: 1, BlueMultiplier: 1, AlphaMultiplier: 1,
}

// ColorM converts c to a colorm.ColorM for renderers drawing with Ebitengine.
func (c ColorTransform) ColorM() colorm.ColorM {
	var cm colorm.ColorM
	cm.Scale(c.RedMultiplier, c.GreenMultiplier, c.BlueMultiplier, c.AlphaMultiplier)
	cm.Translate(c.RedOffset/255, c.GreenOffset/255, c.BlueOffset/255, c.AlphaOffset/255)
	return cm
}

// Transform is the composite transform object a node exposes and accepts.
type Transform struct {
	Matrix         Matrix
	ColorTransform ColorTransform
}

// TransformMode records which setter last defined a node's matrix.
type TransformMode uint8

const (
	// TransformScalarDriven means the matrix is derived from X, Y, Rotation,
	// ScaleX and ScaleY.
	TransformScalarDriven TransformMode = iota
	// TransformMatrixOverridden means the matrix was assigned directly with
	// SetTransform and the scalar attributes are not authoritative.
	TransformMatrixOverridden
)

// --- Scalar transform attributes ---

// X returns the node's horizontal position in its parent's space.
func (n *Node) X() float64 { return n.x }

// Y returns the node's vertical position in its parent's space.
func (n *Node) Y() float64 { return n.y }

// Rotation returns the node's rotation in degrees.
func (n *Node) Rotation() float64 { return n.rotation }

// ScaleX returns the node's horizontal scale factor.
func (n *Node) ScaleX() float64 { return n.scaleX }

// ScaleY returns the node's vertical scale factor.
func (n *Node) ScaleY() float64 { return n.scaleY }

// SetX sets the node's horizontal position.
func (n *Node) SetX(x float64) {
	n.markDirty()
	n.x = x
	n.updateMatrix()
}

// SetY sets the node's vertical position.
func (n *Node) SetY(y float64) {
	n.markDirty()
	n.y = y
	n.updateMatrix()
}

// SetPosition sets X and Y together.
func (n *Node) SetPosition(x, y float64) {
	n.markDirty()
	n.x = x
	n.y = y
	n.updateMatrix()
}

// SetRotation sets the node's rotation in degrees.
func (n *Node) SetRotation(deg float64) {
	n.markDirty()
	n.rotation = deg
	n.updateMatrix()
}

// SetScaleX sets the node's horizontal scale factor.
func (n *Node) SetScaleX(sx float64) {
	n.markDirty()
	n.scaleX = sx
	n.updateMatrix()
}

// SetScaleY sets the node's vertical scale factor.
func (n *Node) SetScaleY(sy float64) {
	n.markDirty()
	n.scaleY = sy
	n.updateMatrix()
}

// SetScale sets ScaleX and ScaleY together.
func (n *Node) SetScale(sx, sy float64) {
	n.markDirty()
	n.scaleX = sx
	n.scaleY = sy
	n.updateMatrix()
}

// updateMatrix resynchronizes the matrix from the scalar attributes and
// leaves matrix-overridden mode.
func (n *Node) updateMatrix() {
	n.matrix = matrixFromScalars(n.x, n.y, n.rotation, n.scaleX, n.scaleY)
	n.mode = TransformScalarDriven
	n.transformChanged()
}

// --- Composite transform ---

// Matrix returns the node's current local matrix.
func (n *Node) Matrix() Matrix { return n.matrix }

// TransformMode reports whether the matrix is derived from scalars or was
// assigned directly.
func (n *Node) TransformMode() TransformMode { return n.mode }

// Transform returns the node's matrix and color transform.
func (n *Node) Transform() Transform {
	return Transform{Matrix: n.matrix, ColorTransform: n.colorTransform}
}

// SetTransform assigns the matrix and color transform directly. The scalar
// attributes keep their old values and stop describing the matrix until one
// of them is set again.
func (n *Node) SetTransform(t Transform) {
	n.markDirty()
	n.matrix = t.Matrix
	n.colorTransform = t.ColorTransform
	n.mode = TransformMatrixOverridden
	n.transformChanged()
}

// ColorTransform returns the node's color transform.
func (n *Node) ColorTransform() ColorTransform { return n.colorTransform }

// ConcatenatedMatrix returns the matrix mapping this node's local space to
// global space.
func (n *Node) ConcatenatedMatrix() Matrix {
	if n.Type == NodeTypeStage {
		return IdentityMatrix
	}
	m := n.matrix
	for p := n; !p.walkEndsAt(nil); p = p.parent {
		m = p.parent.matrix.Multiply(m)
	}
	return m
}

// --- Coordinate conversion ---

// walkEndsAt reports whether an upward walk from n stops before the parent's
// matrix is applied. The stage and the target space are never applied.
func (n *Node) walkEndsAt(target *Node) bool {
	p := n.parent
	return p == nil || p == target || p.Type == NodeTypeStage
}

// hasAncestor reports whether candidate is a strict ancestor of n.
func (n *Node) hasAncestor(candidate *Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// applyForward maps p from n's local space toward target, applying n's
// matrix first and then each ancestor's.
func (n *Node) applyForward(p Vec2, target *Node) Vec2 {
	if n == target || n.Type == NodeTypeStage {
		return p
	}
	for m := n; ; m = m.parent {
		p = m.matrix.Apply(p)
		if m.walkEndsAt(target) {
			return p
		}
	}
}

// applyInverse maps p from target's space into n's local space, un-applying
// the outermost ancestor's matrix first.
func (n *Node) applyInverse(p Vec2, target *Node) (Vec2, error) {
	if n == target || n.Type == NodeTypeStage {
		return p, nil
	}
	if !n.walkEndsAt(target) {
		var err error
		if p, err = n.parent.applyInverse(p, target); err != nil {
			return Vec2{}, err
		}
	}
	inv, ok := n.matrix.Invert()
	if !ok {
		return Vec2{}, fmt.Errorf("shumway: node %q: %w", n.name, ErrDegenerateTransform)
	}
	return inv.Apply(p), nil
}

// LocalToGlobal converts a point in this node's space to global space.
func (n *Node) LocalToGlobal(p Vec2) Vec2 {
	return n.applyForward(p, nil)
}

// GlobalToLocal converts a global point to this node's space. It fails with
// ErrDegenerateTransform when any matrix on the way has a zero determinant.
func (n *Node) GlobalToLocal(p Vec2) (Vec2, error) {
	return n.applyInverse(p, nil)
}

// LocalToSpace converts a point in this node's space to the space of target.
// A nil target means global space. Targets that are not ancestors are
// reached through global space.
func (n *Node) LocalToSpace(p Vec2, target *Node) (Vec2, error) {
	if target == nil || target == n || n.hasAncestor(target) {
		return n.applyForward(p, target), nil
	}
	return target.applyInverse(n.applyForward(p, nil), nil)
}

// SpaceToLocal converts a point in target's space to this node's space.
// It is the inverse of LocalToSpace.
func (n *Node) SpaceToLocal(p Vec2, target *Node) (Vec2, error) {
	if target == nil || target == n || n.hasAncestor(target) {
		return n.applyInverse(p, target)
	}
	return n.applyInverse(target.applyForward(p, nil), nil)
}
