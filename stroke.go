package shumway

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hairlineWidth is the hit-test width of a zero-width stroke.
const hairlineWidth = 1

type triangle [3]Vec2

// strokeRegion is a stroke outline triangulated by ebiten's vector stroker.
type strokeRegion struct {
	tris []triangle
	aabb Rect
}

func newStrokeRegion(ops []pathOp, style LineStyle) *strokeRegion {
	var vp vector.Path
	for _, op := range ops {
		switch op.kind {
		case opMove:
			vp.MoveTo(float32(op.pts[0].X), float32(op.pts[0].Y))
		case opLine:
			vp.LineTo(float32(op.pts[0].X), float32(op.pts[0].Y))
		case opQuad:
			vp.QuadTo(float32(op.pts[0].X), float32(op.pts[0].Y),
				float32(op.pts[1].X), float32(op.pts[1].Y))
		case opCubic:
			vp.CubicTo(float32(op.pts[0].X), float32(op.pts[0].Y),
				float32(op.pts[1].X), float32(op.pts[1].Y),
				float32(op.pts[2].X), float32(op.pts[2].Y))
		case opClose:
			vp.Close()
		}
	}

	verts, indices := vp.AppendVerticesAndIndicesForStroke(nil, nil, strokeOptions(style))
	r := &strokeRegion{aabb: computeVertexAABB(verts)}
	r.tris = make([]triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]]
		r.tris = append(r.tris, triangle{
			{float64(a.DstX), float64(a.DstY)},
			{float64(b.DstX), float64(b.DstY)},
			{float64(c.DstX), float64(c.DstY)},
		})
	}
	return r
}

func strokeOptions(style LineStyle) *vector.StrokeOptions {
	width := style.Width
	if width <= 0 {
		width = hairlineWidth
	}
	opts := &vector.StrokeOptions{
		Width:      float32(width),
		MiterLimit: float32(style.MiterLimit),
	}
	switch style.Cap {
	case LineCapButt:
		opts.LineCap = vector.LineCapButt
	case LineCapRound:
		opts.LineCap = vector.LineCapRound
	case LineCapSquare:
		opts.LineCap = vector.LineCapSquare
	}
	switch style.Join {
	case LineJoinMiter:
		opts.LineJoin = vector.LineJoinMiter
	case LineJoinRound:
		opts.LineJoin = vector.LineJoinRound
	case LineJoinBevel:
		opts.LineJoin = vector.LineJoinBevel
	}
	return opts
}

// HitTest reports whether (x, y) lies on any stroke triangle. Triangle edges
// count as inside.
func (r *strokeRegion) HitTest(x, y float64) bool {
	if x < r.aabb.X || x > r.aabb.Right() || y < r.aabb.Y || y > r.aabb.Bottom() {
		return false
	}
	p := Vec2{x, y}
	for i := range r.tris {
		if pointInTriangle(p, &r.tris[i]) {
			return true
		}
	}
	return false
}

// computeVertexAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box.
func computeVertexAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	var acc boundsAccumulator
	for i := range verts {
		acc.addPoint(float64(verts[i].DstX), float64(verts[i].DstY))
	}
	return acc.rect()
}

// pointInTriangle uses the sign of the edge cross products. Either winding
// order is accepted.
func pointInTriangle(p Vec2, t *triangle) bool {
	d1 := edgeSide(p, t[0], t[1])
	d2 := edgeSide(p, t[1], t[2])
	d3 := edgeSide(p, t[2], t[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSide(p, a, b Vec2) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
