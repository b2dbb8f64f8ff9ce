package shumway

// FillRule selects how overlapping contours of a filled sub-path combine.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota // inside when the winding number is non-zero
	FillRuleEvenOdd                 // inside when the winding number is odd
)

// LineCap is the shape drawn at open stroke ends.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape drawn where stroke segments meet.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// defaultMiterLimit matches the Flash line style default.
const defaultMiterLimit = 3

// LineStyle describes how a sub-path is stroked. A zero Width draws a
// hairline, which is hit-tested as one unit wide.
type LineStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// curveSegments is the number of line segments each curve flattens into.
const curveSegments = 16

// ellipseKappa places cubic control points approximating a quarter ellipse.
const ellipseKappa = 0.5522847498

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
	opCubic
	opClose
)

type pathOp struct {
	kind opKind
	pts  [3]Vec2
}

// Path is one sub-path of a Graphics: a sequence of contours sharing a fill
// and line style.
type Path struct {
	ops      []pathOp
	filled   bool
	fillRule FillRule
	line     *LineStyle

	contours      [][]Vec2
	contoursValid bool
	stroke        *strokeRegion
}

// Filled reports whether the sub-path is filled.
func (p *Path) Filled() bool { return p.filled }

// FillRule returns the sub-path's fill rule.
func (p *Path) FillRule() FillRule { return p.fillRule }

// LineStyle returns the sub-path's line style, or nil when unstroked.
func (p *Path) LineStyle() *LineStyle { return p.line }

// Stroked reports whether the sub-path has a line style.
func (p *Path) Stroked() bool { return p.line != nil }

// HitTestFill reports whether (x, y) lies in the filled area. Open contours
// are closed implicitly.
func (p *Path) HitTestFill(x, y float64) bool {
	if !p.filled {
		return false
	}
	wn := windingNumber(p.flatten(), x, y)
	if p.fillRule == FillRuleEvenOdd {
		return wn%2 != 0
	}
	return wn != 0
}

// StrokeRegion returns the stroke outline, building it on first use.
func (p *Path) StrokeRegion() StrokeRegion {
	if p.line == nil {
		return nil
	}
	if p.stroke == nil {
		p.stroke = newStrokeRegion(p.ops, *p.line)
	}
	return p.stroke
}

// bounds returns the flattened geometry's bounds padded by half the line width.
func (p *Path) bounds() (Rect, bool) {
	var acc boundsAccumulator
	for _, c := range p.flatten() {
		for _, pt := range c {
			acc.addPoint(pt.X, pt.Y)
		}
	}
	if !acc.any {
		return Rect{}, false
	}
	r := acc.rect()
	if p.line != nil {
		pad := max(p.line.Width, 1) / 2
		r = Rect{X: r.X - pad, Y: r.Y - pad, Width: r.Width + 2*pad, Height: r.Height + 2*pad}
	}
	return r, true
}

// flatten converts the ops into polylines, one per contour.
func (p *Path) flatten() [][]Vec2 {
	if p.contoursValid {
		return p.contours
	}
	var contours [][]Vec2
	var cur []Vec2
	var pen Vec2
	flush := func() {
		if len(cur) > 1 {
			contours = append(contours, cur)
		}
		cur = nil
	}
	for _, op := range p.ops {
		switch op.kind {
		case opMove:
			flush()
			pen = op.pts[0]
			cur = []Vec2{pen}
		case opLine:
			cur = append(cur, op.pts[0])
			pen = op.pts[0]
		case opQuad:
			for i := 1; i <= curveSegments; i++ {
				cur = append(cur, quadPoint(pen, op.pts[0], op.pts[1], float64(i)/curveSegments))
			}
			pen = op.pts[1]
		case opCubic:
			for i := 1; i <= curveSegments; i++ {
				cur = append(cur, cubicPoint(pen, op.pts[0], op.pts[1], op.pts[2], float64(i)/curveSegments))
			}
			pen = op.pts[2]
		case opClose:
			if len(cur) > 0 {
				pen = cur[0]
			}
			flush()
			cur = []Vec2{pen}
		}
	}
	flush()
	p.contours = contours
	p.contoursValid = true
	return contours
}

func (p *Path) invalidate() {
	p.contours = nil
	p.contoursValid = false
	p.stroke = nil
}

func quadPoint(p0, p1, p2 Vec2, t float64) Vec2 {
	mt := 1 - t
	return Vec2{
		mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

func cubicPoint(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Vec2{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// windingNumber sums the signed crossings of every implicitly closed contour
// around (x, y).
func windingNumber(contours [][]Vec2, x, y float64) int {
	wn := 0
	for _, c := range contours {
		n := len(c)
		for i := 0; i < n; i++ {
			a := c[i]
			b := c[(i+1)%n]
			side := (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
			if a.Y <= y {
				if b.Y > y && side > 0 {
					wn++
				}
			} else if b.Y <= y && side < 0 {
				wn--
			}
		}
	}
	return wn
}

// Graphics is a Shape built with a Flash-style drawing API. Every change to
// the fill or line style starts a new sub-path.
//
// A Graphics may be shared by several nodes; all of them are invalidated
// when it changes.
type Graphics struct {
	paths    []*Path
	subPaths []SubPath
	cur      *Path
	pen      Vec2

	fill     bool
	fillRule FillRule
	line     *LineStyle

	owners []*Node

	bounds      Rect
	boundsOK    bool
	boundsValid bool
}

// NewGraphics creates an empty Graphics.
func NewGraphics() *Graphics {
	return &Graphics{}
}

// SelfBounds implements Shape.
func (g *Graphics) SelfBounds() (Rect, bool) {
	if g.boundsValid {
		return g.bounds, g.boundsOK
	}
	var r Rect
	ok := false
	for _, p := range g.paths {
		pb, pok := p.bounds()
		if !pok {
			continue
		}
		if ok {
			r = r.Union(pb)
		} else {
			r, ok = pb, true
		}
	}
	g.bounds, g.boundsOK, g.boundsValid = r, ok, true
	return r, ok
}

// SubPaths implements Shape.
func (g *Graphics) SubPaths() []SubPath {
	return g.subPaths
}

// Paths returns the concrete sub-paths for renderers.
func (g *Graphics) Paths() []*Path {
	return g.paths
}

// BeginFill fills the sub-paths drawn from now on.
func (g *Graphics) BeginFill(rule FillRule) {
	g.fill = true
	g.fillRule = rule
	g.cur = nil
}

// EndFill stops filling the sub-paths drawn from now on.
func (g *Graphics) EndFill() {
	g.fill = false
	g.cur = nil
}

// LineStyle strokes the sub-paths drawn from now on.
func (g *Graphics) LineStyle(s LineStyle) {
	if s.MiterLimit <= 0 {
		s.MiterLimit = defaultMiterLimit
	}
	g.line = &s
	g.cur = nil
}

// ClearLineStyle stops stroking the sub-paths drawn from now on.
func (g *Graphics) ClearLineStyle() {
	g.line = nil
	g.cur = nil
}

// MoveTo starts a new contour at (x, y).
func (g *Graphics) MoveTo(x, y float64) {
	p := g.current()
	p.ops = append(p.ops, pathOp{kind: opMove, pts: [3]Vec2{{x, y}}})
	g.pen = Vec2{x, y}
}

// LineTo draws a straight line from the pen to (x, y).
func (g *Graphics) LineTo(x, y float64) {
	p := g.current()
	p.ops = append(p.ops, pathOp{kind: opLine, pts: [3]Vec2{{x, y}}})
	g.pen = Vec2{x, y}
}

// CurveTo draws a quadratic curve with control point (cx, cy) to (ax, ay).
func (g *Graphics) CurveTo(cx, cy, ax, ay float64) {
	p := g.current()
	p.ops = append(p.ops, pathOp{kind: opQuad, pts: [3]Vec2{{cx, cy}, {ax, ay}}})
	g.pen = Vec2{ax, ay}
}

// CubicCurveTo draws a cubic curve with control points (c1x, c1y) and
// (c2x, c2y) to (ax, ay).
func (g *Graphics) CubicCurveTo(c1x, c1y, c2x, c2y, ax, ay float64) {
	p := g.current()
	p.ops = append(p.ops, pathOp{kind: opCubic, pts: [3]Vec2{{c1x, c1y}, {c2x, c2y}, {ax, ay}}})
	g.pen = Vec2{ax, ay}
}

// ClosePath closes the current contour back to its starting point.
func (g *Graphics) ClosePath() {
	p := g.current()
	start := g.pen
	for i := len(p.ops) - 1; i >= 0; i-- {
		if p.ops[i].kind == opMove {
			start = p.ops[i].pts[0]
			break
		}
	}
	p.ops = append(p.ops, pathOp{kind: opClose})
	g.pen = start
}

// DrawRect adds a closed rectangle contour.
func (g *Graphics) DrawRect(x, y, w, h float64) {
	g.MoveTo(x, y)
	g.LineTo(x+w, y)
	g.LineTo(x+w, y+h)
	g.LineTo(x, y+h)
	g.ClosePath()
}

// DrawCircle adds a closed circle contour centered on (x, y).
func (g *Graphics) DrawCircle(x, y, radius float64) {
	g.DrawEllipse(x-radius, y-radius, 2*radius, 2*radius)
}

// DrawEllipse adds a closed ellipse contour inscribed in the given box.
func (g *Graphics) DrawEllipse(x, y, w, h float64) {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	kx, ky := rx*ellipseKappa, ry*ellipseKappa
	g.MoveTo(cx+rx, cy)
	g.CubicCurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	g.CubicCurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	g.CubicCurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	g.CubicCurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	g.ClosePath()
}

// Clear removes all sub-paths and resets the fill and line style.
func (g *Graphics) Clear() {
	g.willChange()
	g.paths = nil
	g.subPaths = nil
	g.cur = nil
	g.pen = Vec2{}
	g.fill = false
	g.line = nil
}

// current returns the sub-path receiving drawing commands, starting a new
// one with the current style when needed. It marks the geometry as changing.
func (g *Graphics) current() *Path {
	g.willChange()
	if g.cur != nil {
		g.cur.invalidate()
		return g.cur
	}
	p := &Path{filled: g.fill, fillRule: g.fillRule}
	if g.line != nil {
		line := *g.line
		p.line = &line
	}
	// Drawing continues from the pen when the style changes mid-contour.
	p.ops = append(p.ops, pathOp{kind: opMove, pts: [3]Vec2{g.pen}})
	g.paths = append(g.paths, p)
	g.subPaths = append(g.subPaths, p)
	g.cur = p
	return p
}

// willChange records the owners' current area for redraw and drops every
// cache derived from the old geometry.
func (g *Graphics) willChange() {
	for _, n := range g.owners {
		n.markDirty()
		n.invalidateEnvelope()
	}
	g.boundsValid = false
}

func (g *Graphics) attach(n *Node) {
	for _, o := range g.owners {
		if o == n {
			return
		}
	}
	g.owners = append(g.owners, n)
}

func (g *Graphics) detach(n *Node) {
	for i, o := range g.owners {
		if o == n {
			copy(g.owners[i:], g.owners[i+1:])
			g.owners[len(g.owners)-1] = nil
			g.owners = g.owners[:len(g.owners)-1]
			return
		}
	}
}
