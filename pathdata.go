package shumway

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// pathToken is a command letter or a number from SVG path data.
type pathToken struct {
	cmd   byte
	num   float64
	isNum bool
}

// DrawPathData appends the contours described by SVG path data d, with every
// coordinate multiplied by scale. Elliptical arcs are drawn as straight lines
// to their end point.
//
// On error the contours parsed so far are kept.
func (g *Graphics) DrawPathData(d string, scale float64) error {
	tokens, err := lexPathData(d)
	if err != nil {
		return err
	}
	t := mt.NewTransform()
	if scale != 0 && scale != 1 {
		t.Scale(scale, scale)
	}
	p := &pathDataParser{g: g, t: t, tokens: tokens}
	return p.run()
}

// lexPathData reads every item the lexer produces. The lexer stops silently
// at a character it does not know, so the item text is summed to find input
// it never reached.
func lexPathData(d string) ([]pathToken, error) {
	_, items := gl.Lex("path", d)
	// The lexer goroutine sends a second EOS before closing the channel.
	defer func() {
		for range items {
		}
	}()

	var tokens []pathToken
	consumed := 0
	for i := range items {
		consumed += len(i.Value)
		switch i.Type {
		case gl.ItemEOS:
			if consumed < len(d) {
				r, _ := utf8.DecodeRuneInString(d[consumed:])
				return nil, argumentError("DrawPathData", fmt.Sprintf("unexpected %q at offset %d", r, consumed))
			}
			return tokens, nil
		case gl.ItemError:
			return nil, argumentError("DrawPathData", i.Value)
		case gl.ItemLetter, gl.ItemWord:
			// Adjacent command letters arrive fused, as in "zv".
			for k := 0; k < len(i.Value); k++ {
				tokens = append(tokens, pathToken{cmd: i.Value[k]})
			}
		case gl.ItemNumber:
			v, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return nil, argumentError("DrawPathData", "bad number "+strconv.Quote(i.Value))
			}
			tokens = append(tokens, pathToken{num: v, isNum: true})
		case gl.ItemWSP, gl.ItemComma:
		default:
			return nil, argumentError("DrawPathData", "unexpected "+strconv.Quote(i.Value))
		}
	}
	return tokens, nil
}

type pathDataParser struct {
	g      *Graphics
	t      *mt.Transform
	tokens []pathToken
	pos    int

	// Untransformed pen, contour start and last control point.
	x, y           float64
	startX, startY float64
	ctrlX, ctrlY   float64
	lastCmd        byte
}

func (p *pathDataParser) run() error {
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		if tok.isNum {
			return argumentError("DrawPathData", fmt.Sprintf("number %g before any command", tok.num))
		}
		p.pos++
		if err := p.command(tok.cmd); err != nil {
			return err
		}
	}
	return nil
}

// command consumes argument groups for cmd until the next command letter.
func (p *pathDataParser) command(cmd byte) error {
	rel := cmd >= 'a' && cmd <= 'z'
	upper := cmd &^ 0x20
	if upper == 'Z' {
		p.g.ClosePath()
		p.x, p.y = p.startX, p.startY
		p.lastCmd = 'Z'
		return nil
	}
	arity, ok := pathArity[upper]
	if !ok {
		return argumentError("DrawPathData", "unknown command "+strconv.Quote(string(cmd)))
	}
	first := true
	for first || p.hasNumber() {
		args, err := p.numbers(arity)
		if err != nil {
			return fmt.Errorf("shumway: DrawPathData: command %c: %w", cmd, err)
		}
		op := upper
		// Extra pairs after a moveto are implicit linetos.
		if op == 'M' && !first {
			op = 'L'
		}
		p.apply(op, rel, args)
		first = false
	}
	return nil
}

var pathArity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

func (p *pathDataParser) hasNumber() bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].isNum
}

func (p *pathDataParser) numbers(n int) ([]float64, error) {
	args := make([]float64, n)
	for i := range args {
		if !p.hasNumber() {
			return nil, fmt.Errorf("expected %d numbers, got %d: %w", n, i, ErrArgument)
		}
		args[i] = p.tokens[p.pos].num
		p.pos++
	}
	return args, nil
}

func (p *pathDataParser) apply(op byte, rel bool, a []float64) {
	ox, oy := 0.0, 0.0
	if rel {
		ox, oy = p.x, p.y
	}
	switch op {
	case 'M':
		p.x, p.y = ox+a[0], oy+a[1]
		p.startX, p.startY = p.x, p.y
		p.g.MoveTo(p.point(p.x, p.y))
	case 'L':
		p.lineTo(ox+a[0], oy+a[1])
	case 'H':
		p.lineTo(ox+a[0], p.y)
	case 'V':
		p.lineTo(p.x, oy+a[0])
	case 'C':
		p.cubicTo(ox+a[0], oy+a[1], ox+a[2], oy+a[3], ox+a[4], oy+a[5])
	case 'S':
		c1x, c1y := p.reflect('C', 'S')
		p.cubicTo(c1x, c1y, ox+a[0], oy+a[1], ox+a[2], oy+a[3])
	case 'Q':
		p.quadTo(ox+a[0], oy+a[1], ox+a[2], oy+a[3])
	case 'T':
		cx, cy := p.reflect('Q', 'T')
		p.quadTo(cx, cy, ox+a[0], oy+a[1])
	case 'A':
		if globalDebug {
			debugWarnf("arc in path data drawn as a line to (%g, %g)", ox+a[5], oy+a[6])
		}
		p.lineTo(ox+a[5], oy+a[6])
	}
	p.lastCmd = op
}

// reflect returns the mirror of the last control point around the pen when
// the previous command was one of the given curve kinds, else the pen.
func (p *pathDataParser) reflect(kinds ...byte) (float64, float64) {
	for _, k := range kinds {
		if p.lastCmd == k {
			return 2*p.x - p.ctrlX, 2*p.y - p.ctrlY
		}
	}
	return p.x, p.y
}

func (p *pathDataParser) lineTo(x, y float64) {
	p.x, p.y = x, y
	p.g.LineTo(p.point(x, y))
}

func (p *pathDataParser) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ax, ay := p.point(c1x, c1y)
	bx, by := p.point(c2x, c2y)
	ex, ey := p.point(x, y)
	p.g.CubicCurveTo(ax, ay, bx, by, ex, ey)
	p.ctrlX, p.ctrlY = c2x, c2y
	p.x, p.y = x, y
}

func (p *pathDataParser) quadTo(cx, cy, x, y float64) {
	ax, ay := p.point(cx, cy)
	ex, ey := p.point(x, y)
	p.g.CurveTo(ax, ay, ex, ey)
	p.ctrlX, p.ctrlY = cx, cy
	p.x, p.y = x, y
}

func (p *pathDataParser) point(x, y float64) (float64, float64) {
	return p.t.Apply(x, y)
}
