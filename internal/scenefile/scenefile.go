// Package scenefile reads YAML scene descriptions and builds display lists
// from them.
package scenefile

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/luminight/shumway"
)

// Scene is the top-level document.
type Scene struct {
	Name  string  `yaml:"name"`
	Nodes []*Node `yaml:"nodes"`
}

// Node describes one display object and its children.
type Node struct {
	Name     string   `yaml:"name"`
	X        float64  `yaml:"x,omitempty"`
	Y        float64  `yaml:"y,omitempty"`
	Rotation float64  `yaml:"rotation,omitempty"`
	ScaleX   *float64 `yaml:"scaleX,omitempty"`
	ScaleY   *float64 `yaml:"scaleY,omitempty"`
	Visible  *bool    `yaml:"visible,omitempty"`

	// BBox is the authored bounding box used instead of the children's bounds.
	BBox *Box `yaml:"bbox,omitempty"`

	// Path is SVG path data drawn into the node's Graphics.
	Path   string  `yaml:"path,omitempty"`
	Fill   string  `yaml:"fill,omitempty"` // "", "nonzero" or "evenodd"
	Stroke *Stroke `yaml:"stroke,omitempty"`

	Children []*Node `yaml:"children,omitempty"`
}

type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Stroke struct {
	Width      float64 `yaml:"width"`
	Cap        string  `yaml:"cap,omitempty"`  // butt, round or square
	Join       string  `yaml:"join,omitempty"` // miter, round or bevel
	MiterLimit float64 `yaml:"miterLimit,omitempty"`
}

// Decode reads a scene from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	return &s, nil
}

// Load reads a scene file from disk.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

// Build adds the scene's nodes to stage. Path coordinates are multiplied by
// pathScale.
func (s *Scene) Build(stage *shumway.Node, pathScale float64) error {
	for _, d := range s.Nodes {
		n, err := build(d, pathScale)
		if err != nil {
			return err
		}
		if err := stage.AddChild(n); err != nil {
			return errors.Wrapf(err, "attach %q", d.Name)
		}
	}
	return nil
}

func build(d *Node, pathScale float64) (*shumway.Node, error) {
	if d == nil {
		return nil, errors.New("empty node entry")
	}
	sym := shumway.Symbol{Name: d.Name}
	if d.BBox != nil {
		sym.BBox = &shumway.Rect{X: d.BBox.X, Y: d.BBox.Y, Width: d.BBox.Width, Height: d.BBox.Height}
	}
	if d.Path != "" {
		g, err := buildGraphics(d, pathScale)
		if err != nil {
			return nil, errors.Wrapf(err, "node %q", d.Name)
		}
		sym.Shape = g
	}
	for _, cd := range d.Children {
		c, err := build(cd, pathScale)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", d.Name)
		}
		sym.Children = append(sym.Children, c)
	}

	n, err := shumway.NewSymbolInstance(sym)
	if err != nil {
		return nil, errors.Wrapf(err, "node %q", d.Name)
	}
	sx, sy := 1.0, 1.0
	if d.ScaleX != nil {
		sx = *d.ScaleX
	}
	if d.ScaleY != nil {
		sy = *d.ScaleY
	}
	n.SetPosition(d.X, d.Y)
	n.SetRotation(d.Rotation)
	n.SetScale(sx, sy)
	if d.Visible != nil {
		n.SetVisible(*d.Visible)
	}
	return n, nil
}

func buildGraphics(d *Node, pathScale float64) (*shumway.Graphics, error) {
	g := shumway.NewGraphics()
	if d.Stroke != nil {
		style := shumway.LineStyle{Width: d.Stroke.Width, MiterLimit: d.Stroke.MiterLimit}
		switch strings.ToLower(d.Stroke.Cap) {
		case "", "butt":
			style.Cap = shumway.LineCapButt
		case "round":
			style.Cap = shumway.LineCapRound
		case "square":
			style.Cap = shumway.LineCapSquare
		default:
			return nil, errors.Errorf("unknown line cap %q", d.Stroke.Cap)
		}
		switch strings.ToLower(d.Stroke.Join) {
		case "", "miter":
			style.Join = shumway.LineJoinMiter
		case "round":
			style.Join = shumway.LineJoinRound
		case "bevel":
			style.Join = shumway.LineJoinBevel
		default:
			return nil, errors.Errorf("unknown line join %q", d.Stroke.Join)
		}
		g.LineStyle(style)
	}
	switch strings.ToLower(d.Fill) {
	case "":
	case "nonzero":
		g.BeginFill(shumway.FillRuleNonZero)
	case "evenodd":
		g.BeginFill(shumway.FillRuleEvenOdd)
	default:
		return nil, errors.Errorf("unknown fill rule %q", d.Fill)
	}
	if err := g.DrawPathData(d.Path, pathScale); err != nil {
		return nil, err
	}
	return g, nil
}
