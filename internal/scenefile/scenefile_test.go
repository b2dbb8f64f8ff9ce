package scenefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cheekybits/is"

	"github.com/luminight/shumway"
)

const testScene = `
name: menu
nodes:
  - name: panel
    x: 100
    y: 50
    bbox: {x: 0, y: 0, width: 200, height: 120}
    children:
      - name: button
        x: 10
        y: 10
        path: "M0 0 L40 0 L40 20 L0 20 Z"
        fill: nonzero
      - name: divider
        y: 60
        path: "M0 0 H200"
        stroke: {width: 4, cap: round}
  - name: hidden
    visible: false
    scaleX: 2
    path: "M0 0 L10 0 L10 10 Z"
    fill: evenodd
`

func TestDecode(t *testing.T) {
	is := is.New(t)

	s, err := Decode(strings.NewReader(testScene))
	is.NoErr(err)
	is.Equal(s.Name, "menu")
	is.Equal(len(s.Nodes), 2)
	is.Equal(len(s.Nodes[0].Children), 2)
	is.NotNil(s.Nodes[0].BBox)
	is.Equal(s.Nodes[0].BBox.Width, 200.0)
	is.NotNil(s.Nodes[0].Children[1].Stroke)
	is.Equal(s.Nodes[0].Children[1].Stroke.Cap, "round")
	is.Equal(*s.Nodes[1].ScaleX, 2.0)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	is := is.New(t)

	_, err := Decode(strings.NewReader("name: x\nnodes:\n  - name: a\n    colour: red\n"))
	is.Err(err)
}

func TestBuild(t *testing.T) {
	is := is.New(t)

	s, err := Decode(strings.NewReader(testScene))
	is.NoErr(err)

	stage := shumway.NewStage()
	is.NoErr(s.Build(stage, 1))
	is.Equal(stage.NumChildren(), 2)

	panel := stage.ChildByName("panel")
	is.NotNil(panel)
	is.Equal(panel.Bounds(nil), shumway.Rect{X: 100, Y: 50, Width: 200, Height: 120})

	button := panel.ChildByName("button")
	is.NotNil(button)
	is.True(button.HitTestPoint(130, 70, true))
	is.False(button.HitTestPoint(160, 70, true))

	divider := panel.ChildByName("divider")
	is.NotNil(divider)
	is.True(divider.HitTestPoint(150, 111, true))
	is.False(divider.HitTestPoint(150, 120, true))

	hidden := stage.ChildByName("hidden")
	is.NotNil(hidden)
	is.False(hidden.Visible())
	is.Equal(hidden.ScaleX(), 2.0)
	is.Equal(hidden.Width(), 20.0)
}

func TestBuildScalesPaths(t *testing.T) {
	is := is.New(t)

	s, err := Decode(strings.NewReader("name: twips\nnodes:\n  - name: box\n    path: \"M0 0 L200 0 L200 200 L0 200 Z\"\n    fill: nonzero\n"))
	is.NoErr(err)

	stage := shumway.NewStage()
	is.NoErr(s.Build(stage, 0.05))
	box := stage.ChildByName("box")
	is.Equal(box.Bounds(nil), shumway.Rect{Width: 10, Height: 10})
}

func TestBuildRejectsBadStyle(t *testing.T) {
	is := is.New(t)

	for _, doc := range []string{
		"name: x\nnodes:\n  - name: a\n    path: \"M0 0 L1 1\"\n    fill: sideways\n",
		"name: x\nnodes:\n  - name: a\n    path: \"M0 0 L1 1\"\n    stroke: {width: 1, cap: pointy}\n",
		"name: x\nnodes:\n  - name: a\n    path: \"M0 0 Y1 1\"\n",
	} {
		s, err := Decode(strings.NewReader(doc))
		is.NoErr(err)
		is.Err(s.Build(shumway.NewStage(), 1))
	}
}

func TestLoad(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "scene.yaml")
	is.NoErr(os.WriteFile(path, []byte(testScene), 0o644))

	s, err := Load(path)
	is.NoErr(err)
	is.Equal(s.Name, "menu")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	is.Err(err)
}
