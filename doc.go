// Package shumway is a retained-mode 2D display list: a tree of nodes with
// parent-relative affine transforms, lazily computed bounds, coordinate
// conversion and shape-accurate hit testing.
//
// Rendering is left to the caller. Matrices convert to [ebiten.GeoM] and
// color transforms to [colorm.ColorM] for drawing with [Ebitengine].
//
// # Display list
//
// Every element is a [Node]. [NewStage] creates the top-level container whose
// space is global space. [NewContainer] creates nodes that hold children and
// [NewShape] creates leaves whose geometry comes from a [Shape].
//
//	stage := shumway.NewStage()
//	ui := shumway.NewContainer("ui")
//	_ = stage.AddChild(ui)
//
//	g := shumway.NewGraphics()
//	g.BeginFill(shumway.FillRuleNonZero)
//	g.DrawRect(0, 0, 80, 40)
//	button := shumway.NewShape("button", g)
//	button.SetPosition(100, 50)
//	_ = ui.AddChild(button)
//
// A node belongs to at most one container. Adding it elsewhere moves it.
// Tree operations return errors wrapping [ErrRange] or [ErrArgument] and leave
// the child list unchanged when they fail.
//
// # Transforms
//
// X, Y, Rotation (degrees), ScaleX and ScaleY define a node's matrix. Assigning
// a matrix with [Node.SetTransform] overrides them until one of them is set
// again; [Node.TransformMode] reports which is in effect.
//
// [Node.LocalToGlobal], [Node.GlobalToLocal], [Node.LocalToSpace] and
// [Node.SpaceToLocal] convert points between spaces. Inverting a singular
// matrix fails with [ErrDegenerateTransform].
//
// # Bounds and redraw
//
// [Node.Bounds] returns the axis-aligned bounds of a subtree in any target
// space and caches the result until the geometry changes. Each geometric
// change first records the node's old global bounds as a redraw region,
// which the renderer collects with [Node.TakeRedrawRegion].
//
// # Hit testing
//
// [Node.HitTestPoint] tests a global point against the bounds or, with the
// shape flag, against fills and stroke outlines of the node and its
// descendants. [Node.HitTestObject] tests two nodes' global bounds for
// overlap.
//
// # Debug mode
//
// [SetDebugMode] enables warnings on stderr for deep trees, crowded
// containers and singular matrices.
//
// [Ebitengine]: https://ebitengine.org
package shumway
