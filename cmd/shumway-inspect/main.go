// Command shumway-inspect loads a YAML scene description and prints the
// global bounds of every node, optionally hit-testing a point.
//
//	shumway-inspect [-hit x,y] [-dump] scene.yaml
//
// SHUMWAY_DEBUG, SHUMWAY_PATH_SCALE and SHUMWAY_SHAPE_HIT configure debug
// warnings, the path-data scale and whether -hit also runs shape tests.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/luminight/shumway"
	"github.com/luminight/shumway/internal/config"
	"github.com/luminight/shumway/internal/scenefile"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		slog.Error("inspect", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("shumway-inspect", flag.ContinueOnError)
	hit := fs.String("hit", "", "global point `x,y` to hit-test against every node")
	dump := fs.Bool("dump", false, "dump the decoded scene description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected one scene file, got %d arguments", fs.NArg())
	}

	shumway.SetDebugMode(cfg.Debug)
	defer shumway.SetDebugMode(false)

	var point *shumway.Vec2
	if *hit != "" {
		p, err := parsePoint(*hit)
		if err != nil {
			return err
		}
		point = &p
	}

	scene, err := scenefile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if *dump {
		sc := spew.NewDefaultConfig()
		sc.DisableCapacities = true
		sc.DisablePointerAddresses = true
		sc.Fdump(out, scene)
	}

	stage := shumway.NewStage()
	if err := scene.Build(stage, cfg.PathScale); err != nil {
		return err
	}
	slog.Info("scene loaded", "name", scene.Name, "nodes", countNodes(stage)-1)

	for _, child := range stage.Children() {
		printTree(out, child, 0, point, cfg.ShapeHit)
	}
	if point != nil {
		for _, n := range stage.ObjectsUnderPoint(*point) {
			fmt.Fprintf(out, "under %g,%g: %s\n", point.X, point.Y, n.Name())
		}
	}
	return nil
}

func printTree(out io.Writer, n *shumway.Node, depth int, point *shumway.Vec2, shapeHit bool) {
	b := n.Bounds(nil)
	fmt.Fprintf(out, "%s%s bounds=(%g, %g, %g, %g)",
		strings.Repeat("  ", depth), n.Name(), b.X, b.Y, b.Width, b.Height)
	if point != nil {
		fmt.Fprintf(out, " bbox-hit=%t", n.HitTestPoint(point.X, point.Y, false))
		if shapeHit {
			fmt.Fprintf(out, " shape-hit=%t", n.HitTestPoint(point.X, point.Y, true))
		}
	}
	fmt.Fprintln(out)
	for _, child := range n.Children() {
		printTree(out, child, depth+1, point, shapeHit)
	}
}

func countNodes(n *shumway.Node) int {
	count := 1
	for _, child := range n.Children() {
		count += countNodes(child)
	}
	return count
}

func parsePoint(s string) (shumway.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return shumway.Vec2{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return shumway.Vec2{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return shumway.Vec2{}, fmt.Errorf("point %q: %w", s, err)
	}
	return shumway.Vec2{X: x, Y: y}, nil
}
