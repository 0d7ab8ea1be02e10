package main

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/osuushi/collide/advanced"
	"github.com/pkg/errors"

	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the shapes, in pixels
const drawPadding = 40

// Render the polygons, and mark the first crossing of every colliding pair.
// Closing edges are dashed when the collider leaves them out of the test.
func drawPolygons(path string, scale float64, polygons []advanced.Polygon, results []pairResult, collider advanced.Collider) error {
	var allPoints []advanced.Point
	for _, poly := range polygons {
		allPoints = append(allPoints, poly.Points...)
	}
	bounds, err := advanced.BoundsOf(allPoints)
	if err != nil {
		return errors.Wrap(err, "nothing to draw")
	}

	// Set up the context
	width := int(scale*(bounds.MaxX-bounds.MinX)) + drawPadding*2
	height := int(scale*(bounds.MaxY-bounds.MinY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.MinX, -bounds.MinY)

	c.SetLineWidth(2)
	for _, poly := range polygons {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.4)
		c.Fill()

		// Stroke the edges one by one so the closing edge can be styled apart
		edges, err := poly.Edges()
		if err != nil {
			continue
		}
		for i, edge := range edges {
			if i == len(edges)-1 && !collider.TestClosingEdges {
				c.SetDash(6, 4)
			}
			c.SetRGB(0, 1, 1)
			strokeSegment(c, edge)
			c.SetDash()
		}
	}

	// Crossing edges in red, with a dot where the lines were solved to meet
	for _, result := range results {
		if !result.collides {
			continue
		}
		c.SetRGB(1, 0.2, 0.2)
		strokeSegment(c, result.crossing.FirstEdge)
		strokeSegment(c, result.crossing.SecondEdge)
		if p := result.crossing.Result.Point; p != nil {
			c.DrawCircle(p.X, p.Y, 4/scale)
			c.Fill()
		}
	}

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	log.Infof("Wrote %s", path)

	if *useImgcat {
		if err := showImage(path, os.Stdout); err != nil {
			log.Warningf("%v", err)
		}
	}
	return nil
}

// Print a PNG inline, for terminals that support the iTerm image protocol.
func showImage(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "showing %s", path)
}

func strokeSegment(c *gg.Context, s advanced.Segment) {
	c.MoveTo(s.Start.X, s.Start.Y)
	c.LineTo(s.End.X, s.End.Y)
	c.Stroke()
}
