// Package render draws arranged container trees: PNG images for
// inspection and ASCII sketches for terminals. Both renderers run a
// single layout pass and then read offsets and sizes back through the
// public API.
package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/grindlemire/axisflow"
)

// margin is the blank border around the container in a PNG. One layout
// unit maps to one pixel.
const margin = 16

// palette cycles across sibling boxes so adjacent children stay
// distinguishable.
var palette = [][3]float64{
	{0.62, 0.79, 0.93},
	{0.96, 0.76, 0.56},
	{0.70, 0.87, 0.65},
	{0.93, 0.68, 0.72},
	{0.80, 0.72, 0.90},
}

// PNG lays the container out under cs and writes the arrangement to
// path. With clipping off the canvas grows to cover children that
// escape the container; with clipping on it covers the container only
// and escaping content is cut at its edge.
func PNG(c *axisflow.Container, cs axisflow.Constraints, path string) error {
	size := c.Layout(cs)

	bounds := rect{maxX: size.Width, maxY: size.Height}
	if c.Options().Clip == axisflow.ClipNone {
		growChildren(&bounds, c, axisflow.Point{})
	}
	width := int(math.Ceil(bounds.maxX-bounds.minX)) + 2*margin
	height := int(math.Ceil(bounds.maxY-bounds.minY)) + 2*margin

	dc := gg.NewContext(width, height)
	face, err := labelFace(12)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Shift so the container origin stays inside the margin even when
	// children escape it leftward or upward.
	origin := axisflow.Point{X: margin - bounds.minX, Y: margin - bounds.minY}

	dc.SetRGB(0.97, 0.97, 0.97)
	dc.DrawRectangle(origin.X, origin.Y, size.Width, size.Height)
	dc.Fill()

	// gg clip masks are permanent until reset, so the mask is cleared
	// explicitly after the children rather than with Push/Pop.
	clipped := c.Overflow() && c.Options().Clip != axisflow.ClipNone
	if clipped {
		x, y := origin.X, origin.Y
		w, h := size.Width, size.Height
		if c.Options().Clip == axisflow.ClipHardEdge {
			x, y = math.Floor(x), math.Floor(y)
			w, h = math.Ceil(w), math.Ceil(h)
		}
		dc.DrawRectangle(x, y, w, h)
		dc.Clip()
	}

	drawChildren(dc, c, origin)

	if clipped {
		dc.ResetClip()
	}

	dc.SetRGB(0.25, 0.25, 0.25)
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(origin.X, origin.Y, size.Width, size.Height)
	dc.Stroke()

	if c.Overflow() {
		drawOverflowBadge(dc, origin, size)
	}

	return dc.SavePNG(path)
}

func drawChildren(dc *gg.Context, c *axisflow.Container, origin axisflow.Point) {
	for i, it := range c.Children() {
		at := origin.Add(it.Offset())
		sz := it.Size()

		if child, ok := it.(*axisflow.Container); ok {
			dc.SetRGB(0.9, 0.9, 0.9)
			dc.DrawRectangle(at.X, at.Y, sz.Width, sz.Height)
			dc.Fill()
			dc.SetRGB(0.45, 0.45, 0.45)
			dc.SetLineWidth(1)
			dc.DrawRectangle(at.X, at.Y, sz.Width, sz.Height)
			dc.Stroke()
			drawChildren(dc, child, at)
			continue
		}

		shade := palette[i%len(palette)]
		dc.SetRGB(shade[0], shade[1], shade[2])
		dc.DrawRectangle(at.X, at.Y, sz.Width, sz.Height)
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.SetLineWidth(1)
		dc.DrawRectangle(at.X, at.Y, sz.Width, sz.Height)
		dc.Stroke()

		if box, ok := it.(*axisflow.Box); ok && box.Label() != "" {
			dc.SetRGB(0.1, 0.1, 0.1)
			dc.DrawStringAnchored(box.Label(), at.X+sz.Width/2, at.Y+sz.Height/2, 0.5, 0.5)
		}
	}
}

// drawOverflowBadge marks the container's top-right corner.
func drawOverflowBadge(dc *gg.Context, origin axisflow.Point, size axisflow.Size) {
	const badge = 8
	dc.SetRGB(0.85, 0.2, 0.2)
	dc.DrawRectangle(origin.X+size.Width-badge, origin.Y, badge, badge)
	dc.Fill()
}

type rect struct {
	minX, minY, maxX, maxY float64
}

// growChildren widens r to cover every descendant rect, in the
// coordinate space of the outermost container.
func growChildren(r *rect, c *axisflow.Container, origin axisflow.Point) {
	for _, it := range c.Children() {
		at := origin.Add(it.Offset())
		sz := it.Size()
		r.minX = math.Min(r.minX, at.X)
		r.minY = math.Min(r.minY, at.Y)
		r.maxX = math.Max(r.maxX, at.X+sz.Width)
		r.maxY = math.Max(r.maxY, at.Y+sz.Height)
		if child, ok := it.(*axisflow.Container); ok {
			growChildren(r, child, at)
		}
	}
}

// labelFace builds a face from the bundled Go Regular font so PNGs
// render the same on every machine.
func labelFace(points float64) (font.Face, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label face: %w", err)
	}
	return face, nil
}
