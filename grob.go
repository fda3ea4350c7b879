package waveplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Grob is a graphical object. Its coordinates are in the unit range of
// the viewport it gets drawn on.
type Grob interface {
	Draw(vp Viewport)
	String() string
}

// Viewport is a rectangular area of a canvas.
type Viewport struct {
	X0, Y0        vg.Length
	Width, Height vg.Length

	Canvas *draw.Canvas
}

// NewViewport covers the whole drawing area of c.
func NewViewport(c *draw.Canvas) Viewport {
	return Viewport{
		X0:     c.Min.X,
		Y0:     c.Min.Y,
		Width:  c.Max.X - c.Min.X,
		Height: c.Max.Y - c.Min.Y,
		Canvas: c,
	}
}

// Square returns the largest square centered in vp.
func (vp Viewport) Square() Viewport {
	side := vp.Width
	if vp.Height < side {
		side = vp.Height
	}
	return Viewport{
		X0:     vp.X0 + (vp.Width-side)/2,
		Y0:     vp.Y0 + (vp.Height-side)/2,
		Width:  side,
		Height: side,
		Canvas: vp.Canvas,
	}
}

// X and Y convert a coordinate from the unit range into the canvas.
func (vp Viewport) X(x float64) vg.Length { return vp.X0 + vg.Length(x)*vp.Width }
func (vp Viewport) Y(y float64) vg.Length { return vp.Y0 + vg.Length(y)*vp.Height }

func (vp Viewport) String() string {
	return fmt.Sprintf("%.1fpt x %.1fpt at (%.1fpt,%.1fpt)",
		vp.Width.Points(), vp.Height.Points(), vp.X0.Points(), vp.Y0.Points())
}

// -------------------------------------------------------------------------
// Grob Point

type GrobPoint struct {
	x, y  float64
	size  vg.Length
	shape PointShape
	color color.Color
}

func (point GrobPoint) Draw(vp Viewport) {
	glyph := point.shape.Glyph()
	if glyph == nil {
		return
	}
	sty := draw.GlyphStyle{
		Color:  point.color,
		Radius: point.size,
		Shape:  glyph,
	}
	vp.Canvas.DrawGlyph(sty, vg.Point{X: vp.X(point.x), Y: vp.Y(point.y)})
}

func (point GrobPoint) String() string {
	return fmt.Sprintf("Point(%.3f,%.3f | %v %d %.1f)",
		point.x, point.y, point.color, point.shape, point.size.Points())
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	x0, y0, x1, y1 float64
	size           vg.Length
	linetype       LineType
	color          color.Color
}

func (line GrobLine) Draw(vp Viewport) {
	if line.linetype == BlankLine {
		return
	}
	sty := draw.LineStyle{
		Color:  line.color,
		Width:  line.size,
		Dashes: line.linetype.Dashes(line.size),
	}
	vp.Canvas.StrokeLine2(sty, vp.X(line.x0), vp.Y(line.y0), vp.X(line.x1), vp.Y(line.y1))
}

func (line GrobLine) String() string {
	return fmt.Sprintf("Line(%.3f,%.3f -> %.3f,%.3f | %v %d %.1f)",
		line.x0, line.y0, line.x1, line.y1, line.color, line.linetype, line.size.Points())
}
