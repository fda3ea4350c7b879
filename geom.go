package waveplot

import (
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// Point3 is a point in data coordinates.
type Point3 struct{ X, Y, Z float64 }

// PointGroup is a set of points drawn with the same style.
type PointGroup struct {
	Name   string
	Points []Point3
	Style  draw.GlyphStyle
}

// Thumbnail draws the glyph of g in the center of c. It makes
// PointGroup usable as legend entry.
func (g PointGroup) Thumbnail(c *draw.Canvas) {
	sty := g.Style
	if sty.Shape == nil {
		return
	}
	// Tiny cloud dots are invisible in a legend.
	if r := c.Max.Y - c.Min.Y; sty.Radius < r/4 {
		sty.Radius = r / 4
	}
	c.DrawGlyph(sty, c.Center())
}

// GeomPoint3D is a plot.Plotter drawing groups of 3D points seen from
// View into the largest square of the plot area. The scales span the
// box which gets projected; they must be prepared.
type GeomPoint3D struct {
	Groups []PointGroup
	Scales [3]*Scale
	View   View

	// DepthSort draws points of all groups back to front. Otherwise
	// groups are drawn one after the other.
	DepthSort bool

	// Frame draws the edges of the box with this style if its width
	// is positive.
	Frame draw.LineStyle
}

var _ plot.Plotter = (*GeomPoint3D)(nil)

// project maps p to the unit square. The box spanned by the scales is
// centered at the origin with unit side length so its projection
// always fits into a circle of radius sqrt(3)/2.
func (g *GeomPoint3D) project(p Point3) (x, y, depth float64) {
	nx := g.Scales[0].Pos(p.X) - 0.5
	ny := g.Scales[1].Pos(p.Y) - 0.5
	nz := g.Scales[2].Pos(p.Z) - 0.5
	u, w, depth := g.View.Project(nx, ny, nz)
	extent := math.Sqrt(3)
	if d := g.View.Distance; d > 0 {
		extent *= d / math.Max(d-math.Sqrt(3)/2, 1e-9)
	}
	return u/extent + 0.5, w/extent + 0.5, depth
}

// Grobs returns the points (and frame lines) as grobs in drawing order.
func (g *GeomPoint3D) Grobs() []Grob {
	type depthGrob struct {
		grob  Grob
		depth float64
	}
	var all []depthGrob
	for _, group := range g.Groups {
		shape := glyphShape(group.Style.Shape)
		for _, p := range group.Points {
			x, y, depth := g.project(p)
			all = append(all, depthGrob{
				grob: GrobPoint{
					x:     x,
					y:     y,
					size:  group.Style.Radius,
					shape: shape,
					color: group.Style.Color,
				},
				depth: depth,
			})
		}
	}
	if g.DepthSort {
		sort.SliceStable(all, func(i, j int) bool { return all[i].depth < all[j].depth })
	}

	grobs := make([]Grob, 0, len(all)+12)
	grobs = append(grobs, g.frame()...)
	for _, dg := range all {
		grobs = append(grobs, dg.grob)
	}
	return grobs
}

// frame returns the 12 edges of the box.
func (g *GeomPoint3D) frame() []Grob {
	if g.Frame.Width <= 0 {
		return nil
	}
	var corners [8]Point3
	for i := range corners {
		corners[i] = Point3{
			X: corner(g.Scales[0], i&1),
			Y: corner(g.Scales[1], i&2),
			Z: corner(g.Scales[2], i&4),
		}
	}
	var grobs []Grob
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			j := i | bit
			if j == i {
				continue
			}
			x0, y0, _ := g.project(corners[i])
			x1, y1, _ := g.project(corners[j])
			grobs = append(grobs, GrobLine{
				x0: x0, y0: y0, x1: x1, y1: y1,
				size:     g.Frame.Width,
				linetype: SolidLine,
				color:    g.Frame.Color,
			})
		}
	}
	return grobs
}

func corner(s *Scale, upper int) float64 {
	if upper != 0 {
		return s.DomainMax
	}
	return s.DomainMin
}

// Plot implements plot.Plotter.
func (g *GeomPoint3D) Plot(c draw.Canvas, _ *plot.Plot) {
	vp := NewViewport(&c).Square()
	for _, grob := range g.Grobs() {
		grob.Draw(vp)
	}
}

// glyphShape maps a glyph drawer back to the point shape drawing it.
func glyphShape(gd draw.GlyphDrawer) PointShape {
	switch gd.(type) {
	case draw.CircleGlyph:
		return SolidCirclePoint
	case draw.RingGlyph:
		return CirclePoint
	case draw.SquareGlyph:
		return SquarePoint
	case draw.BoxGlyph:
		return SolidSquarePoint
	case draw.TriangleGlyph:
		return DeltaPoint
	case draw.PyramidGlyph:
		return SolidDeltaPoint
	case draw.CrossGlyph:
		return CrossPoint
	case draw.PlusGlyph:
		return PlusPoint
	}
	return BlankPoint
}
