package waveplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// String2Float parses s as a float clamped to [low,high]. A trailing
// "%" divides by 100. Unparsable values yield 0.5.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.5
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha returns c with alpha a in [0,1], ignoring any alpha of c.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, ca := c.RGBA()
	if ca != 0 && ca != 0xffff {
		// Undo premultiplication.
		r, g, b = r*0xffff/ca, g*0xffff/ca, b*0xffff/ca
	}
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a * 0xff)}
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	DotPoint
	CirclePoint
	SquarePoint
	DeltaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDeltaPoint
	CrossPoint
	PlusPoint
)

func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(PlusPoint) + 1))
	}
	switch s {
	case "dot", ".":
		return DotPoint
	case "circle", "o":
		return CirclePoint
	case "square", "s":
		return SquarePoint
	case "delta", "^":
		return DeltaPoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	case "solid-delta":
		return SolidDeltaPoint
	case "cross", "x":
		return CrossPoint
	case "plus", "+":
		return PlusPoint
	}
	return BlankPoint
}

// Glyph returns the glyph drawer for shape, nil for BlankPoint.
func (shape PointShape) Glyph() draw.GlyphDrawer {
	switch shape {
	case DotPoint, SolidCirclePoint:
		return draw.CircleGlyph{}
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return nil
}

// String2PointSize parses s as glyph radius in points. Defaults to 3.
func String2PointSize(s string) vg.Length {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || x < 0 {
		return vg.Points(3)
	}
	return vg.Points(x)
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid", "-":
		return SolidLine
	case "dashed", "--":
		return DashedLine
	case "dotted", ":":
		return DottedLine
	case "dotdash", "-.":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt for a line of width w.
func (lt LineType) Dashes(w vg.Length) []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{4 * w, 2 * w}
	case DottedLine:
		return []vg.Length{w, 2 * w}
	case DotDashLine:
		return []vg.Length{w, 2 * w, 4 * w, 2 * w}
	case LongdashLine:
		return []vg.Length{8 * w, 2 * w}
	case TwodashLine:
		return []vg.Length{2 * w, 2 * w, 6 * w, 2 * w}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},

	// Single letter colors as known from matplotlib.
	"b": {0x00, 0x00, 0xff, 0xff},
	"g": {0x00, 0x80, 0x00, 0xff},
	"r": {0xff, 0x00, 0x00, 0xff},
	"c": {0x00, 0xbf, 0xbf, 0xff},
	"m": {0xbf, 0x00, 0xbf, 0xff},
	"y": {0xbf, 0xbf, 0x00, 0xff},
	"k": {0x00, 0x00, 0x00, 0xff},
	"w": {0xff, 0xff, 0xff, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a builtin color name.
// Unknown colors are returned as a dull, half transparent pink.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// Palette is a cyclic list of colors.
type Palette []color.Color

// NewPalette parses all names with String2Color.
func NewPalette(names []string) Palette {
	p := make(Palette, len(names))
	for i, n := range names {
		p[i] = String2Color(n)
	}
	return p
}

// At returns the i'th color, wrapping around at the end. Negative i
// count from the end. An empty palette yields black.
func (p Palette) At(i int) color.Color {
	if len(p) == 0 {
		return color.Black
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
