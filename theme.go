package waveplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AesMapping holds fixed aesthetics like "color", "size", "linetype",
// "shape" or "alpha" as strings.
type AesMapping map[string]string

func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, v := range m {
		c[a] = v
	}
	return c
}

// MergeStyles merges the aesthetics of all ams. Earlier mappings take
// precedence; empty values are not set.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range ams {
		for a, v := range am {
			if v == "" {
				continue
			}
			if _, ok := merged[a]; !ok {
				merged[a] = v
			}
		}
	}
	return merged
}

// LineStyle turns the aesthetics "color", "size", "linetype" and
// "alpha" of m into a line style.
func (m AesMapping) LineStyle() draw.LineStyle {
	w := vg.Points(String2Float(m["size"], 0, 100))
	col := String2Color(m["color"])
	if a, ok := m["alpha"]; ok {
		col = SetAlpha(col, String2Float(a, 0, 1))
	}
	return draw.LineStyle{
		Color:  col,
		Width:  w,
		Dashes: String2LineType(m["linetype"]).Dashes(w),
	}
}

// GlyphStyle turns the aesthetics "color", "size", "shape" and "alpha"
// of m into a glyph style.
func (m AesMapping) GlyphStyle() draw.GlyphStyle {
	col := String2Color(m["color"])
	if a, ok := m["alpha"]; ok {
		col = SetAlpha(col, String2Float(a, 0, 1))
	}
	return draw.GlyphStyle{
		Color:  col,
		Radius: String2PointSize(m["size"]),
		Shape:  String2PointShape(m["shape"]).Glyph(),
	}
}

type Theme struct {
	// FontSize is used for titles, labels, ticks and legends.
	FontSize vg.Length

	LineStyle, PointStyle AesMapping

	// WaveformColors are indexed by class value.
	WaveformColors []string

	// CloudColors are used for the point groups in order.
	CloudColors []string
}

var DefaultTheme = Theme{
	FontSize: vg.Points(25),
	LineStyle: AesMapping{
		"size":     "1.5",
		"linetype": "solid",
		"color":    "#222222",
		"alpha":    "1",
	},
	PointStyle: AesMapping{
		"size":  "0.5",
		"shape": "dot",
		"color": "#222222",
		"alpha": "1",
	},
	WaveformColors: []string{"g", "b", "r", "y", "b"},
	CloudColors: []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
}

// Apply sets all font sizes of p.
func (t Theme) Apply(p *plot.Plot) {
	if t.FontSize <= 0 {
		return
	}
	p.Title.TextStyle.Font.Size = t.FontSize
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = t.FontSize
		ax.Tick.Label.Font.Size = t.FontSize
	}
	p.Legend.TextStyle.Font.Size = t.FontSize
}

func (t Theme) orDefault() Theme {
	if t.FontSize == 0 {
		t.FontSize = DefaultTheme.FontSize
	}
	if t.LineStyle == nil {
		t.LineStyle = DefaultTheme.LineStyle
	}
	if t.PointStyle == nil {
		t.PointStyle = DefaultTheme.PointStyle
	}
	if len(t.WaveformColors) == 0 {
		t.WaveformColors = DefaultTheme.WaveformColors
	}
	if len(t.CloudColors) == 0 {
		t.CloudColors = DefaultTheme.CloudColors
	}
	return t
}
