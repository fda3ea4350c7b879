package waveplot

import (
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// DefaultLabels names the classes of land/water classified points.
var DefaultLabels = map[int]string{0: "land", 1: "water"}

// WaveformOptions controls PlotWaveforms.
type WaveformOptions struct {
	// Samples per waveform, DefaultSamples if zero.
	Samples int

	// ClassField holds the class of each row, ColClass if empty.
	ClassField string

	// Labels are the legend entries per class. Classes without label
	// are shown by number.
	Labels map[int]string

	Title, XLabel, YLabel string

	Theme Theme
}

// DefaultWaveformOptions returns the options used by the command line
// tool.
func DefaultWaveformOptions() WaveformOptions {
	return WaveformOptions{
		Samples:    DefaultSamples,
		ClassField: ColClass,
		Labels:     DefaultLabels,
		Title:      "Waveforms",
		XLabel:     "Index",
		YLabel:     "Amplitude",
		Theme:      DefaultTheme,
	}
}

func (o WaveformOptions) label(class int) string {
	if l, ok := o.Labels[class]; ok {
		return l
	}
	return strconv.Itoa(class)
}

// PlotWaveforms draws one line per row of df. A waveform ends before its
// first zero sample and is colored by the value of its class, which
// indexes the theme's WaveformColors. The first waveform of each class
// provides the legend entry of that class.
func PlotWaveforms(df *DataFrame, opts WaveformOptions) (*plot.Plot, error) {
	p, _, err := waveformPlot(df, opts)
	return p, err
}

// waveformPlot builds the waveform plot and returns the lines added to it.
func waveformPlot(df *DataFrame, opts WaveformOptions) (*plot.Plot, []*plotter.Line, error) {
	if opts.Samples <= 0 {
		opts.Samples = DefaultSamples
	}
	if opts.ClassField == "" {
		opts.ClassField = ColClass
	}
	theme := opts.Theme.orDefault()

	classes, ok := df.Columns[opts.ClassField]
	if !ok {
		return nil, nil, errors.Errorf("waveplot: no class field %q in %s", opts.ClassField, df.Name)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	theme.Apply(p)

	colors := NewPalette(theme.WaveformColors)
	style := theme.LineStyle.LineStyle()
	occurred := make(map[int]bool)
	if df.N == 0 {
		return p, nil, nil
	}
	waveforms, err := WaveformMatrix(df, opts.Samples)
	if err != nil {
		return nil, nil, err
	}
	var lines []*plotter.Line
	for i := 0; i < df.N; i++ {
		row := waveforms.RawRowView(i)
		n := FirstZero(row)
		xys := make(plotter.XYs, n)
		for j := 0; j < n; j++ {
			xys[j].X = float64(j)
			xys[j].Y = row[j]
		}
		// Waveforms starting with 0 are not drawn but may still name
		// their class in the legend.
		line := &plotter.Line{XYs: xys}
		if n > 0 {
			line, err = plotter.NewLine(xys)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "waveplot: bad waveform in row %d", i+1)
			}
			p.Add(line)
			lines = append(lines, line)
		}
		class := int(classes.Data[i])
		line.LineStyle = style
		line.LineStyle.Color = colors.At(class)

		if !occurred[class] {
			p.Legend.Add(opts.label(class), line)
			occurred[class] = true
		}
	}
	return p, lines, nil
}
