package waveplot

import (
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Limits is a closed axis range. Min == Max means fit to the data.
type Limits struct{ Min, Max float64 }

func (l Limits) auto() bool { return l.Min == l.Max }

// CloudOptions controls PlotPointCloud.
type CloudOptions struct {
	// Field names, ColClass, ColX, ColY and ColZ if empty.
	ClassField, XField, YField, ZField string

	// Axis limits. The zero value fits the axis to the data.
	XLim, YLim, ZLim Limits

	View View

	// Radius of the dots, taken from the theme's PointStyle if zero.
	Radius vg.Length

	// Labels name the groups in the legend.
	Labels map[int]string

	Title     string
	Legend    bool
	Frame     bool
	DepthSort bool

	Theme Theme
}

// DefaultCloudOptions returns a view from above with all axes limited
// to [-60,60].
func DefaultCloudOptions() CloudOptions {
	lim := Limits{Min: -60, Max: 60}
	return CloudOptions{
		ClassField: ColClass,
		XField:     ColX,
		YField:     ColY,
		ZField:     ColZ,
		XLim:       lim,
		YLim:       lim,
		ZLim:       lim,
		View:       DefaultView,
		Labels:     DefaultLabels,
		Theme:      DefaultTheme,
	}
}

func orField(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// PlotPointCloud draws the positions of all rows of df as 3D scatter
// plot without axes. Rows are grouped by class in order of first
// appearance and every group gets the next color of the theme's
// CloudColors.
func PlotPointCloud(df *DataFrame, opts CloudOptions) (*plot.Plot, error) {
	p, _, err := cloudPlot(df, opts)
	return p, err
}

// cloudPlot builds the point cloud plot and returns its only plotter.
func cloudPlot(df *DataFrame, opts CloudOptions) (*plot.Plot, *GeomPoint3D, error) {
	theme := opts.Theme.orDefault()
	classField := orField(opts.ClassField, ColClass)
	fields := []string{
		orField(opts.XField, ColX),
		orField(opts.YField, ColY),
		orField(opts.ZField, ColZ),
	}
	for _, f := range append([]string{classField}, fields...) {
		if !df.Has(f) {
			return nil, nil, errors.Errorf("waveplot: no field %q in %s", f, df.Name)
		}
	}

	geom := &GeomPoint3D{
		View:      opts.View,
		DepthSort: opts.DepthSort,
	}
	for i, lim := range []Limits{opts.XLim, opts.YLim, opts.ZLim} {
		s := NewScale(fields[i])
		if lim.auto() {
			s.Train(df.Columns[fields[i]])
		} else {
			s.SetLimits(lim.Min, lim.Max)
		}
		s.Prepare()
		geom.Scales[i] = s
	}
	if opts.Frame {
		geom.Frame = draw.LineStyle{Color: String2Color("gray60"), Width: vg.Points(0.5)}
	}

	style := theme.PointStyle.GlyphStyle()
	if opts.Radius > 0 {
		style.Radius = opts.Radius
	}
	colors := NewPalette(theme.CloudColors)

	classes := Unique(df, classField)
	for i, part := range Partition(df, classField, classes) {
		group := PointGroup{
			Name:   groupName(opts.Labels, classes[i]),
			Points: make([]Point3, part.N),
			Style:  style,
		}
		group.Style.Color = colors.At(i)
		xs, ys, zs := part.Columns[fields[0]].Data, part.Columns[fields[1]].Data, part.Columns[fields[2]].Data
		for j := range group.Points {
			group.Points[j] = Point3{X: xs[j], Y: ys[j], Z: zs[j]}
		}
		geom.Groups = append(geom.Groups, group)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.HideAxes()
	theme.Apply(p)
	p.Add(geom)
	if opts.Legend {
		p.Legend.Top = true
		p.Legend.Left = true
		for _, g := range geom.Groups {
			p.Legend.Add(g.Name, g)
		}
	}
	return p, geom, nil
}

func groupName(labels map[int]string, class float64) string {
	if l, ok := labels[int(class)]; ok {
		return l
	}
	return strconv.FormatFloat(class, 'g', -1, 64)
}
