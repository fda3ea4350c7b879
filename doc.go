// Package waveplot loads labeled waveform samples and draws them.
//
// # Data
//
// The input is a flat, space separated file without header. Each row
// describes one sample point:
//
//	id class x y z s0 s1 ... s199
//
// The loader turns such a file into a DataFrame with the columns
// "id", "class", "x", "y", "z" and "0" to "199" for the amplitude
// samples. The z axis is inverted on load (z' = max(z) - z) so that
// depth grows downward.
//
// A DataFrame stores all values as float64. Discrete values (Int) are
// stored as whole numbers, strings are interned in a StringPool and
// stored as pool index. AddLabels adds the class names as such a String
// field.
//
// # Waveforms
//
// PlotWaveforms overlays all waveforms in a single plot. Each waveform
// is cut at its first exact zero sample and colored by its class:
//
//	df, err := waveplot.LoadFile("points.txt", nil)
//	p, err := waveplot.PlotWaveforms(df, waveplot.DefaultWaveformOptions())
//	err = p.Save(23*vg.Inch, 7*vg.Inch, "waveforms.png")
//
// WaveformMatrix provides the samples as a dense gonum matrix.
//
// # Point Clouds
//
// PlotPointCloud draws the x/y/z positions as a 3D scatter plot seen
// from a View (elevation and azimuth in degrees). Points are grouped
// by class in order of first appearance and drawn as tiny dots inside
// a fixed box (default [-60,60] on every axis).
package waveplot
