package waveplot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// WaveformMatrix returns the sample columns "0" to samples-1 of df as
// a df.N x samples matrix. Row i holds the waveform of the i'th row.
func WaveformMatrix(df *DataFrame, samples int) (*mat.Dense, error) {
	if df.N == 0 || samples <= 0 {
		return nil, errors.Errorf("waveplot: cannot build %dx%d waveform matrix", df.N, samples)
	}
	m := mat.NewDense(df.N, samples, nil)
	for j := 0; j < samples; j++ {
		f, ok := df.Columns[SampleColumn(j)]
		if !ok {
			return nil, errors.Errorf("waveplot: missing sample column %q in %s", SampleColumn(j), df.Name)
		}
		m.SetCol(j, f.Data)
	}
	return m, nil
}

// FirstZero returns the index of the first sample in row which is
// exactly 0, or len(row) if there is none. The waveform ends there.
func FirstZero(row []float64) int {
	for i, s := range row {
		if s == 0 {
			return i
		}
	}
	return len(row)
}
