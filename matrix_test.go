package waveplot

import (
	"testing"
)

func TestWaveformMatrix(t *testing.T) {
	df := loadPoints(t)
	m, err := WaveformMatrix(df, 4)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if r, c := m.Dims(); r != 5 || c != 4 {
		t.Fatalf("Got %dx%d matrix", r, c)
	}
	want := [][]float64{
		{4, 3, 2, 1},
		{6, 5, 0, 0},
		{0, 1, 1, 1},
		{2, 2, 2, 2},
		{9, 8, 7, 6},
	}
	for i, row := range want {
		for j, v := range row {
			if got := m.At(i, j); got != v {
				t.Errorf("At(%d,%d) = %f, want %f", i, j, got, v)
			}
		}
	}

	if _, err := WaveformMatrix(df, 5); err == nil {
		t.Errorf("Missing error for missing sample column")
	}
	if _, err := WaveformMatrix(NewDataFrame("empty", nil), 4); err == nil {
		t.Errorf("Missing error for empty data frame")
	}
}

func TestFirstZero(t *testing.T) {
	tests := []struct {
		row  []float64
		want int
	}{
		{[]float64{4, 3, 2, 1}, 4},
		{[]float64{6, 5, 0, 0}, 2},
		{[]float64{0, 1, 1}, 0},
		{[]float64{1, -0.0, 1}, 1},
		{[]float64{1e-9, 2}, 2},
		{nil, 0},
	}
	for i, tc := range tests {
		if got := FirstZero(tc.row); got != tc.want {
			t.Errorf("%d: FirstZero(%v) = %d, want %d", i, tc.row, got, tc.want)
		}
	}
}
