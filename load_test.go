package waveplot

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	df := loadPoints(t)

	if df.N != 5 {
		t.Errorf("Got %d rows, want 5", df.N)
	}
	want := []string{"0", "1", "2", "3", ColClass, ColID, ColX, ColY, ColZ}
	if names := df.FieldNames(); !slices.Equal(names, want) {
		t.Errorf("Got fields %v", names)
	}
	if df.Columns[ColID].Type != Int || df.Columns[ColClass].Type != Int || df.Columns[ColX].Type != Float {
		t.Errorf("Bad field types")
	}
	if s := df.Columns[SampleColumn(3)].Data; s[0] != 1 || s[4] != 6 {
		t.Errorf("Got last samples %v", s)
	}

	// z is inverted: max(z) - z with max(z) = 11
	wantZ := []float64{8, 4, 10, 0, 11}
	for i, z := range df.Columns[ColZ].Data {
		if z != wantZ[i] {
			t.Errorf("Row %d: got z = %f, want %f", i, z, wantZ[i])
		}
	}
}

func TestLoadKeepZ(t *testing.T) {
	df, err := Load(strings.NewReader(points), &LoadOptions{Samples: 4, KeepZ: true})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if z := df.Columns[ColZ].Data; z[0] != 3 || z[3] != 11 {
		t.Errorf("Got z %v", z)
	}
}

func TestLoadComma(t *testing.T) {
	input := "1,1,0.5,0.5,0.5,1,2\n2,0,1,1,1,3,0\n"
	df, err := Load(strings.NewReader(input), &LoadOptions{Samples: 2, Comma: ','})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if df.N != 2 || df.Columns[SampleColumn(1)].Data[0] != 2 {
		t.Errorf("Got %d rows, samples %v", df.N, df.Columns[SampleColumn(1)].Data)
	}
}

func TestLoadEmpty(t *testing.T) {
	df, err := Load(strings.NewReader(""), nil)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if df.N != 0 || len(df.Columns) != 5+DefaultSamples {
		t.Errorf("Got %d rows and %d fields", df.N, len(df.Columns))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"short row", "1 0 1 2 3 4 5 6\n"},
		{"long row", "1 0 1 2 3 4 5 6 7 8\n"},
		{"bad number", "1 0 1 2 abc 4 5 6 7\n"},
		{"float class", "1 0.5 1 2 3 4 5 6 7\n"},
	}
	for _, tc := range tests {
		_, err := Load(strings.NewReader(tc.input), &LoadOptions{Samples: 4})
		if err == nil {
			t.Errorf("%s: missing error", tc.name)
			continue
		}
		if !strings.HasPrefix(err.Error(), "waveplot: ") {
			t.Errorf("%s: got %q", tc.name, err)
		}
	}
}

func TestLoadErrorRow(t *testing.T) {
	tests := []struct {
		input, row string
	}{
		{"1 0 1 2 x 4 5 6 7\n", "row 1"},
		{"1 0 1 2 3 4 5 6 7\n2 1 1 2 3\n", "row 2"},
		{"# header\n1 0 1 2 3 4 5 6 7\n2 1 1 2 3 4 5 6 7\n3 1.5 1 2 3 4 5 6 7\n", "row 3"},
	}
	for i, tc := range tests {
		_, err := Load(strings.NewReader(tc.input), &LoadOptions{Samples: 4})
		if err == nil {
			t.Errorf("%d: missing error", i)
			continue
		}
		if !strings.Contains(err.Error(), tc.row+":") {
			t.Errorf("%d: got %q, want %s", i, err, tc.row)
		}
	}
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "points.txt")
	if err := os.WriteFile(name, []byte(points), 0o644); err != nil {
		t.Fatal(err)
	}
	df, err := LoadFile(name, &LoadOptions{Samples: 4})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if df.Name != name || df.N != 5 {
		t.Errorf("Got %q with %d rows", df.Name, df.N)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Errorf("Missing error for missing file")
	}
}

