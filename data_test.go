package waveplot

import (
	"bytes"
	"strings"
	"testing"
)

// points has 4 samples per row.
const points = `1 0 -10 5 3 4 3 2 1
2 1 20 -5 7 6 5 0 0
3 0 0 0 1 0 1 1 1
# a comment line
4 2 15 15 11 2 2 2 2
5 1 -30 40 0 9 8 7 6
`

func loadPoints(t *testing.T) *DataFrame {
	t.Helper()
	df, err := Load(strings.NewReader(points), &LoadOptions{Samples: 4})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	return df
}

func TestFilter(t *testing.T) {
	df := loadPoints(t)

	land := Filter(df, ColClass, 0)
	if land.N != 2 {
		t.Errorf("Got %d, want 2", land.N)
	}
	for i, id := range land.Columns[ColID].Data {
		if id != 1 && id != 3 {
			t.Errorf("Element %d has id %v", i, id)
		}
	}

	none := Filter(df, ColClass, 7)
	if none.N != 0 || len(none.Columns) != len(df.Columns) {
		t.Errorf("Got %d rows, %d fields", none.N, len(none.Columns))
	}

	missing := Filter(df, "nosuchfield", 0)
	if missing.N != 0 {
		t.Errorf("Got %d rows for missing field", missing.N)
	}
}

func TestLevelsAndUnique(t *testing.T) {
	df := loadPoints(t)

	if levels := Levels(df, ColClass); !sameElements(levels.Elements(), []float64{0, 1, 2}) {
		t.Errorf("Got levels %v", levels)
	}

	u := Unique(df, ColClass)
	if len(u) != 3 || u[0] != 0 || u[1] != 1 || u[2] != 2 {
		t.Errorf("Got unique %v", u)
	}

	parts := Partition(df, ColClass, u)
	if len(parts) != 3 || parts[0].N != 2 || parts[1].N != 2 || parts[2].N != 1 {
		t.Errorf("Bad partition %v", parts)
	}
}

func TestMinMax(t *testing.T) {
	df := loadPoints(t)

	min, max, a, b := MinMax(df, ColX)
	if min != -30 || a != 4 {
		t.Errorf("Min: Got %f/%d, want -30/4", min, a)
	}
	if max != 20 || b != 1 {
		t.Errorf("Max: Got %f/%d, want 20/1", max, b)
	}

	if _, _, a, b := MinMax(df, "nosuchfield"); a != -1 || b != -1 {
		t.Errorf("Got %d %d for missing field", a, b)
	}
}

func TestFieldString(t *testing.T) {
	pool := NewStringPool()
	s := NewField(2, String, pool)
	s.Data[0] = float64(pool.Add("land"))
	s.Data[1] = float64(pool.Add("water"))

	tests := []struct {
		f    Field
		x    float64
		want string
	}{
		{NewField(1, Int, nil), 3, "3"},
		{NewField(1, Float, nil), 2.5, "2.5"},
		{s, s.Data[1], "water"},
		{s, 17, "--NA--"},
	}
	for i, tc := range tests {
		if got := tc.f.String(tc.x); got != tc.want {
			t.Errorf("%d: Got %q, want %q", i, got, tc.want)
		}
	}
}

func TestPrint(t *testing.T) {
	df := loadPoints(t)
	buf := &bytes.Buffer{}
	if err := df.Print(buf, ColID, ColClass, ColZ); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("Got %d lines:\n%s", len(lines), buf.String())
	}
	if f := strings.Fields(lines[2]); len(f) != 3 || f[0] != "1" || f[2] != "8" {
		t.Errorf("Got first row %q", lines[2])
	}
}

func TestStringPool(t *testing.T) {
	sp := NewStringPool()
	a, b := sp.Add("land"), sp.Add("water")
	if sp.Add("land") != a || a == b {
		t.Errorf("Got %d %d", a, b)
	}
	if sp.Get(b) != "water" || sp.Get(-1) != "--NA--" {
		t.Errorf("Bad get")
	}
}

func TestAddLabels(t *testing.T) {
	df := loadPoints(t)
	if err := AddLabels(df, ColClass, DefaultLabels); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	f := df.Columns[ColLabel]
	if f.Type != String || len(f.Data) != df.N {
		t.Fatalf("Got %s field with %d values", f.Type, len(f.Data))
	}
	want := []string{"land", "water", "land", "2", "water"}
	for i, x := range f.Data {
		if got := f.String(x); got != want[i] {
			t.Errorf("Row %d: got %q, want %q", i, got, want[i])
		}
	}
	if df.Columns[ColLabel].Data[0] != df.Columns[ColLabel].Data[2] {
		t.Errorf("Label land not interned once")
	}

	buf := &bytes.Buffer{}
	if err := df.Print(buf, ColID, ColLabel); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "water") {
		t.Errorf("Got\n%s", buf.String())
	}

	if err := AddLabels(df, "kind", nil); err == nil {
		t.Errorf("Missing error for unknown class field")
	}
}
