package waveplot

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
)

// DataFrame is a column-oriented table. Every column holds N values.
type DataFrame struct {
	// Name describes the data, e.g. the file it was loaded from.
	Name string

	// N is the number of rows.
	N int

	// Columns maps field names to fields.
	Columns map[string]Field

	// Pool stores the strings of all String fields in this frame.
	Pool *StringPool
}

// NewDataFrame returns an empty data frame. A nil pool gets replaced
// by a fresh one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]Field),
		Pool:    pool,
	}
}

// Has reports whether df contains the field.
func (df *DataFrame) Has(field string) bool {
	_, ok := df.Columns[field]
	return ok
}

// FieldNames returns the sorted names of all fields in df.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, 0, len(df.Columns))
	for n := range df.Columns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Print dumps fields of df as a tab aligned table to w. Without fields
// all fields are printed in sorted order.
func (df *DataFrame) Print(w io.Writer, fields ...string) error {
	if len(fields) == 0 {
		fields = df.FieldNames()
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "# %s (%d rows)\n", df.Name, df.N)
	fmt.Fprintln(tw, strings.Join(fields, "\t"))
	row := make([]string, len(fields))
	for i := 0; i < df.N; i++ {
		for j, name := range fields {
			f, ok := df.Columns[name]
			if !ok {
				row[j] = "--NA--"
				continue
			}
			row[j] = f.String(f.Data[i])
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Field is one column of a DataFrame.
type Field struct {
	// Type of the field.
	Type FieldType

	// Data holds the values. Int fields store whole numbers, String
	// fields the index into Pool.
	Data []float64

	// Pool is used for String fields.
	Pool *StringPool
}

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Int FieldType = iota
	Float
	String
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	}
	return "FieldType(" + strconv.Itoa(int(t)) + ")"
}

// NewField makes a zero-filled field with n values.
func NewField(n int, t FieldType, pool *StringPool) Field {
	return Field{
		Type: t,
		Data: make([]float64, n),
		Pool: pool,
	}
}

// String formats the value x according to the type of f.
func (f Field) String(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	switch f.Type {
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case String:
		if f.Pool == nil {
			return "--NA--"
		}
		return f.Pool.Get(int(x))
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Apply replaces every value x of f by fn(x).
func (f Field) Apply(fn func(float64) float64) {
	for i, x := range f.Data {
		f.Data[i] = fn(x)
	}
}

// MinMax returns the minimum and maximum of f together with their
// index. NaN values are skipped; mini and maxi are -1 if f has no
// valid value.
func (f Field) MinMax() (min, max float64, mini, maxi int) {
	min, max = math.Inf(+1), math.Inf(-1)
	mini, maxi = -1, -1
	for i, x := range f.Data {
		if math.IsNaN(x) {
			continue
		}
		if x < min {
			min, mini = x, i
		}
		if x > max {
			max, maxi = x, i
		}
	}
	return min, max, mini, maxi
}

// Levels returns the distinct values of f.
func (f Field) Levels() FloatSet {
	levels := NewFloatSet()
	for _, x := range f.Data {
		levels.Add(x)
	}
	return levels
}

// Filter extracts all rows from df where field == value. A missing
// field matches no row.
func Filter(df *DataFrame, field string, value float64) *DataFrame {
	f := df.Columns[field]
	var rows []int
	for i, x := range f.Data {
		if x == value {
			rows = append(rows, i)
		}
	}

	result := NewDataFrame(fmt.Sprintf("%s|%s=%s", df.Name, field, f.String(value)), df.Pool)
	result.N = len(rows)
	for n, col := range df.Columns {
		nf := NewField(len(rows), col.Type, col.Pool)
		for j, i := range rows {
			nf.Data[j] = col.Data[i]
		}
		result.Columns[n] = nf
	}
	return result
}

// Levels returns the distinct values of field in df.
func Levels(df *DataFrame, field string) FloatSet {
	f, ok := df.Columns[field]
	if !ok {
		return NewFloatSet()
	}
	return f.Levels()
}

// Unique returns the distinct values of field in order of their first
// appearance.
func Unique(df *DataFrame, field string) []float64 {
	f, ok := df.Columns[field]
	if !ok {
		return nil
	}
	seen := NewFloatSet()
	var u []float64
	for _, x := range f.Data {
		if seen.Contains(x) {
			continue
		}
		seen.Add(x)
		u = append(u, x)
	}
	return u
}

// Partition splits df in as many data frames as there are levels.
// The i'th frame contains the rows with field == levels[i].
func Partition(df *DataFrame, field string, levels []float64) []*DataFrame {
	parts := make([]*DataFrame, len(levels))
	for i, level := range levels {
		parts[i] = Filter(df, field, level)
	}
	return parts
}

// MinMax determines minimum and maximum value of field in df.
func MinMax(df *DataFrame, field string) (min, max float64, mini, maxi int) {
	f, ok := df.Columns[field]
	if !ok {
		return math.NaN(), math.NaN(), -1, -1
	}
	return f.MinMax()
}
