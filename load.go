package waveplot

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/csvutil"
)

// Names of the fixed columns of a waveform data frame.
const (
	ColID    = "id"
	ColClass = "class"
	ColX     = "x"
	ColY     = "y"
	ColZ     = "z"

	// ColLabel is the String field added by AddLabels.
	ColLabel = "label"
)

// DefaultSamples is the number of amplitude samples per row.
const DefaultSamples = 200

// SampleColumn returns the name of the i'th sample column.
func SampleColumn(i int) string { return strconv.Itoa(i) }

// LoadOptions controls how rows are read. The zero value reads
// DefaultSamples samples from single space separated rows.
type LoadOptions struct {
	// Samples is the number of amplitude samples following x, y, z.
	Samples int

	// Comma is the field delimiter. Zero means ' '.
	Comma rune

	// KeepZ disables the inversion of the z axis.
	KeepZ bool
}

func (o *LoadOptions) samples() int {
	if o == nil || o.Samples <= 0 {
		return DefaultSamples
	}
	return o.Samples
}

func (o *LoadOptions) comma() rune {
	if o == nil || o.Comma == 0 {
		return ' '
	}
	return o.Comma
}

// LoadFile opens the named file and loads it, see Load.
func LoadFile(name string, opts *LoadOptions) (*DataFrame, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "waveplot: could not open data file")
	}
	defer f.Close()

	df, err := Load(f, opts)
	if err != nil {
		return nil, err
	}
	df.Name = name
	return df, nil
}

// Load reads waveform rows from r. Each row has the form
//
//	id class x y z s0 ... s(n-1)
//
// where id and class are integers. Lines starting with '#' are
// skipped. Unless opts.KeepZ is set, z is replaced by max(z) - z.
func Load(r io.Reader, opts *LoadOptions) (*DataFrame, error) {
	n := opts.samples()
	width := 5 + n

	reader := csv.NewReader(bufio.NewReader(r))
	reader.Comma = opts.comma()
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = width

	tbl := &csvutil.Table{Reader: reader}
	defer tbl.Close()

	rows, err := tbl.ReadRows(0, -1)
	if err != nil {
		return nil, errors.Wrap(err, "waveplot: could not read rows")
	}
	defer rows.Close()

	var (
		id, class int64
		x, y, z   float64
		samples   = make([]float64, n)
		dest      = make([]interface{}, width)
	)
	dest[0], dest[1], dest[2], dest[3], dest[4] = &id, &class, &x, &y, &z
	for i := range samples {
		dest[5+i] = &samples[i]
	}

	cols := make([][]float64, width)
	row := 0
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "waveplot: could not scan row %d", row+1)
		}
		cols[0] = append(cols[0], float64(id))
		cols[1] = append(cols[1], float64(class))
		cols[2] = append(cols[2], x)
		cols[3] = append(cols[3], y)
		cols[4] = append(cols[4], z)
		for i, s := range samples {
			cols[5+i] = append(cols[5+i], s)
		}
		row++
	}
	if err := rows.Err(); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "waveplot: error while processing row %d", row+1)
	}

	df := NewDataFrame("waveforms", nil)
	df.N = row
	names := []string{ColID, ColClass, ColX, ColY, ColZ}
	for i, col := range cols {
		t := Float
		if i < 2 {
			t = Int
		}
		if col == nil {
			col = []float64{}
		}
		name := SampleColumn(i - len(names))
		if i < len(names) {
			name = names[i]
		}
		df.Columns[name] = Field{Type: t, Data: col, Pool: df.Pool}
	}

	if opts == nil || !opts.KeepZ {
		InvertZ(df)
	}
	return df, nil
}

// InvertZ replaces z by max(z) - z in place.
func InvertZ(df *DataFrame) {
	f, ok := df.Columns[ColZ]
	if !ok || df.N == 0 {
		return
	}
	_, max, _, maxi := f.MinMax()
	if maxi == -1 {
		return
	}
	f.Apply(func(z float64) float64 { return max - z })
}

// AddLabels adds the String field ColLabel naming the class of every
// row. Classes without a label are named by their number.
func AddLabels(df *DataFrame, classField string, labels map[int]string) error {
	classes, ok := df.Columns[classField]
	if !ok {
		return errors.Errorf("waveplot: no class field %q in %s", classField, df.Name)
	}
	f := NewField(df.N, String, df.Pool)
	for i, class := range classes.Data {
		f.Data[i] = float64(df.Pool.Add(groupName(labels, class)))
	}
	df.Columns[ColLabel] = f
	return nil
}
