// Package frame holds the tabular data charts are drawn from.
//
// A [Frame] wraps a go-gg table whose columns are kept as strings, the way
// they were read. Numeric access parses on demand, so a column can be used
// both as categories and as values:
//
//	f, err := frame.ReadCSV(r)
//	groups, err := f.GroupReduce("model", "accuracy", frame.Mean)
//
// Grouping helpers follow the conventions of the charts that use them:
// [Frame.Unique] keeps first-appearance order, [Frame.ValueCounts] sorts by
// descending count, and [Frame.GroupReduce] sorts by group key.
package frame

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/rg089/plotex/pkg/errors"
)

// Frame is an immutable table of string columns.
type Frame struct {
	t *table.Table
}

// ReadCSV reads a frame from CSV. The first record names the columns.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read csv")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "csv has no header")
	}
	return New(records[0], records[1:])
}

// New builds a frame from column names and rows of cells.
func New(cols []string, rows [][]string) (*Frame, error) {
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if c == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "empty column name")
		}
		if seen[c] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "duplicate column %q", c)
		}
		seen[c] = true
	}
	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"row %d has %d fields, want %d", i+1, len(row), len(cols))
		}
	}
	return &Frame{t: table.TableFromStrings(cols, rows, false)}, nil
}

// Table returns the underlying table.
func (f *Frame) Table() *table.Table { return f.t }

// Len returns the number of rows.
func (f *Frame) Len() int { return f.t.Len() }

// Columns returns the column names in order.
func (f *Frame) Columns() []string { return f.t.Columns() }

// Has reports whether the frame has column col.
func (f *Frame) Has(col string) bool { return slices.Contains(f.t.Columns(), col) }

// Strings returns the cells of col.
func (f *Frame) Strings(col string) ([]string, error) {
	if !f.Has(col) {
		return nil, f.unknown(col)
	}
	if f.t.Len() == 0 {
		return []string{}, nil
	}
	vals, ok := f.t.Column(col).([]string)
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "column %q is not a string column", col)
	}
	return vals, nil
}

// Floats parses the cells of col as numbers. Empty cells and "NaN" parse
// as NaN.
func (f *Frame) Floats(col string) ([]float64, error) {
	cells, err := f.Strings(col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			c = "NaN"
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColumn, err,
				"column %q row %d: not a number", col, i+1)
		}
		out[i] = v
	}
	return out, nil
}

// Unique returns the distinct values of col in order of first appearance.
func (f *Frame) Unique(col string) ([]string, error) {
	cells, err := f.Strings(col)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, c := range cells {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

// ValueCount is the number of rows holding Value.
type ValueCount struct {
	Value string
	N     int
}

// ValueCounts counts the distinct values of col, most frequent first. Equal
// counts keep first-appearance order.
func (f *Frame) ValueCounts(col string) ([]ValueCount, error) {
	uniq, err := f.Unique(col)
	if err != nil {
		return nil, err
	}
	cells, _ := f.Strings(col)
	n := make(map[string]int, len(uniq))
	for _, c := range cells {
		n[c]++
	}
	counts := make([]ValueCount, len(uniq))
	for i, u := range uniq {
		counts[i] = ValueCount{Value: u, N: n[u]}
	}
	slices.SortStableFunc(counts, func(a, b ValueCount) int { return b.N - a.N })
	return counts, nil
}

// Filter returns the rows where col equals value.
func (f *Frame) Filter(col, value string) (*Frame, error) {
	if !f.Has(col) {
		return nil, f.unknown(col)
	}
	g := table.Filter(f.t, func(v string) bool { return v == value }, col)
	t := g.Table(table.RootGroupID)
	if t == nil {
		t = table.TableFromStrings(f.Columns(), nil, false)
	}
	return &Frame{t: t}, nil
}

func (f *Frame) unknown(col string) error {
	return errors.New(errors.ErrCodeInvalidColumn,
		"unknown column %q (have: %s)", col, strings.Join(f.t.Columns(), ", "))
}
