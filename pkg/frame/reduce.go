package frame

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/rg089/plotex/pkg/errors"
)

// Reducer collapses the values of one group to a single number.
type Reducer func(xs []float64) float64

// Built-in reducers.
var (
	Mean    Reducer = stats.Mean
	GeoMean Reducer = stats.GeoMean
	Sum     Reducer = func(xs []float64) float64 { return stats.Sample{Xs: xs}.Sum() }
	Count   Reducer = func(xs []float64) float64 { return float64(len(xs)) }
	Median  Reducer = func(xs []float64) float64 { return stats.Sample{Xs: xs}.Quantile(0.5) }
	Min     Reducer = minOf
	Max     Reducer = maxOf
)

func minOf(xs []float64) float64 {
	lo, _ := stats.Bounds(xs)
	return lo
}

func maxOf(xs []float64) float64 {
	_, hi := stats.Bounds(xs)
	return hi
}

var reducers = map[string]Reducer{
	"mean":    Mean,
	"geomean": GeoMean,
	"sum":     Sum,
	"count":   Count,
	"median":  Median,
	"min":     Min,
	"max":     Max,
}

// Reducers returns the names accepted by ReducerByName, sorted.
func Reducers() []string {
	names := make([]string, 0, len(reducers))
	for name := range reducers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ReducerByName returns a built-in reducer. Names are case-insensitive.
func ReducerByName(name string) (Reducer, error) {
	r, ok := reducers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown reducer %q (known: %s)", name, strings.Join(Reducers(), ", "))
	}
	return r, nil
}

// Group is one reduced group.
type Group struct {
	Key   string
	Value float64
}

// GroupReduce groups the rows by the group column and reduces the value
// column of each group. Missing values (empty or NaN cells) are left out of
// the reduction, and a group with no values at all is dropped. Groups are
// sorted by key, numerically when every key is a number.
func (f *Frame) GroupReduce(group, value string, reduce Reducer) ([]Group, error) {
	if !f.Has(group) {
		return nil, f.unknown(group)
	}
	if _, err := f.Floats(value); err != nil {
		return nil, err
	}
	if f.Len() == 0 {
		return nil, nil
	}

	g := table.GroupBy(f.t, group)
	out := make([]Group, 0, len(g.Tables()))
	for _, gid := range g.Tables() {
		sub := &Frame{t: g.Table(gid)}
		xs, err := sub.Floats(value)
		if err != nil {
			return nil, err
		}
		xs = DropNaN(xs)
		if len(xs) == 0 {
			continue
		}
		out = append(out, Group{Key: fmt.Sprint(gid.Label()), Value: reduce(xs)})
	}
	sortGroups(out)
	return out, nil
}

// DropNaN returns xs without its NaN values.
func DropNaN(xs []float64) []float64 {
	return slices.DeleteFunc(slices.Clone(xs), math.IsNaN)
}

func sortGroups(gs []Group) {
	nums := make(map[string]float64, len(gs))
	for _, g := range gs {
		v, err := strconv.ParseFloat(g.Key, 64)
		if err != nil {
			slices.SortFunc(gs, func(a, b Group) int { return strings.Compare(a.Key, b.Key) })
			return
		}
		nums[g.Key] = v
	}
	slices.SortFunc(gs, func(a, b Group) int { return cmp.Compare(nums[a.Key], nums[b.Key]) })
}

// Crosstab counts rows for every (stack, base) pair. Bases and Stacks keep
// first-appearance order; Counts[i][j] is the number of rows with Stacks[i]
// and Bases[j].
type Crosstab struct {
	Bases  []string
	Stacks []string
	Counts [][]float64
}

// Crosstab counts the rows of f by base and stack column.
func (f *Frame) Crosstab(base, stack string) (*Crosstab, error) {
	bases, err := f.Unique(base)
	if err != nil {
		return nil, err
	}
	stacks, err := f.Unique(stack)
	if err != nil {
		return nil, err
	}
	bcol, _ := f.Strings(base)
	scol, _ := f.Strings(stack)

	bi := indexOf(bases)
	si := indexOf(stacks)
	counts := make([][]float64, len(stacks))
	for i := range counts {
		counts[i] = make([]float64, len(bases))
	}
	for row := range bcol {
		counts[si[scol[row]]][bi[bcol[row]]]++
	}
	return &Crosstab{Bases: bases, Stacks: stacks, Counts: counts}, nil
}

func indexOf(vals []string) map[string]int {
	m := make(map[string]int, len(vals))
	for i, v := range vals {
		m[v] = i
	}
	return m
}
