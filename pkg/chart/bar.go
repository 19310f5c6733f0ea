package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/frame"
	"github.com/rg089/plotex/pkg/labels"
)

// DefaultBarWidth is the bar width used when none is given.
var DefaultBarWidth = vg.Points(12)

// BarOptions configures GroupReduce.
type BarOptions struct {
	Group  string        // Column whose distinct values become bars
	Value  string        // Numeric column to reduce per group
	Reduce frame.Reducer // Reduction; nil means frame.Mean

	Palette    []color.Color // Bar colors; nil means the deep palette
	Color      color.Color   // Fixed color for every bar; wins over Palette
	MultiColor bool          // One palette color per bar instead of the first
	KeepOrder  bool          // Keep sorted group order instead of interleaving labels
	Width      vg.Length     // Bar width; 0 means DefaultBarWidth
}

// Bars are the labels and heights drawn, left to right.
type Bars struct {
	Labels []string
	Values []float64
}

// GroupReduce draws one bar per distinct value of the group column, as tall
// as the reduced value column. Unless KeepOrder is set, labels are
// interleaved short, long, short so long labels do not sit side by side.
func GroupReduce(p *plot.Plot, f *frame.Frame, opts BarOptions) (*Bars, error) {
	reduce := opts.Reduce
	if reduce == nil {
		reduce = frame.Mean
	}
	groups, err := f.GroupReduce(opts.Group, opts.Value, reduce)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no rows to plot")
	}

	names := make([]string, len(groups))
	values := make([]float64, len(groups))
	for i, g := range groups {
		names[i], values[i] = g.Key, g.Value
	}
	if !opts.KeepOrder {
		names, values = labels.Interleave(names, values)
	}

	width := opts.Width
	if width == 0 {
		width = DefaultBarWidth
	}

	fills := colors(opts.Palette, "deep", len(values))
	for i, v := range values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bar %q", names[i])
		}
		bar.XMin = float64(i)
		bar.LineStyle.Width = 0
		switch {
		case opts.Color != nil:
			bar.Color = opts.Color
		case opts.MultiColor:
			bar.Color = fills[i]
		default:
			bar.Color = fills[0]
		}
		p.Add(bar)
	}
	p.NominalX(names...)
	return &Bars{Labels: names, Values: values}, nil
}

// StackOptions configures StackCount.
type StackOptions struct {
	Base       string        // Column whose values label the bars
	Stack      string        // Column whose values are counted and stacked
	Vertical   bool          // Vertical bars; horizontal by default
	Palette    []color.Color // Stack colors; nil means the pastel palette
	Width      vg.Length     // Bar width; 0 means DefaultBarWidth
	HideLegend bool
}

// StackCount draws one bar per distinct base value made of one segment per
// distinct stack value, each as long as the number of rows with that pair.
// Segments are stacked in order of first appearance and named in the legend.
func StackCount(p *plot.Plot, f *frame.Frame, opts StackOptions) (*frame.Crosstab, error) {
	ct, err := f.Crosstab(opts.Base, opts.Stack)
	if err != nil {
		return nil, err
	}
	if len(ct.Bases) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no rows to plot")
	}

	width := opts.Width
	if width == 0 {
		width = DefaultBarWidth
	}

	fills := colors(opts.Palette, "pastel", len(ct.Stacks))
	var prev *plotter.BarChart
	for i, name := range ct.Stacks {
		bar, err := plotter.NewBarChart(plotter.Values(ct.Counts[i]), width)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "stack %q", name)
		}
		bar.Horizontal = !opts.Vertical
		bar.Color = fills[i]
		bar.LineStyle.Width = 0
		if prev != nil {
			bar.StackOn(prev)
		}
		p.Add(bar)
		if !opts.HideLegend {
			p.Legend.Add(name, bar)
		}
		prev = bar
	}

	if opts.Vertical {
		p.NominalX(ct.Bases...)
	} else {
		p.NominalY(ct.Bases...)
	}
	return ct, nil
}
