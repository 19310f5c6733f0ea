package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/frame"
)

// Pie is a plot.Plotter drawing a pie chart centered on the origin with
// unit radius. Wedges start at 3 o'clock and run counterclockwise.
type Pie struct {
	Values []float64
	Labels []string
	Colors []color.Color

	// Format renders each wedge's value inside it; empty hides values.
	Format string

	// TextStyle is used for wedge and value labels.
	TextStyle text.Style
}

var _ plot.Plotter = (*Pie)(nil)

// segments per full turn used to approximate wedge arcs
const pieSegments = 180

// Plot implements plot.Plotter.
func (pc *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	total := 0.0
	for _, v := range pc.Values {
		total += v
	}
	if total <= 0 {
		return
	}

	trX, trY := plt.Transforms(&c)
	center := vg.Point{X: trX(0), Y: trY(0)}
	r := min(trX(1)-trX(0), trY(1)-trY(0))
	at := func(radius vg.Length, angle float64) vg.Point {
		return vg.Point{
			X: center.X + radius*vg.Length(math.Cos(angle)),
			Y: center.Y + radius*vg.Length(math.Sin(angle)),
		}
	}

	sty := pc.TextStyle
	if sty.Handler == nil {
		sty.Handler = plt.TextHandler
	}

	start := 0.0
	for i, v := range pc.Values {
		sweep := 2 * math.Pi * v / total
		n := max(2, int(math.Ceil(sweep/(2*math.Pi)*pieSegments)))
		pts := make([]vg.Point, 0, n+2)
		pts = append(pts, center)
		for k := 0; k <= n; k++ {
			pts = append(pts, at(r, start+sweep*float64(k)/float64(n)))
		}
		if i < len(pc.Colors) && pc.Colors[i] != nil {
			c.FillPolygon(pc.Colors[i], pts)
		}

		mid := start + sweep/2
		if pc.Format != "" {
			vs := sty
			vs.XAlign, vs.YAlign = text.XCenter, text.YCenter
			c.FillText(vs, at(r*0.6, mid), fmt.Sprintf(pc.Format, v))
		}
		if i < len(pc.Labels) {
			ls := sty
			ls.XAlign, ls.YAlign = text.XLeft, text.YCenter
			if math.Cos(mid) < 0 {
				ls.XAlign = text.XRight
			}
			c.FillText(ls, at(r*1.1, mid), pc.Labels[i])
		}
		start += sweep
	}
}

// DataRange implements plot.DataRanger, leaving room for outside labels.
func (pc *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1.4, 1.4, -1.25, 1.25
}

// PieOptions configures ColumnFrequency.
type PieOptions struct {
	Column    string        // Column whose value frequencies make the wedges
	Palette   []color.Color // Wedge colors; nil means the deep palette
	RawCounts bool          // Label wedges with counts instead of percentages
}

// ColumnFrequency draws a pie chart of how often each value of a column
// occurs, most frequent first. Wedges are labeled with their percentage
// ("42%") or, with RawCounts, their count.
func ColumnFrequency(p *plot.Plot, f *frame.Frame, opts PieOptions) (*Pie, error) {
	counts, err := f.ValueCounts(opts.Column)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no rows to plot")
	}

	total := 0
	for _, c := range counts {
		total += c.N
	}
	pie := &Pie{
		Values:    make([]float64, len(counts)),
		Labels:    make([]string, len(counts)),
		Colors:    colors(opts.Palette, "deep", len(counts)),
		Format:    "%.0f%%",
		TextStyle: p.Legend.TextStyle,
	}
	for i, c := range counts {
		pie.Labels[i] = c.Value
		pie.Values[i] = float64(c.N) / float64(total) * 100
		if opts.RawCounts {
			pie.Values[i] = float64(c.N)
		}
	}
	if opts.RawCounts {
		pie.Format = "%.0f"
	}

	p.Add(pie)
	p.HideAxes()
	return pie, nil
}
