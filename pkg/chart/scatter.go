package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/frame"
)

// Glyphs are the marker shapes, assigned to groups in order and reused
// when there are more groups than shapes.
var Glyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.TriangleGlyph{},
	draw.SquareGlyph{},
	draw.CrossGlyph{},
	draw.PyramidGlyph{},
	draw.BoxGlyph{},
	draw.PlusGlyph{},
	draw.RingGlyph{},
}

// DefaultMarkerRadius is the glyph radius used when none is given.
var DefaultMarkerRadius = vg.Points(3)

// ScatterOptions configures Marker.
type ScatterOptions struct {
	X, Y        string        // Numeric columns for the axes
	MarkerCol   string        // Column whose values pick the glyph
	Palette     []color.Color // Group colors; nil means the pastel palette
	SingleColor bool          // Draw every group in the first palette color
	Radius      vg.Length     // Glyph radius; 0 means DefaultMarkerRadius
	HideLegend  bool
}

// Marker draws a scatter plot with one glyph and color per distinct value of
// the marker column, in order of first appearance, and names each group in
// the legend. Rows missing either coordinate are skipped, and so is a group
// left with no points. It returns the names of the groups drawn.
func Marker(p *plot.Plot, f *frame.Frame, opts ScatterOptions) ([]string, error) {
	for _, col := range []string{opts.X, opts.Y} {
		if _, err := f.Floats(col); err != nil {
			return nil, err
		}
	}
	groups, err := f.Unique(opts.MarkerCol)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no rows to plot")
	}

	radius := opts.Radius
	if radius == 0 {
		radius = DefaultMarkerRadius
	}
	fills := colors(opts.Palette, "pastel", len(groups))

	var drawn []string
	for i, g := range groups {
		sub, err := f.Filter(opts.MarkerCol, g)
		if err != nil {
			return nil, err
		}
		xs, _ := sub.Floats(opts.X)
		ys, _ := sub.Floats(opts.Y)
		pts := make(plotter.XYs, 0, len(xs))
		for j := range xs {
			if math.IsNaN(xs[j]) || math.IsNaN(ys[j]) {
				continue
			}
			pts = append(pts, plotter.XY{X: xs[j], Y: ys[j]})
		}
		if len(pts) == 0 {
			continue
		}

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColumn, err, "group %q", g)
		}
		s.GlyphStyle.Shape = Glyphs[i%len(Glyphs)]
		s.GlyphStyle.Radius = radius
		s.GlyphStyle.Color = fills[i]
		if opts.SingleColor {
			s.GlyphStyle.Color = fills[0]
		}
		p.Add(s)
		if !opts.HideLegend {
			p.Legend.Add(g, s)
		}
		drawn = append(drawn, g)
	}
	if len(drawn) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no complete points to plot")
	}
	return drawn, nil
}

// Embeddings is Marker under the name used for plotting 2-D embeddings.
var Embeddings = Marker
