// Package chart draws bar, pie and scatter charts from a [frame.Frame] with
// gonum.org/v1/plot, styled by rc parameters.
//
// A typical figure is built in three steps:
//
//	p, err := chart.New(params)             // styled empty plot
//	bars, err := chart.GroupReduce(p, f, chart.BarOptions{Group: "model", Value: "acc"})
//	err = chart.Save(ctx, p, "fig.pdf", w, h) // w, h in inches, e.g. from sizing
//
// Charts never read global state: fonts, colors and tick lengths all come
// from the [rc.Params] given to [Apply].
package chart

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/rc"
	"github.com/rg089/plotex/pkg/style"
)

// typeface is the font family bundled with gonum/plot.
const typeface font.Typeface = "Liberation"

// Option configures New and Apply.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger for style warnings. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New returns an empty plot styled by params.
func New(params *rc.Params, opts ...Option) (*plot.Plot, error) {
	p := plot.New()
	if err := Apply(p, params, opts...); err != nil {
		return nil, err
	}
	return p, nil
}

// Apply styles p from params: font family, sizes and weights of every text
// element, tick lengths, background and axis colors, and a grid when
// axes.grid is true. Apply adds the grid as a plotter, so call it once per
// plot. Colors that cannot be parsed are logged and leave the plot's
// default in place.
func Apply(p *plot.Plot, params *rc.Params, opts ...Option) error {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	family, _ := params.Get("font.family")
	variant := fontVariant(family)

	texts := []struct {
		sty    *text.Style
		size   string
		weight string
	}{
		{&p.Title.TextStyle, rc.AxesTitleSize, rc.AxesTitleWeight},
		{&p.X.Label.TextStyle, rc.AxesLabelSize, rc.AxesLabelWeight},
		{&p.Y.Label.TextStyle, rc.AxesLabelSize, rc.AxesLabelWeight},
		{&p.X.Tick.Label, rc.XTickLabelSize, rc.FontWeight},
		{&p.Y.Tick.Label, rc.YTickLabelSize, rc.FontWeight},
		{&p.Legend.TextStyle, rc.LegendFontSize, rc.FontWeight},
	}
	for _, t := range texts {
		size, err := params.FontSize(t.size)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidStyle, err, "font size %s", t.size)
		}
		t.sty.Font.Typeface = typeface
		t.sty.Font.Variant = variant
		t.sty.Font.Size = vg.Points(size)
		t.sty.Font.Weight = fontWeight(params.Weight(t.weight))
	}

	if v, err := params.Float("xtick.major.size"); err == nil {
		p.X.Tick.Length = vg.Points(v)
	}
	if v, err := params.Float("ytick.major.size"); err == nil {
		p.Y.Tick.Length = vg.Points(v)
	}

	if c, ok := o.color(params, "axes.facecolor"); ok {
		p.BackgroundColor = c
	}
	if c, ok := o.color(params, "axes.edgecolor"); ok {
		p.X.LineStyle.Color = c
		p.Y.LineStyle.Color = c
	}

	if grid, _ := params.Bool("axes.grid"); grid {
		g := plotter.NewGrid()
		if c, ok := o.color(params, "grid.color"); ok {
			g.Vertical.Color = c
			g.Horizontal.Color = c
		}
		if w, err := params.Float("grid.linewidth"); err == nil {
			g.Vertical.Width = vg.Points(w)
			g.Horizontal.Width = vg.Points(w)
		}
		p.Add(g)
	}
	return nil
}

// color returns the color of key. Unset or unparseable colors report false.
func (o options) color(params *rc.Params, key string) (color.Color, bool) {
	v, ok := params.Get(key)
	if !ok {
		return nil, false
	}
	c, err := style.ParseColor(v)
	if err != nil {
		o.logger.Warn("Ignoring unsupported color", "param", key, "value", v)
		return nil, false
	}
	return c, true
}

// fontVariant maps a font.family value to a Liberation variant. Only the
// first family of a comma-separated list is considered.
func fontVariant(family string) font.Variant {
	family, _, _ = strings.Cut(family, ",")
	switch strings.ToLower(strings.Trim(strings.TrimSpace(family), `"'`)) {
	case "serif", "times", "times new roman", "computer modern roman", "cmr10":
		return "Serif"
	case "monospace", "courier", "courier new":
		return "Mono"
	default:
		return "Sans"
	}
}

// fontWeight maps an rc weight to a face weight. The bundled faces have no
// light cut, so light renders as normal.
func fontWeight(w string) xfont.Weight {
	if w == rc.WeightBold {
		return xfont.WeightBold
	}
	return xfont.WeightNormal
}

// colors returns n colors from palette, or from the named fallback palette
// when palette is empty.
func colors(palette []color.Color, fallback string, n int) []color.Color {
	if len(palette) == 0 {
		palette, _ = style.Palette(fallback)
	}
	return style.Cycle(palette, n)
}
