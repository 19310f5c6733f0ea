package chart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"

	"github.com/rg089/plotex/pkg/errors"
)

// Text sets the labels of a plot. Empty strings and nil slices leave the
// corresponding element unchanged.
type Text struct {
	XLabel string
	YLabel string
	Title  string

	XTicks      []float64 // Tick locations on the x axis
	XTickLabels []string  // Labels for XTicks; requires XTicks
	XTickRot    float64   // Tick label rotation in degrees

	YTicks      []float64
	YTickLabels []string
	YTickRot    float64
}

// SetText applies t to p. Tick labels without tick locations, or with a
// different count, are rejected before p is modified.
func SetText(p *plot.Plot, t Text) error {
	xticks, err := ticks("x", t.XTicks, t.XTickLabels)
	if err != nil {
		return err
	}
	yticks, err := ticks("y", t.YTicks, t.YTickLabels)
	if err != nil {
		return err
	}

	if t.XLabel != "" {
		p.X.Label.Text = t.XLabel
	}
	if t.YLabel != "" {
		p.Y.Label.Text = t.YLabel
	}
	if t.Title != "" {
		p.Title.Text = t.Title
	}

	if xticks != nil {
		p.X.Tick.Marker = xticks
	}
	if yticks != nil {
		p.Y.Tick.Marker = yticks
	}
	if t.XTickRot != 0 {
		p.X.Tick.Label.Rotation = t.XTickRot * math.Pi / 180
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}
	if t.YTickRot != 0 {
		p.Y.Tick.Label.Rotation = t.YTickRot * math.Pi / 180
	}
	return nil
}

func ticks(axis string, locs []float64, labels []string) (plot.ConstantTicks, error) {
	if len(labels) > 0 && len(locs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s tick labels need tick locations", axis)
	}
	if len(labels) > 0 && len(labels) != len(locs) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d %s tick labels for %d locations", len(labels), axis, len(locs))
	}
	if len(locs) == 0 {
		return nil, nil
	}
	out := make(plot.ConstantTicks, len(locs))
	for i, v := range locs {
		out[i].Value = v
		if len(labels) > 0 {
			out[i].Label = labels[i]
		} else {
			out[i].Label = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return out, nil
}
