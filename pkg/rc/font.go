package rc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned when a parameter is not set.
var ErrUnknownKey = errors.New("unknown parameter")

// Keys for the text elements plotex sizes and weighs.
const (
	FontSize            = "font.size"
	AxesTitleSize       = "axes.titlesize"
	LegendTitleFontSize = "legend.title_fontsize"
	XTickLabelSize      = "xtick.labelsize"
	YTickLabelSize      = "ytick.labelsize"
	AxesLabelSize       = "axes.labelsize"
	LegendFontSize      = "legend.fontsize"

	FontWeight        = "font.weight"
	AxesTitleWeight   = "axes.titleweight"
	AxesLabelWeight   = "axes.labelweight"
	FigureTitleWeight = "figure.titleweight"
)

// SizeKeys lists the font size parameters in the order they are adjusted.
var SizeKeys = []string{
	FontSize,
	AxesTitleSize,
	LegendTitleFontSize,
	XTickLabelSize,
	YTickLabelSize,
	AxesLabelSize,
	LegendFontSize,
}

// relativeSizes scales font.size for the named sizes.
var relativeSizes = map[string]float64{
	"xx-small": 0.579,
	"x-small":  0.694,
	"small":    0.833,
	"medium":   1.0,
	"large":    1.200,
	"x-large":  1.440,
	"xx-large": 1.728,
	"larger":   1.2,
	"smaller":  0.833,
}

// FontSize returns the size of key in points. Numeric values are returned
// as is; named sizes ("large", "x-small", ...) are scaled from font.size.
// A missing or "None" legend.title_fontsize falls back to legend.fontsize.
func (p *Params) FontSize(key string) (float64, error) {
	v, ok := p.values[key]
	if !ok || isNone(v) {
		if key == LegendTitleFontSize {
			return p.FontSize(LegendFontSize)
		}
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	}

	v = strings.TrimSpace(v)
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f, nil
	}
	scale, ok := relativeSizes[strings.ToLower(v)]
	if !ok {
		return 0, fmt.Errorf("param %s: unknown font size %q", key, v)
	}
	if key == FontSize {
		return 0, fmt.Errorf("param %s: must be numeric, got %q", key, v)
	}
	base, err := p.FontSize(FontSize)
	if err != nil {
		return 0, err
	}
	return base * scale, nil
}

func isNone(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "none")
}

// Weight values accepted by the weight parameters.
const (
	WeightLight  = "light"
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// ValidWeight reports whether w is a supported font weight.
func ValidWeight(w string) bool {
	switch w {
	case WeightLight, WeightNormal, WeightBold:
		return true
	}
	return false
}

// Weight returns the weight of key, defaulting to normal.
// Numeric weights of 600 and above count as bold, 300 and below as light.
func (p *Params) Weight(key string) string {
	v, ok := p.values[key]
	if !ok {
		return WeightNormal
	}
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case WeightBold, "heavy", "extra bold", "black", "semibold", "demibold", "demi":
		return WeightBold
	case WeightLight, "ultralight":
		return WeightLight
	}
	if n, err := strconv.Atoi(v); err == nil {
		switch {
		case n >= 600:
			return WeightBold
		case n <= 300:
			return WeightLight
		}
	}
	return WeightNormal
}
