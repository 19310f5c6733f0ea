package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/rc"
	"github.com/rg089/plotex/pkg/sizing"
	"github.com/rg089/plotex/pkg/style"
)

// =============================================================================
// Style Flags
// =============================================================================

// styleFlags select the style file, theme and palette.
type styleFlags struct {
	url        string
	theme      string
	palette    string
	colorblind bool
	override   bool
	noCache    bool
	offline    bool
}

func (f *styleFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.url, "url", "", "style file URL (default: the published LaTeX style)")
	fs.StringVar(&f.theme, "theme", "", "theme: "+strings.Join(style.Themes(), ", "))
	fs.StringVar(&f.palette, "palette", "", "palette name or comma-separated hex colors")
	fs.BoolVar(&f.colorblind, "colorblind", false, "use the colorblind palette")
	fs.BoolVar(&f.override, "override", false, "refetch the style file even when cached")
	fs.BoolVar(&f.noCache, "no-cache", false, "do not read or write the style cache")
	fs.BoolVar(&f.offline, "offline", false, "skip the style file, use defaults and theme only")
}

// options layers the changed flags over the project config.
func (f *styleFlags) options(cmd *cobra.Command, cfg projectConfig) style.Options {
	opts := cfg.styleOptions()
	fs := cmd.Flags()
	if fs.Changed("url") {
		opts.URL = f.url
	}
	if fs.Changed("theme") {
		opts.Theme = f.theme
	}
	if fs.Changed("palette") {
		opts.Palette = f.palette
	}
	if fs.Changed("colorblind") {
		opts.Colorblind = f.colorblind
	}
	if fs.Changed("override") {
		opts.Override = f.override
	}
	return opts
}

// loadStyle builds the style configuration and its rc parameters.
func (c *CLI) loadStyle(ctx context.Context, cmd *cobra.Command, f *styleFlags) (*style.Configuration, *rc.Params, error) {
	cfg, err := c.newStyle(f.options(cmd, c.config), f.noCache)
	if err != nil {
		return nil, nil, err
	}
	if f.offline {
		return cfg, cfg.Base(), nil
	}
	params, err := cfg.Initialize(ctx)
	if err != nil {
		return nil, nil, err
	}
	return cfg, params, nil
}

// =============================================================================
// Size Flags
// =============================================================================

// sizeFlags describe the figure's width and subplot grid.
type sizeFlags struct {
	width     float64
	publisher string
	inches    bool
	fraction  float64
	subplots  string
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&f.width, "width", 0, "text width in points (wins over --publisher)")
	fs.StringVar(&f.publisher, "publisher", "", "publisher text width: "+strings.Join(sizing.Publishers(), ", "))
	fs.BoolVar(&f.inches, "inches", false, "--width is given in inches")
	fs.Float64Var(&f.fraction, "fraction", 1, "fraction of the text width to use")
	fs.StringVar(&f.subplots, "subplots", "1x1", "subplot grid as ROWSxCOLS")
}

// changed reports whether any size flag was given.
func (f *sizeFlags) changed(cmd *cobra.Command) bool {
	for _, name := range []string{"width", "publisher", "inches", "fraction", "subplots"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// options layers the changed flags over the project config.
func (f *sizeFlags) options(cmd *cobra.Command, cfg projectConfig) (sizing.SizeOptions, error) {
	rows, cols, err := parseSubplots(f.subplots)
	if err != nil {
		return sizing.SizeOptions{}, err
	}
	opts := sizing.SizeOptions{
		Publisher:     cfg.publisher(),
		Fraction:      cfg.Fraction,
		Rows:          rows,
		Cols:          cols,
		WidthInInches: f.inches,
	}
	fs := cmd.Flags()
	if fs.Changed("publisher") {
		opts.Publisher = f.publisher
	}
	if fs.Changed("width") {
		opts.Width = f.width
	}
	if fs.Changed("fraction") {
		opts.Fraction = f.fraction
	}
	return opts, nil
}

// =============================================================================
// Text Flags
// =============================================================================

// textFlags adjust font sizes, weights and ticks after sizing.
type textFlags struct {
	sizes    []string
	weights  []string
	noXTicks bool
	noYTicks bool
}

func (f *textFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringArrayVar(&f.sizes, "text-size", nil, "add points to a font size, e.g. title=2 (repeatable)")
	fs.StringArrayVar(&f.weights, "text-weight", nil, "set a font weight, e.g. xlabel=bold (repeatable)")
	fs.BoolVar(&f.noXTicks, "no-xticks", false, "remove x tick marks")
	fs.BoolVar(&f.noYTicks, "no-yticks", false, "remove y tick marks")
}

// validate parses the size and weight changes without applying them.
func (f *textFlags) validate() ([]sizing.SizeChange, []sizing.WeightChange, error) {
	sizes, err := parseSizeChanges(f.sizes)
	if err != nil {
		return nil, nil, err
	}
	weights, err := parseWeightChanges(f.weights)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range weights {
		if err := errors.ValidateWeight(w.Weight); err != nil {
			return nil, nil, err
		}
	}
	return sizes, weights, nil
}

// apply runs the changes on a sized figure. Names that match no parameter
// are reported as warnings.
func (f *textFlags) apply(sizer *sizing.Sizer) error {
	sizes, weights, err := f.validate()
	if err != nil {
		return err
	}
	for _, k := range sizer.UpdateTextSize(false, sizes...) {
		printWarning("No font size matches %q", k)
	}
	skipped, err := sizer.UpdateTextWeight(false, weights...)
	if err != nil {
		return err
	}
	for _, k := range skipped {
		printWarning("No font weight matches %q", k)
	}
	sizer.RemoveTicks(f.noXTicks, f.noYTicks)
	return nil
}

func parseSizeChanges(pairs []string) ([]sizing.SizeChange, error) {
	kv, err := parseAssignments(pairs)
	if err != nil {
		return nil, err
	}
	changes := make([]sizing.SizeChange, len(kv))
	for i, p := range kv {
		delta, err := strconv.ParseFloat(p[1], 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "size change for %s must be a number, got %q", p[0], p[1])
		}
		changes[i] = sizing.SizeChange{Key: p[0], Delta: delta}
	}
	return changes, nil
}

func parseWeightChanges(pairs []string) ([]sizing.WeightChange, error) {
	kv, err := parseAssignments(pairs)
	if err != nil {
		return nil, err
	}
	changes := make([]sizing.WeightChange, len(kv))
	for i, p := range kv {
		changes[i] = sizing.WeightChange{Key: p[0], Weight: p[1]}
	}
	return changes, nil
}

// parseSubplots parses "2x3" into rows and columns.
func parseSubplots(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "subplots must look like ROWSxCOLS, got %q", s)
	}
	if rows, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "subplot rows %q is not a number", r)
	}
	if cols, err = strconv.Atoi(strings.TrimSpace(c)); err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "subplot columns %q is not a number", c)
	}
	if err := errors.ValidateSubplots(rows, cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// parseAssignments splits KEY=VALUE pairs.
func parseAssignments(pairs []string) ([][2]string, error) {
	out := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "expected KEY=VALUE, got %q", p)
		}
		out = append(out, [2]string{strings.TrimSpace(k), strings.TrimSpace(v)})
	}
	return out, nil
}
