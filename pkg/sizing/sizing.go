// Package sizing computes figure dimensions for publication formats and
// scales the text of a figure to match.
//
// A figure is sized from a text width, given either directly in points or as
// a publisher name, a fraction of that width and a subplot grid:
//
//	s := sizing.New(params)
//	w, h, err := s.Size(sizing.SizeOptions{Publisher: "acl", Fraction: 0.5})
//
// Sizing also shrinks every font parameter to fit the columns of the grid and
// keeps a snapshot of the result. Size starts from the baseline parameters
// each time unless Accumulate is set, so repeated calls do not compound. Size
// and weight tweaks can likewise restart from the snapshot.
//
// Size and weight tweaks take loosely typed keys ("xlabel", "fontsiz",
// "legnd") and resolve them with [resolve.Resolver] against [SizeTable] and
// [WeightTable]. Keys that resolve to nothing are logged and skipped.
package sizing

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/rc"
	"github.com/rg089/plotex/pkg/resolve"
)

// PointsPerInch is the TeX point to inch conversion.
const PointsPerInch = 72.27

// GoldenRatio is the default height to width ratio of a single subplot.
var GoldenRatio = (math.Sqrt(5) - 1) / 2

// DefaultPublisher is used when a publisher name is not recognized.
const DefaultPublisher = "acl"

// publisherWidths are text widths in points.
var publisherWidths = map[string]float64{
	"thesis": 426.79135,
	"acl":    455.244,
}

// Publishers returns the known publisher names, sorted.
func Publishers() []string {
	names := make([]string, 0, len(publisherWidths))
	for name := range publisherWidths {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PublisherWidth returns the text width in points of a publisher.
func PublisherWidth(name string) (float64, error) {
	w, ok := publisherWidths[name]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidPublisher, "unknown publisher %q", name)
	}
	return w, nil
}

// SizeOptions describes the figure to size. Either Width or Publisher must be
// set; Width wins when both are.
type SizeOptions struct {
	Width         float64 // Text width, in points unless WidthInInches
	Publisher     string  // Publisher whose text width to use
	WidthInInches bool    // Width is already in inches
	Fraction      float64 // Fraction of the width to use; 0 means 1
	Rows          int     // Subplot rows; 0 means 1
	Cols          int     // Subplot columns; 0 means 1
	Accumulate    bool    // Scale the current parameters instead of the baseline
}

func (o SizeOptions) withDefaults() SizeOptions {
	if o.Fraction == 0 {
		o.Fraction = 1
	}
	if o.Rows == 0 {
		o.Rows = 1
	}
	if o.Cols == 0 {
		o.Cols = 1
	}
	return o
}

// SizeChange adds Delta points to the font size named by Key.
type SizeChange struct {
	Key   string
	Delta float64
}

// WeightChange sets the font weight named by Key to light, normal or bold.
type WeightChange struct {
	Key    string
	Weight string
}

// Option configures a Sizer.
type Option func(*Sizer)

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Sizer) { s.logger = l }
}

// WithBaseline sets the parameters Size restores unless Accumulate is set.
// Defaults to a copy of the parameters given to New.
func WithBaseline(p *rc.Params) Option {
	return func(s *Sizer) { s.baseline = p.Copy() }
}

// WithResolverOptions passes options to the size and weight resolvers.
func WithResolverOptions(opts ...resolve.Option) Option {
	return func(s *Sizer) { s.resolverOpts = append(s.resolverOpts, opts...) }
}

// Sizer sizes figures and adjusts text parameters in place.
type Sizer struct {
	params   *rc.Params
	baseline *rc.Params
	snapshot *rc.Params
	logger   *log.Logger

	resolverOpts []resolve.Option
	sizes        *resolve.Resolver
	weights      *resolve.Resolver
}

// New returns a Sizer that modifies params.
func New(params *rc.Params, opts ...Option) *Sizer {
	if params == nil {
		params = rc.Defaults()
	}
	s := &Sizer{params: params}
	for _, opt := range opts {
		opt(s)
	}
	if s.baseline == nil {
		s.baseline = params.Copy()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.sizes = resolve.New(SizeTable, SizeOverrides, s.resolverOpts...)
	s.weights = resolve.New(WeightTable, WeightOverrides, s.resolverOpts...)
	return s
}

// Params returns the parameters the Sizer modifies.
func (s *Sizer) Params() *rc.Params { return s.params }

// Snapshot returns a copy of the parameters saved by the last
// AdjustFontSize, or nil if there is none.
func (s *Sizer) Snapshot() *rc.Params {
	if s.snapshot == nil {
		return nil
	}
	return s.snapshot.Copy()
}

// WidthInches returns width converted from points to inches. When width is
// not positive the publisher's width is used; an unknown publisher falls
// back to DefaultPublisher.
func (s *Sizer) WidthInches(width float64, publisher string) float64 {
	if width <= 0 {
		width = s.publisherWidth(publisher)
	}
	return width / PointsPerInch
}

func (s *Sizer) publisherWidth(name string) float64 {
	w, err := PublisherWidth(name)
	if err != nil {
		s.logger.Info("Publisher not found, using default format", "publisher", name, "default", DefaultPublisher)
		w = publisherWidths[DefaultPublisher]
	}
	return w
}

// Size returns the figure width and height in inches and scales the font
// parameters for the subplot grid. The parameters are first restored to the
// baseline unless opts.Accumulate is set.
func (s *Sizer) Size(opts SizeOptions) (width, height float64, err error) {
	opts = opts.withDefaults()
	if opts.Width <= 0 && opts.Publisher == "" {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "either a width or a publisher is required")
	}
	if err := errors.ValidateFraction(opts.Fraction); err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateSubplots(opts.Rows, opts.Cols); err != nil {
		return 0, 0, err
	}

	if !opts.Accumulate {
		s.reset(s.baseline)
	}

	if opts.WidthInInches && opts.Width > 0 {
		width = opts.Width
	} else {
		width = s.WidthInches(opts.Width, opts.Publisher)
	}
	width *= opts.Fraction
	height = width * GoldenRatio * float64(opts.Rows) / float64(opts.Cols)

	if err := s.AdjustFontSize(opts.Cols, opts.Fraction); err != nil {
		return 0, 0, err
	}
	s.logger.Debug("Sized figure", "width", width, "height", height, "rows", opts.Rows, "cols", opts.Cols)
	return width, height, nil
}

// AdjustFontSize divides every font size by cols, scales it by fraction and
// rounds up to whole points. Named sizes are resolved against font.size
// before any parameter changes. The result is saved as the snapshot.
func (s *Sizer) AdjustFontSize(cols int, fraction float64) error {
	if cols < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "cols must be at least 1, got %d", cols)
	}
	sizes := make([]float64, len(rc.SizeKeys))
	for i, key := range rc.SizeKeys {
		v, err := s.params.FontSize(key)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", key)
		}
		sizes[i] = v
	}
	for i, key := range rc.SizeKeys {
		s.params.SetFloat(key, math.Ceil(sizes[i]/float64(cols)*fraction))
	}
	s.snapshot = s.params.Copy()
	return nil
}

// UpdateTextSize adds each change's delta to the font size its key resolves
// to. With reinit the snapshot of the last sizing is restored first. Keys
// that do not resolve are logged and returned in skipped.
func (s *Sizer) UpdateTextSize(reinit bool, changes ...SizeChange) (skipped []string) {
	if reinit && s.snapshot != nil {
		s.reset(s.snapshot)
	}
	for _, c := range changes {
		key, ok := s.resolve(s.sizes, c.Key)
		if !ok {
			skipped = append(skipped, c.Key)
			continue
		}
		current, err := s.params.FontSize(key)
		if err != nil {
			s.logger.Warn("Cannot read font size", "param", key, "err", err)
			skipped = append(skipped, c.Key)
			continue
		}
		s.params.SetFloat(key, current+c.Delta)
		s.logger.Debug("Updated font size", "arg", c.Key, "param", key, "size", current+c.Delta)
	}
	return skipped
}

// UpdateTextWeight sets the font weight each change's key resolves to.
// Weights other than light, normal and bold are rejected before anything
// changes. Keys that do not resolve are logged and returned in skipped.
func (s *Sizer) UpdateTextWeight(reinit bool, changes ...WeightChange) (skipped []string, err error) {
	for _, c := range changes {
		if err := errors.ValidateWeight(c.Weight); err != nil {
			return nil, err
		}
	}
	if reinit && s.snapshot != nil {
		s.reset(s.snapshot)
	}
	for _, c := range changes {
		key, ok := s.resolve(s.weights, c.Key)
		if !ok {
			skipped = append(skipped, c.Key)
			continue
		}
		s.params.Set(key, c.Weight)
		s.logger.Debug("Updated font weight", "arg", c.Key, "param", key, "weight", c.Weight)
	}
	return skipped, nil
}

// RemoveTicks zeroes the major and minor tick lengths of the chosen axes.
func (s *Sizer) RemoveTicks(x, y bool) {
	if x {
		for _, k := range xTickKeys {
			s.params.SetFloat(k, 0)
		}
	}
	if y {
		for _, k := range yTickKeys {
			s.params.SetFloat(k, 0)
		}
	}
}

func (s *Sizer) resolve(r *resolve.Resolver, key string) (string, bool) {
	canonical, err := r.Resolve(key)
	if err != nil {
		s.logger.Warn("No match found for argument", "arg", key)
		return "", false
	}
	return canonical, true
}

// reset replaces the current parameters with from, keeping the same *Params
// so callers holding it see the change.
func (s *Sizer) reset(from *rc.Params) {
	for _, k := range s.params.Keys() {
		if !from.Has(k) {
			s.params.Delete(k)
		}
	}
	s.params.Update(from)
}
