// Package style loads the figure style: a theme, a color palette and a
// remote style file of rc parameters.
//
// The style file is fetched once and cached on disk under a name derived
// from its URL. Later runs reuse the cached copy unless Override is set, in
// which case it is fetched again (useful when the file at the URL changed in
// place).
//
// [Configuration.Initialize] layers, from lowest to highest precedence,
// [rc.Defaults], the theme, and the style file. Settings in the style file
// therefore win over conflicting theme settings.
package style

import (
	"context"
	stderrors "errors"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rg089/plotex/pkg/cache"
	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/httputil"
	"github.com/rg089/plotex/pkg/observability"
	"github.com/rg089/plotex/pkg/rc"
)

// DefaultURL is the published LaTeX-friendly style file.
const DefaultURL = "https://gist.githubusercontent.com/rg089/26d06984604c92cf452e77ee345434ea/raw/98730d2afa1be6381b4c9c0f6f18da440200fc9a/latex_plots.txt"

// Options selects the style to load.
type Options struct {
	URL        string // Style file URL; empty means DefaultURL
	Override   bool   // Refetch even when a cached copy exists
	Theme      string // Seaborn-style theme name; empty keeps the defaults
	Palette    string // Palette name or comma-separated hex colors
	Colorblind bool   // Use the colorblind palette when Palette is empty
}

// Keyword aliases accepted by OptionsFromKeywords, in lookup order.
var (
	themeKeys      = []string{"style", "theme", "background"}
	paletteKeys    = []string{"palette", "cmap"}
	colorblindKeys = []string{"colorblind", "colourblind", "blind"}
)

// OptionsFromKeywords builds Options from loosely named settings. For each
// option the first present alias wins: style, theme or background for the
// theme; palette or cmap for the palette; colorblind, colourblind or blind
// to request the colorblind palette. "url" and "override" are read as is.
func OptionsFromKeywords(kw map[string]string) Options {
	var o Options
	o.URL = kw["url"]
	o.Override = truthy(kw["override"])
	o.Theme, _ = firstValue(kw, themeKeys)
	o.Palette, _ = firstValue(kw, paletteKeys)
	if v, ok := firstValue(kw, colorblindKeys); ok {
		o.Colorblind = truthy(v)
	}
	return o
}

func firstValue(kw map[string]string, keys []string) (string, bool) {
	for _, k := range keys {
		if v, ok := kw[k]; ok {
			return v, true
		}
	}
	return "", false
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "yes", "y", "on":
		return true
	}
	return false
}

// PaletteName returns the palette to use: Palette if set, "colorblind" when
// Colorblind is requested, and empty otherwise.
func (o Options) PaletteName() string {
	if o.Palette != "" {
		return o.Palette
	}
	if o.Colorblind {
		return "colorblind"
	}
	return ""
}

// Fetcher retrieves the style file text.
type Fetcher interface {
	GetText(ctx context.Context, url string) (string, error)
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithCache sets where fetched style files are kept. Defaults to no caching.
func WithCache(c cache.Cache) Option { return func(cfg *Configuration) { cfg.cache = c } }

// WithFetcher replaces the HTTP client used to fetch style files.
func WithFetcher(f Fetcher) Option { return func(cfg *Configuration) { cfg.fetcher = f } }

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option { return func(cfg *Configuration) { cfg.logger = l } }

// Configuration resolves Options into rc parameters.
type Configuration struct {
	opts    Options
	cache   cache.Cache
	fetcher Fetcher
	logger  *log.Logger
}

// New validates opts and returns a Configuration.
func New(opts Options, options ...Option) (*Configuration, error) {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if err := errors.ValidateURL(opts.URL); err != nil {
		return nil, err
	}
	if opts.Theme != "" {
		if _, err := Theme(opts.Theme); err != nil {
			return nil, err
		}
	}
	if name := opts.PaletteName(); name != "" {
		if _, err := Palette(name); err != nil {
			return nil, err
		}
	}

	cfg := &Configuration{opts: opts}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.cache == nil {
		cfg.cache = cache.NewNullCache()
	}
	if cfg.fetcher == nil {
		cfg.fetcher = httputil.NewClient()
	}
	if cfg.logger == nil {
		cfg.logger = log.Default()
	}
	return cfg, nil
}

// Options returns the options the configuration was created with, with
// defaults filled in.
func (c *Configuration) Options() Options { return c.opts }

// Key returns the cache key of the style file.
func (c *Configuration) Key() string { return cache.StyleKey(c.opts.URL) }

// Content returns the style file text, from the cache when present and not
// overridden, otherwise fetched and stored. cached reports which.
func (c *Configuration) Content(ctx context.Context) (content string, cached bool, err error) {
	key := c.Key()
	hooks := observability.Cache()
	if !c.opts.Override {
		data, hit, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn("Reading cached style failed, refetching", "key", key, "err", err)
		} else if hit {
			hooks.OnCacheHit(ctx, key)
			c.logger.Debug("Using cached style", "key", key)
			return string(data), true, nil
		}
	}
	hooks.OnCacheMiss(ctx, key)

	c.logger.Info("Fetching configuration parameters", "url", c.opts.URL)
	text, err := c.fetcher.GetText(ctx, c.opts.URL)
	if err != nil {
		return "", false, fetchError(c.opts.URL, err)
	}
	if err := c.cache.Set(ctx, key, []byte(text)); err != nil {
		c.logger.Warn("Caching style failed", "key", key, "err", err)
	} else {
		hooks.OnCacheSet(ctx, key, len(text))
	}
	return text, false, nil
}

// fetchError maps a fetch failure onto an error code.
func fetchError(url string, err error) error {
	switch {
	case stderrors.Is(err, httputil.ErrNotFound):
		return errors.Wrap(errors.ErrCodeNotFound, err, "no style file at %s", url)
	case stderrors.Is(err, httputil.ErrTooLarge):
		return errors.Wrap(errors.ErrCodeInvalidStyle, err, "style file at %s", url)
	default:
		return errors.Wrap(errors.ErrCodeNetwork, err, "fetch style from %s", url)
	}
}

// Path makes sure the style file is cached and returns its location on
// disk. It requires a *cache.FileCache.
func (c *Configuration) Path(ctx context.Context) (string, error) {
	fc, ok := c.cache.(*cache.FileCache)
	if !ok {
		return "", errors.New(errors.ErrCodeInternal, "style cache is not stored on disk")
	}
	if _, _, err := c.Content(ctx); err != nil {
		return "", err
	}
	return fc.Path(c.Key()), nil
}

// Base returns the defaults with the theme applied, without the style file.
func (c *Configuration) Base() *rc.Params {
	params := rc.Defaults()
	if c.opts.Theme != "" {
		// Validated in New.
		if theme, err := Theme(c.opts.Theme); err == nil {
			params.Update(theme)
		}
	}
	return params
}

// Initialize returns the rc parameters for the configured style:
// defaults, then the theme, then the style file.
func (c *Configuration) Initialize(ctx context.Context) (*rc.Params, error) {
	params := c.Base()

	text, _, err := c.Content(ctx)
	if err != nil {
		return nil, err
	}
	file, err := rc.ParseString(text)
	if err != nil {
		// Bad lines are skipped; the rest of the file still applies.
		c.logger.Warn("Style file has malformed lines", "err", err)
	}
	params.Update(file)
	return params, nil
}

// Reset returns the baseline parameters, discarding theme and style file.
func (c *Configuration) Reset() *rc.Params {
	return rc.Defaults()
}

// Colors returns the configured palette, or DefaultPalette when none is set.
func (c *Configuration) Colors() []color.Color {
	name := c.opts.PaletteName()
	if name == "" {
		name = DefaultPalette
	}
	colors, err := Palette(name)
	if err != nil {
		// Validated in New.
		colors, _ = Palette(DefaultPalette)
	}
	return colors
}
