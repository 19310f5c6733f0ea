package chart

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/observability"
)

// Formats lists the file extensions Save can write.
var Formats = []string{"eps", "jpeg", "jpg", "pdf", "png", "svg", "tex", "tif", "tiff"}

// Save writes p to path at width by height inches. The format follows the
// extension of path. Missing parent directories are created.
func Save(ctx context.Context, p *plot.Plot, path string, width, height float64) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported figure format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
	if width <= 0 || height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "figure size must be positive, got %gx%g", width, height)
	}

	hooks := observability.Chart()
	hooks.OnSaveStart(ctx, format)
	start := time.Now()
	defer func() { hooks.OnSaveComplete(ctx, format, time.Since(start), err) }()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save %s", path)
	}
	return nil
}
