// Package pkg provides the libraries behind plotex, a helper for preparing
// publication-quality figures.
//
// # Overview
//
// Plotex sizes figures to a publisher's text width, loads a LaTeX-friendly
// style file and draws charts whose labels stay readable. The pkg directory
// is organized into four areas:
//
//  1. [resolve], [labels] - The two core algorithms
//  2. [rc], [style], [sizing] - Rendering parameters and how they are built
//  3. [frame], [chart] - Tabular data and the charts drawn from it
//  4. [cache], [httputil], [errors], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through plotex:
//
//	Style file URL (+ theme, palette)
//	         ↓
//	    [style] package (fetch, cache, layer over defaults)
//	         ↓
//	    [sizing] package (figure size, font scaling, loose names via [resolve])
//	         ↓
//	    [chart] package (bar, pie, scatter from a [frame.Frame])
//	         ↓
//	    PDF/SVG/PNG/EPS output
//
// # Quick Start
//
// Style, size and draw a bar chart:
//
//	import (
//	    "context"
//	    "github.com/rg089/plotex/pkg/chart"
//	    "github.com/rg089/plotex/pkg/frame"
//	    "github.com/rg089/plotex/pkg/sizing"
//	    "github.com/rg089/plotex/pkg/style"
//	)
//
//	// 1. Load the style
//	cfg, _ := style.New(style.Options{Theme: "whitegrid"})
//	params, _ := cfg.Initialize(ctx)
//
//	// 2. Size the figure for two columns of an ACL paper
//	w, h, _ := sizing.New(params).Size(sizing.SizeOptions{Publisher: "acl", Cols: 2})
//
//	// 3. Draw
//	f, _ := frame.ReadCSV(file)
//	p, _ := chart.New(params)
//	chart.GroupReduce(p, f, chart.BarOptions{Group: "model", Value: "accuracy"})
//
//	// 4. Save
//	chart.Save(ctx, p, "accuracy.pdf", w, h)
//
// # Main Packages
//
// ## Core Algorithms
//
// [resolve] - Maps a loosely typed parameter name to a canonical key: an
// exact override, then the closest known name by similarity ratio, then the
// short alias table.
//
// [labels] - Reorders labels by length as short, long, short, long so that
// neighbouring tick labels do not collide.
//
// ## Parameters
//
// [rc] - Ordered rendering parameters in the style file format, with named
// font sizes and weights.
//
// [style] - Fetches and caches the style file, applies themes and palettes.
//
// [sizing] - Figure dimensions from publisher text widths, font scaling for
// subplot grids, and size/weight updates by loose name.
//
// ## Charts
//
// [frame] - CSV-backed tables with grouping, reductions and crosstabs.
//
// [chart] - Bar, stacked bar, pie and scatter charts on gonum/plot.
//
// ## Infrastructure
//
// [cache] - File and no-op stores for fetched style files.
//
// [httputil] - Text fetching with retries and status classification.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for chart, cache and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/resolve/...          # Specific package
//	go test -run Example ./pkg/...     # Examples only
//
// [resolve]: https://pkg.go.dev/github.com/rg089/plotex/pkg/resolve
// [labels]: https://pkg.go.dev/github.com/rg089/plotex/pkg/labels
// [rc]: https://pkg.go.dev/github.com/rg089/plotex/pkg/rc
// [style]: https://pkg.go.dev/github.com/rg089/plotex/pkg/style
// [sizing]: https://pkg.go.dev/github.com/rg089/plotex/pkg/sizing
// [frame]: https://pkg.go.dev/github.com/rg089/plotex/pkg/frame
// [frame.Frame]: https://pkg.go.dev/github.com/rg089/plotex/pkg/frame#Frame
// [chart]: https://pkg.go.dev/github.com/rg089/plotex/pkg/chart
// [cache]: https://pkg.go.dev/github.com/rg089/plotex/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/rg089/plotex/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/rg089/plotex/pkg/errors
// [observability]: https://pkg.go.dev/github.com/rg089/plotex/pkg/observability
package pkg
