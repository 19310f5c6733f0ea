package cli

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/rg089/plotex/pkg/chart"
	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/frame"
	"github.com/rg089/plotex/pkg/sizing"
	"github.com/rg089/plotex/pkg/style"
)

// =============================================================================
// Shared Figure Pipeline
// =============================================================================

// figureFlags are shared by every chart command.
type figureFlags struct {
	style styleFlags
	size  sizeFlags
	text  textFlags

	output string
	title  string
	xlabel string
	ylabel string
	xrot   float64
	yrot   float64
}

func (f *figureFlags) register(cmd *cobra.Command, defaultOutput string) {
	f.style.register(cmd)
	f.size.register(cmd)
	f.text.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", defaultOutput, "output file; the extension picks the format ("+strings.Join(chart.Formats, ", ")+")")
	fs.StringVar(&f.title, "title", "", "figure title")
	fs.StringVar(&f.xlabel, "xlabel", "", "x axis label")
	fs.StringVar(&f.ylabel, "ylabel", "", "y axis label")
	fs.Float64Var(&f.xrot, "xrot", 0, "x tick label rotation in degrees")
	fs.Float64Var(&f.yrot, "yrot", 0, "y tick label rotation in degrees")
}

// drawFunc adds a chart to p and returns a short description of it.
type drawFunc func(p *plot.Plot, f *frame.Frame, palette []color.Color) (string, error)

// renderFigure loads the CSV and the style, sizes the figure, applies the
// text adjustments, draws it and saves it to the output path.
func (c *CLI) renderFigure(cmd *cobra.Command, ff *figureFlags, csvPath string, draw drawFunc) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := readFrame(csvPath)
	if err != nil {
		return err
	}
	logger.Debug("Read data", "path", csvPath, "rows", data.Len(), "columns", data.Columns())

	opts, err := ff.size.options(cmd, c.config)
	if err != nil {
		return err
	}
	if _, _, err := ff.text.validate(); err != nil {
		return err
	}
	cfg, params, err := c.loadStyle(ctx, cmd, &ff.style)
	if err != nil {
		return err
	}
	sizer := sizing.New(params, sizing.WithLogger(logger))
	width, height, err := sizer.Size(opts)
	if err != nil {
		return err
	}
	if err := ff.text.apply(sizer); err != nil {
		return err
	}

	p, err := chart.New(params, chart.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("Styled plot",
		"title_size", p.Title.TextStyle.Font.Size.Points(),
		"xlabel_size", p.X.Label.TextStyle.Font.Size.Points(),
		"ylabel_size", p.Y.Label.TextStyle.Font.Size.Points())
	what, err := draw(p, data, palette(cfg))
	if err != nil {
		return err
	}
	if err := chart.SetText(p, chart.Text{
		XLabel:   ff.xlabel,
		YLabel:   ff.ylabel,
		Title:    ff.title,
		XTickRot: ff.xrot,
		YTickRot: ff.yrot,
	}); err != nil {
		return err
	}
	if err := chart.Save(ctx, p, ff.output, width, height); err != nil {
		return err
	}
	prog.done("Rendered " + what)

	printSuccess("Saved %s", what)
	printFile(ff.output)
	printFigureStats(width, height, opts.Rows, max(opts.Cols, 1), ff.style.offline)
	return nil
}

func readFrame(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open data")
	}
	defer f.Close()
	return frame.ReadCSV(f)
}

// palette returns the configured colors, or nil to let each chart use its
// own default palette.
func palette(cfg *style.Configuration) []color.Color {
	if cfg.Options().PaletteName() == "" {
		return nil
	}
	return cfg.Colors()
}

// =============================================================================
// Bar
// =============================================================================

// barCommand creates the bar command.
func (c *CLI) barCommand() *cobra.Command {
	var (
		ff         figureFlags
		group      string
		value      string
		reduce     string
		fixed      string
		multiColor bool
		keepOrder  bool
	)

	cmd := &cobra.Command{
		Use:   "bar DATA.csv",
		Short: "Bar chart of a value reduced per group",
		Long: `Draw one bar per distinct value of --group, as tall as --value reduced
with --reduce. Long and short labels are interleaved so that long labels
never sit side by side; pass --keep-order to keep the sorted order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reducer, err := frame.ReducerByName(reduce)
			if err != nil {
				return err
			}
			var fill color.Color
			if fixed != "" {
				if fill, err = style.ParseColor(fixed); err != nil {
					return err
				}
			}
			return c.renderFigure(cmd, &ff, args[0], func(p *plot.Plot, f *frame.Frame, pal []color.Color) (string, error) {
				bars, err := chart.GroupReduce(p, f, chart.BarOptions{
					Group:      group,
					Value:      value,
					Reduce:     reducer,
					Palette:    pal,
					Color:      fill,
					MultiColor: multiColor,
					KeepOrder:  keepOrder,
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("bar chart (%d bars)", len(bars.Labels)), nil
			})
		},
	}

	ff.register(cmd, "bar.pdf")
	cmd.Flags().StringVar(&group, "group", "", "column whose values become bars")
	cmd.Flags().StringVar(&value, "value", "", "numeric column to reduce")
	cmd.Flags().StringVar(&reduce, "reduce", "mean", "reduction: "+strings.Join(frame.Reducers(), ", "))
	cmd.Flags().StringVar(&fixed, "color", "", "single color for every bar")
	cmd.Flags().BoolVar(&multiColor, "multicolor", false, "one palette color per bar")
	cmd.Flags().BoolVar(&keepOrder, "keep-order", false, "keep sorted label order")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

// =============================================================================
// Stack
// =============================================================================

// stackCommand creates the stack command.
func (c *CLI) stackCommand() *cobra.Command {
	var (
		ff         figureFlags
		base       string
		stack      string
		vertical   bool
		hideLegend bool
	)

	cmd := &cobra.Command{
		Use:   "stack DATA.csv",
		Short: "Stacked bar chart of pair counts",
		Long: `Draw one bar per distinct value of --base, split into one segment per
distinct value of --stack, each as long as the number of rows with that pair.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.renderFigure(cmd, &ff, args[0], func(p *plot.Plot, f *frame.Frame, pal []color.Color) (string, error) {
				ct, err := chart.StackCount(p, f, chart.StackOptions{
					Base:       base,
					Stack:      stack,
					Vertical:   vertical,
					Palette:    pal,
					HideLegend: hideLegend,
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("stacked bar chart (%d bars, %d stacks)", len(ct.Bases), len(ct.Stacks)), nil
			})
		},
	}

	ff.register(cmd, "stack.pdf")
	cmd.Flags().StringVar(&base, "base", "", "column whose values label the bars")
	cmd.Flags().StringVar(&stack, "stack", "", "column whose values are counted and stacked")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "vertical bars")
	cmd.Flags().BoolVar(&hideLegend, "no-legend", false, "hide the legend")
	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("stack")

	return cmd
}

// =============================================================================
// Pie
// =============================================================================

// pieCommand creates the pie command.
func (c *CLI) pieCommand() *cobra.Command {
	var (
		ff     figureFlags
		column string
		counts bool
	)

	cmd := &cobra.Command{
		Use:   "pie DATA.csv",
		Short: "Pie chart of value frequencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.renderFigure(cmd, &ff, args[0], func(p *plot.Plot, f *frame.Frame, pal []color.Color) (string, error) {
				pie, err := chart.ColumnFrequency(p, f, chart.PieOptions{
					Column:    column,
					Palette:   pal,
					RawCounts: counts,
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("pie chart (%d wedges)", len(pie.Values)), nil
			})
		},
	}

	ff.register(cmd, "pie.pdf")
	cmd.Flags().StringVar(&column, "column", "", "column whose value frequencies make the wedges")
	cmd.Flags().BoolVar(&counts, "counts", false, "label wedges with counts instead of percentages")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

// =============================================================================
// Scatter
// =============================================================================

// scatterCommand creates the scatter command.
func (c *CLI) scatterCommand() *cobra.Command {
	var (
		ff          figureFlags
		x, y        string
		marker      string
		singleColor bool
		hideLegend  bool
	)

	cmd := &cobra.Command{
		Use:     "scatter DATA.csv",
		Aliases: []string{"embeddings"},
		Short:   "Scatter plot with one marker per group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.renderFigure(cmd, &ff, args[0], func(p *plot.Plot, f *frame.Frame, pal []color.Color) (string, error) {
				groups, err := chart.Marker(p, f, chart.ScatterOptions{
					X:           x,
					Y:           y,
					MarkerCol:   marker,
					Palette:     pal,
					SingleColor: singleColor,
					HideLegend:  hideLegend,
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("scatter plot (%d groups)", len(groups)), nil
			})
		},
	}

	ff.register(cmd, "scatter.pdf")
	cmd.Flags().StringVar(&x, "x", "", "numeric column for the x axis")
	cmd.Flags().StringVar(&y, "y", "", "numeric column for the y axis")
	cmd.Flags().StringVar(&marker, "marker", "", "column whose values pick the marker")
	cmd.Flags().BoolVar(&singleColor, "single-color", false, "draw every group in one color")
	cmd.Flags().BoolVar(&hideLegend, "no-legend", false, "hide the legend")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	_ = cmd.MarkFlagRequired("marker")

	return cmd
}
