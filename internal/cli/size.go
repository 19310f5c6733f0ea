package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rg089/plotex/pkg/rc"
	"github.com/rg089/plotex/pkg/sizing"
)

// sizeCommand creates the size command.
func (c *CLI) sizeCommand() *cobra.Command {
	var (
		sf   styleFlags
		zf   sizeFlags
		tf   textFlags
		pick bool
	)

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute a figure size and scale its fonts",
		Long: `Compute the width and height in inches of a figure that fills a fraction
of a publisher's text width, and scale every font size for the subplot grid.

Font sizes and weights can be adjusted afterwards with loose names:
  plotex size --publisher thesis --subplots 1x2 --text-size title=2 --text-weight xlabel=bold`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := zf.options(cmd, c.config)
			if err != nil {
				return err
			}
			if pick {
				name, err := pickPublisher(opts.Publisher, opts.Fraction)
				if err != nil {
					return err
				}
				if name == "" {
					printInfo("No publisher selected")
					return nil
				}
				opts.Publisher, opts.Width = name, 0
			}

			if _, _, err := tf.validate(); err != nil {
				return err
			}

			_, params, err := c.loadStyle(ctx, cmd, &sf)
			if err != nil {
				return err
			}
			sizer := sizing.New(params, sizing.WithLogger(loggerFromContext(ctx)))
			width, height, err := sizer.Size(opts)
			if err != nil {
				return err
			}
			if err := tf.apply(sizer); err != nil {
				return err
			}

			printSuccess("Figure size")
			printKeyValue("Width", fmt.Sprintf("%.3f in", width))
			printKeyValue("Height", fmt.Sprintf("%.3f in", height))
			printFigureStats(width, height, opts.Rows, max(opts.Cols, 1), sf.offline)
			renderTable(cmd.OutOrStdout(), []string{"Parameter", "Value"}, textRows(sizer.Params()))
			return nil
		},
	}

	sf.register(cmd)
	zf.register(cmd)
	tf.register(cmd)
	cmd.Flags().BoolVar(&pick, "pick", false, "choose the publisher interactively")

	return cmd
}

// textRows lists the font size and weight parameters present in params.
func textRows(params *rc.Params) [][]string {
	keys := append(append([]string{}, rc.SizeKeys...),
		rc.FontWeight, rc.AxesTitleWeight, rc.AxesLabelWeight, rc.FigureTitleWeight,
		"xtick.major.size", "ytick.major.size")
	var rows [][]string
	for _, k := range keys {
		if v, ok := params.Get(k); ok {
			rows = append(rows, []string{k, v})
		}
	}
	return rows
}
