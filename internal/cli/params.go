package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rg089/plotex/pkg/rc"
	"github.com/rg089/plotex/pkg/sizing"
)

// paramsCommand creates the params command.
func (c *CLI) paramsCommand() *cobra.Command {
	var (
		sf     styleFlags
		zf     sizeFlags
		asFile bool
	)

	cmd := &cobra.Command{
		Use:   "params [PREFIX...]",
		Short: "Print the rc parameters of the configured style",
		Long: `Print the rc parameters after layering the defaults, the theme and the
style file. When a size flag is given, fonts are scaled as by the size command.

Positional arguments filter parameters by prefix, e.g. "plotex params font axes".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, params, err := c.loadStyle(ctx, cmd, &sf)
			if err != nil {
				return err
			}
			if zf.changed(cmd) {
				opts, err := zf.options(cmd, c.config)
				if err != nil {
					return err
				}
				sizer := sizing.New(params, sizing.WithLogger(loggerFromContext(ctx)))
				if _, _, err := sizer.Size(opts); err != nil {
					return err
				}
			}

			params = filterParams(params, args)
			if asFile {
				return rc.Format(cmd.OutOrStdout(), params)
			}
			rows := make([][]string, 0, params.Len())
			for _, k := range params.Keys() {
				v, _ := params.Get(k)
				rows = append(rows, []string{k, v})
			}
			renderTable(cmd.OutOrStdout(), []string{"Parameter", "Value"}, rows)
			return nil
		},
	}

	sf.register(cmd)
	zf.register(cmd)
	cmd.Flags().BoolVar(&asFile, "rc", false, "print in style file format")

	return cmd
}

// filterParams keeps the parameters starting with any of prefixes.
func filterParams(params *rc.Params, prefixes []string) *rc.Params {
	if len(prefixes) == 0 {
		return params
	}
	out := rc.New()
	for _, k := range params.Keys() {
		for _, p := range prefixes {
			if strings.HasPrefix(k, p) {
				v, _ := params.Get(k)
				out.Set(k, v)
				break
			}
		}
	}
	return out
}
