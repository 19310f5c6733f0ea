package cli

import (
	"github.com/spf13/cobra"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/resolve"
	"github.com/rg089/plotex/pkg/sizing"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		weight     bool
		cutoff     float64
		ignoreCase bool
	)

	cmd := &cobra.Command{
		Use:   "resolve KEY...",
		Short: "Show which font parameter a loose name refers to",
		Long: `Resolve loose names such as "xlabel", "titel" or "ticks" to the font size
parameter they refer to, or with --weight to the font weight parameter.

Exact overrides are tried first, then the closest known name, then the
short alias table.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cutoff < 0 || cutoff > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "cutoff must be within [0, 1], got %g", cutoff)
			}
			table, overrides := sizing.SizeTable, sizing.SizeOverrides
			if weight {
				table, overrides = sizing.WeightTable, sizing.WeightOverrides
			}
			opts := []resolve.Option{resolve.WithCutoff(cutoff)}
			if ignoreCase {
				opts = append(opts, resolve.WithCaseFolding())
			}

			matches, skipped := resolve.New(table, overrides, opts...).ResolveAll(args)
			if len(matches) > 0 {
				rows := make([][]string, len(matches))
				for i, m := range matches {
					rows[i] = []string{m.Key, m.Canonical}
				}
				renderTable(cmd.OutOrStdout(), []string{"Name", "Parameter"}, rows)
			}
			for _, k := range skipped {
				printWarning("No match found for %q", k)
			}
			if len(matches) == 0 {
				return errors.New(errors.ErrCodeParamNotFound, "no parameter matches %v", args)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&weight, "weight", false, "resolve font weight parameters instead of sizes")
	cmd.Flags().Float64Var(&cutoff, "cutoff", resolve.DefaultCutoff, "minimum similarity for a fuzzy match")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match names case-insensitively")

	return cmd
}
