package sizing

import (
	"github.com/rg089/plotex/pkg/rc"
	"github.com/rg089/plotex/pkg/resolve"
)

// SizeTable maps the font size parameters to the short names users type.
var SizeTable = resolve.AliasTable{
	{Key: rc.FontSize, Short: "fontsize"},
	{Key: rc.AxesTitleSize, Short: "title"},
	{Key: rc.LegendTitleFontSize, Short: "legendtitle"},
	{Key: rc.XTickLabelSize, Short: "xticks"},
	{Key: rc.YTickLabelSize, Short: "yticks"},
	{Key: rc.AxesLabelSize, Short: "labels"},
	{Key: rc.LegendFontSize, Short: "legend"},
}

// SizeOverrides are matched literally before any fuzzy matching.
var SizeOverrides = resolve.Overrides{
	"xlabel": rc.AxesLabelSize,
	"ylabel": rc.AxesLabelSize,
	"title":  rc.AxesTitleSize,
	"legend": rc.LegendFontSize,
}

// WeightTable maps the font weight parameters to their short names.
var WeightTable = resolve.AliasTable{
	{Key: rc.FontWeight, Short: "fontweight"},
	{Key: rc.AxesTitleWeight, Short: "title"},
	{Key: rc.AxesLabelWeight, Short: "labels"},
	{Key: rc.FigureTitleWeight, Short: "suptitle"},
}

// WeightOverrides are matched literally before any fuzzy matching.
var WeightOverrides = resolve.Overrides{
	"xlabel": rc.AxesLabelWeight,
	"ylabel": rc.AxesLabelWeight,
	"title":  rc.AxesTitleWeight,
}

// Tick length parameters zeroed by RemoveTicks.
var (
	xTickKeys = []string{"xtick.major.size", "xtick.minor.size"}
	yTickKeys = []string{"ytick.major.size", "ytick.minor.size"}
)
