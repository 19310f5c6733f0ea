package rc

// Defaults returns the baseline parameters before any theme or style file is
// applied. Values follow matplotlib's defaults for the keys plotex reads.
func Defaults() *Params {
	return New(
		"font.family", "sans-serif",
		FontSize, "10",
		FontWeight, WeightNormal,

		"figure.facecolor", "white",
		"figure.titlesize", "large",
		FigureTitleWeight, WeightNormal,

		"axes.facecolor", "white",
		"axes.edgecolor", "black",
		"axes.grid", "False",
		AxesTitleSize, "large",
		AxesTitleWeight, WeightNormal,
		AxesLabelSize, "medium",
		AxesLabelWeight, WeightNormal,

		"grid.color", "#b0b0b0",
		"grid.linewidth", "0.8",

		XTickLabelSize, "medium",
		"xtick.major.size", "3.5",
		"xtick.minor.size", "2",
		YTickLabelSize, "medium",
		"ytick.major.size", "3.5",
		"ytick.minor.size", "2",

		LegendFontSize, "medium",
		LegendTitleFontSize, "None",

		"lines.markersize", "6",
	)
}
