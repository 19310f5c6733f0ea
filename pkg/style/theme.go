package style

import (
	"slices"
	"strings"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/rc"
)

// themes are the seaborn axes styles expressed as rc parameters.
var themes = map[string]*rc.Params{
	"darkgrid": rc.New(
		"axes.facecolor", "#eaeaf2",
		"axes.edgecolor", "white",
		"axes.grid", "True",
		"grid.color", "white",
		"xtick.major.size", "0",
		"ytick.major.size", "0",
	),
	"whitegrid": rc.New(
		"axes.facecolor", "white",
		"axes.edgecolor", "#cccccc",
		"axes.grid", "True",
		"grid.color", "#cccccc",
		"xtick.major.size", "0",
		"ytick.major.size", "0",
	),
	"dark": rc.New(
		"axes.facecolor", "#eaeaf2",
		"axes.edgecolor", "white",
		"axes.grid", "False",
		"xtick.major.size", "0",
		"ytick.major.size", "0",
	),
	"white": rc.New(
		"axes.facecolor", "white",
		"axes.edgecolor", "#262626",
		"axes.grid", "False",
		"xtick.major.size", "0",
		"ytick.major.size", "0",
	),
	"ticks": rc.New(
		"axes.facecolor", "white",
		"axes.edgecolor", "#262626",
		"axes.grid", "False",
		"xtick.major.size", "6",
		"ytick.major.size", "6",
		"xtick.minor.size", "3",
		"ytick.minor.size", "3",
	),
}

// Themes returns the known theme names, sorted.
func Themes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Theme returns a copy of the rc parameters of the named theme.
func Theme(name string) (*rc.Params, error) {
	p, ok := themes[strings.ToLower(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidStyle,
			"unknown theme %q (known: %s)", name, strings.Join(Themes(), ", "))
	}
	return p.Copy(), nil
}
