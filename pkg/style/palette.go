package style

import (
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/rg089/plotex/pkg/errors"
)

// palettes holds the seaborn qualitative palettes by name.
var palettes = map[string][]string{
	"deep": {
		"#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3",
		"#937860", "#da8bc3", "#8c8c8c", "#ccb974", "#64b5cd",
	},
	"muted": {
		"#4878d0", "#ee854a", "#6acc64", "#d65f5f", "#956cb4",
		"#8c613c", "#dc7ec0", "#797979", "#d5bb67", "#82c6e2",
	},
	"pastel": {
		"#a1c9f4", "#ffb482", "#8de5a1", "#ff9f9b", "#d0bbff",
		"#debb9b", "#fab0e4", "#cfcfcf", "#fffea3", "#b9f2f0",
	},
	"bright": {
		"#023eff", "#ff7c00", "#1ac938", "#e8000b", "#8b2be2",
		"#9f4800", "#f14cc1", "#a3a3a3", "#ffc400", "#00d7ff",
	},
	"dark": {
		"#001c7f", "#b1400d", "#12711c", "#8c0800", "#591e71",
		"#592f0d", "#a23582", "#3c3c3c", "#b8850a", "#006374",
	},
	"colorblind": {
		"#0173b2", "#de8f05", "#029e73", "#d55e00", "#cc78bc",
		"#ca9161", "#fbafe4", "#949494", "#ece133", "#56b4e9",
	},
}

// DefaultPalette is used when no palette is configured.
const DefaultPalette = "deep"

// Palettes returns the known palette names, sorted.
func Palettes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Palette returns the colors of the named palette. A name may also be a
// comma-separated list of hex colors, e.g. "#1f77b4,#ff7f0e".
func Palette(name string) ([]color.Color, error) {
	hexes, ok := palettes[strings.ToLower(name)]
	if !ok {
		if !strings.HasPrefix(strings.TrimSpace(name), "#") {
			return nil, errors.New(errors.ErrCodeInvalidPalette,
				"unknown palette %q (known: %s)", name, strings.Join(Palettes(), ", "))
		}
		hexes = strings.Split(name, ",")
	}

	colors := make([]color.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// tableau holds the ten default cycle colors, addressed as "C0".."C9" or
// "tab:blue".."tab:cyan" in style files.
var tableau = []struct {
	name, hex string
}{
	{"blue", "#1f77b4"},
	{"orange", "#ff7f0e"},
	{"green", "#2ca02c"},
	{"red", "#d62728"},
	{"purple", "#9467bd"},
	{"brown", "#8c564b"},
	{"pink", "#e377c2"},
	{"gray", "#7f7f7f"},
	{"olive", "#bcbd22"},
	{"cyan", "#17becf"},
}

// shortColors are the one-letter color codes.
var shortColors = map[string]colorful.Color{
	"b": {R: 0, G: 0, B: 1},
	"g": {R: 0, G: 0.5, B: 0},
	"r": {R: 1, G: 0, B: 0},
	"c": {R: 0, G: 0.75, B: 0.75},
	"m": {R: 0.75, G: 0, B: 0.75},
	"y": {R: 0.75, G: 0.75, B: 0},
	"k": {R: 0, G: 0, B: 0},
	"w": {R: 1, G: 1, B: 1},
}

// ParseColor parses a color as written in style files: "#rrggbb" or "#rgb"
// hex, a grayscale level between 0 and 1 ("0.8"), a one-letter code ("k"),
// a cycle color ("C0", "tab:blue"), "none", or a CSS color name
// ("lightgray").
func ParseColor(s string) (color.Color, error) {
	s = strings.Trim(strings.TrimSpace(s), `"'`)
	name := strings.ToLower(s)

	if name == "none" {
		return color.Transparent, nil
	}
	if c, ok := shortColors[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if hex, ok := cycleColor(name); ok {
		c, _ := colorful.Hex(hex)
		return c, nil
	}
	if v, err := strconv.ParseFloat(name, 64); err == nil && !bareHex(name) {
		if v < 0 || v > 1 {
			return nil, errors.New(errors.ErrCodeInvalidPalette, "grayscale color %q must be within [0, 1]", s)
		}
		return colorful.Color{R: v, G: v, B: v}, nil
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "invalid color %q", s)
	}
	return c, nil
}

// bareHex reports whether s is a 3 or 6 digit hex color missing its '#'.
func bareHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	return strings.Trim(s, "0123456789abcdef") == ""
}

func cycleColor(name string) (string, bool) {
	if n, ok := strings.CutPrefix(name, "tab:"); ok {
		if n == "grey" {
			n = "gray"
		}
		for _, t := range tableau {
			if t.name == n {
				return t.hex, true
			}
		}
		return "", false
	}
	if n, ok := strings.CutPrefix(name, "c"); ok && len(n) == 1 && n[0] >= '0' && n[0] <= '9' {
		return tableau[n[0]-'0'].hex, true
	}
	return "", false
}

// Cycle returns n colors from palette, wrapping around when n exceeds its
// length.
func Cycle(palette []color.Color, n int) []color.Color {
	if len(palette) == 0 || n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}
