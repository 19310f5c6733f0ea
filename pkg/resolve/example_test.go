package resolve_test

import (
	"fmt"

	"github.com/rg089/plotex/pkg/resolve"
)

func ExampleResolve() {
	table := resolve.AliasTable{
		{Key: "font.size", Short: "fontsize"},
		{Key: "axes.titlesize", Short: "title"},
	}
	overrides := resolve.Overrides{"xlabel": "axes.labelsize"}

	for _, key := range []string{"xlabel", "fontsiz", "titel", "colour"} {
		canonical, err := resolve.Resolve(key, table, overrides)
		if err != nil {
			fmt.Printf("%s: %v\n", key, err)
			continue
		}
		fmt.Printf("%s -> %s\n", key, canonical)
	}
	// Output:
	// xlabel -> axes.labelsize
	// fontsiz -> font.size
	// titel -> axes.titlesize
	// colour: no matching parameter
}

func ExampleResolver_ResolveAll() {
	r := resolve.New(resolve.AliasTable{
		{Key: "xtick.labelsize", Short: "xticks"},
		{Key: "ytick.labelsize", Short: "yticks"},
	}, nil)

	matches, skipped := r.ResolveAll([]string{"yticks", "qqqq", "xtick"})
	for _, m := range matches {
		fmt.Println(m.Key, "->", m.Canonical)
	}
	fmt.Println("skipped:", skipped)
	// Output:
	// yticks -> ytick.labelsize
	// xtick -> xtick.labelsize
	// skipped: [qqqq]
}
