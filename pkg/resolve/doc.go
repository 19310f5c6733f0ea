// Package resolve maps loosely spelled user keys to canonical configuration
// keys.
//
// Resolution is a two-stage lookup. An exact [Overrides] entry always wins
// and bypasses any similarity scoring. Otherwise the key is compared against
// every canonical key and every alias of an [AliasTable] using the
// SequenceMatcher ratio (twice the number of matched characters in the
// longest matching blocks, divided by the total length of both strings).
// The best candidate that clears the cutoff (0.6 by default) is returned;
// an alias is mapped back to the canonical key it belongs to.
//
// Candidate order is fixed: canonical keys in table order, then aliases in
// table order. Equal scores keep the earliest candidate, and an alias shared
// by several canonical keys resolves to the first of them. This makes
// [Resolve] a pure function of its inputs.
//
// # Usage
//
//	table := resolve.AliasTable{
//	    {Key: "font.size", Short: "fontsize"},
//	    {Key: "axes.titlesize", Short: "title"},
//	}
//	overrides := resolve.Overrides{"xlabel": "axes.labelsize"}
//
//	key, err := resolve.Resolve("fontsiz", table, overrides)
//	// key == "font.size"
//
// Keys that match nothing return [ErrNotFound]. Batch callers use
// [Resolver.ResolveAll], which never fails as a whole and reports the keys it
// had to skip.
package resolve
