package resolve

import (
	"errors"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"
)

// DefaultCutoff is the minimum similarity ratio a candidate needs to be
// considered a match.
const DefaultCutoff = 0.6

// ErrNotFound is returned when no candidate clears the similarity cutoff.
var ErrNotFound = errors.New("no matching parameter")

// Alias pairs a canonical key with its short user-facing synonym.
type Alias struct {
	Key   string // Canonical key, e.g. "font.size"
	Short string // Alias, e.g. "fontsize"
}

// AliasTable is an insertion-ordered set of canonical keys and their aliases.
type AliasTable []Alias

// Keys returns the canonical keys in table order.
func (t AliasTable) Keys() []string {
	keys := make([]string, len(t))
	for i, a := range t {
		keys[i] = a.Key
	}
	return keys
}

// Aliases returns the aliases in table order.
func (t AliasTable) Aliases() []string {
	aliases := make([]string, len(t))
	for i, a := range t {
		aliases[i] = a.Short
	}
	return aliases
}

// Has reports whether key is a canonical key of the table.
func (t AliasTable) Has(key string) bool {
	for _, a := range t {
		if a.Key == key {
			return true
		}
	}
	return false
}

// AliasOf returns the alias of a canonical key.
func (t AliasTable) AliasOf(key string) (string, bool) {
	for _, a := range t {
		if a.Key == key {
			return a.Short, true
		}
	}
	return "", false
}

// Canonical returns the first canonical key whose alias is short.
func (t AliasTable) Canonical(short string) (string, bool) {
	for _, a := range t {
		if a.Short == short {
			return a.Key, true
		}
	}
	return "", false
}

// Overrides maps literal user keys to canonical keys. Entries are matched
// exactly and take precedence over the alias table.
type Overrides map[string]string

// Resolve maps key to a canonical key of table using the package defaults.
// See [Resolver.Resolve].
func Resolve(key string, table AliasTable, overrides Overrides) (string, error) {
	return New(table, overrides).Resolve(key)
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithCutoff sets the minimum similarity ratio in [0, 1].
func WithCutoff(c float64) Option {
	return func(r *Resolver) { r.cutoff = min(max(c, 0), 1) }
}

// WithCaseFolding folds the key before similarity scoring, so "XLabels" scores
// like "xlabels". Overrides are still matched on the key as given.
func WithCaseFolding() Option {
	return func(r *Resolver) { r.fold = true }
}

// Resolver holds an alias table and overrides for repeated lookups.
// It never modifies either.
type Resolver struct {
	table     AliasTable
	overrides Overrides
	cutoff    float64
	fold      bool
}

// New creates a Resolver over table and overrides.
func New(table AliasTable, overrides Overrides, opts ...Option) *Resolver {
	r := &Resolver{table: table, overrides: overrides, cutoff: DefaultCutoff}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Table returns the alias table the resolver searches.
func (r *Resolver) Table() AliasTable { return r.table }

// Resolve returns the canonical key for key, or [ErrNotFound].
func (r *Resolver) Resolve(key string) (string, error) {
	if canonical, ok := r.overrides[key]; ok {
		return canonical, nil
	}

	if r.fold {
		key = cases.Fold().String(key)
	}

	match, ok := r.closest(key)
	if !ok {
		return "", ErrNotFound
	}
	if r.table.Has(match) {
		return match, nil
	}
	canonical, _ := r.table.Canonical(match)
	return canonical, nil
}

// Match is one resolved key.
type Match struct {
	Key       string // Key as supplied by the caller
	Canonical string // Resolved canonical key
}

// ResolveAll resolves every key in order. Keys that cannot be resolved are
// returned in skipped; they never stop the remaining keys from resolving.
func (r *Resolver) ResolveAll(keys []string) (matches []Match, skipped []string) {
	for _, k := range keys {
		canonical, err := r.Resolve(k)
		if err != nil {
			skipped = append(skipped, k)
			continue
		}
		matches = append(matches, Match{Key: k, Canonical: canonical})
	}
	return matches, skipped
}

// closest returns the best scoring candidate at or above the cutoff.
// Candidates are canonical keys followed by aliases; ties keep the earlier one.
func (r *Resolver) closest(key string) (string, bool) {
	word := chars(key)
	m := difflib.NewMatcher(nil, word)

	best, bestScore := "", -1.0
	for _, cand := range r.candidates() {
		m.SetSeq1(chars(cand))
		if m.RealQuickRatio() < r.cutoff || m.QuickRatio() < r.cutoff {
			continue
		}
		score := m.Ratio()
		if score >= r.cutoff && score > bestScore {
			best, bestScore = cand, score
		}
	}
	return best, bestScore >= 0
}

func (r *Resolver) candidates() []string {
	return append(r.table.Keys(), r.table.Aliases()...)
}

func chars(s string) []string {
	return strings.Split(s, "")
}
