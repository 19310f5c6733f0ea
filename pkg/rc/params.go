// Package rc holds figure configuration parameters.
//
// [Params] is the explicit, injected replacement for a plotting library's
// global runtime configuration: an insertion-ordered set of string values
// keyed by dotted names such as "font.size" or "axes.titleweight". It is
// filled from [Defaults], themes, and style files parsed with [Parse], and
// it is read by the chart helpers when a figure is drawn.
//
// Params values are strings so that style files round-trip unchanged.
// Numeric access goes through [Params.Float] and [Params.FontSize]; the
// latter understands relative sizes such as "large" or "x-small".
package rc

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Params is an insertion-ordered parameter set. The zero value is empty and
// ready to use. Params is not safe for concurrent mutation.
type Params struct {
	keys   []string
	values map[string]string
}

// New returns a Params holding kv, which alternates keys and values.
// A trailing key without a value is ignored.
func New(kv ...string) *Params {
	p := &Params{}
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

// Len returns the number of parameters.
func (p *Params) Len() int { return len(p.keys) }

// Keys returns parameter names in insertion order.
func (p *Params) Keys() []string { return slices.Clone(p.keys) }

// Get returns the raw value of key.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is set.
func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Set stores value under key. Existing keys keep their position.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Delete removes key.
func (p *Params) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
}

// Float parses key as a number.
func (p *Params) Float(key string) (float64, error) {
	v, ok := p.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("param %s: %q is not a number", key, v)
	}
	return f, nil
}

// SetFloat stores f under key using the shortest exact representation.
func (p *Params) SetFloat(key string, f float64) {
	p.Set(key, strconv.FormatFloat(f, 'g', -1, 64))
}

// Bool parses key as a boolean. Style files write True/False.
func (p *Params) Bool(key string) (bool, error) {
	v, ok := p.values[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("param %s: %q is not a boolean", key, v)
	}
	return b, nil
}

// Copy returns an independent copy of p.
func (p *Params) Copy() *Params {
	return &Params{
		keys:   slices.Clone(p.keys),
		values: maps.Clone(p.values),
	}
}

// Update sets every parameter of other on p, in other's order.
func (p *Params) Update(other *Params) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
}

// Equal reports whether p and other hold the same keys and values,
// ignoring order.
func (p *Params) Equal(other *Params) bool {
	return maps.Equal(p.values, other.values)
}
