// Package labels reorders categorical axis labels to reduce overlap.
//
// Long labels next to each other on a dense bar chart run into one another.
// [Interleave] alternates short and long labels so that each long label is
// flanked by short ones. It does not guarantee collision-free placement.
package labels

import (
	"slices"
	"unicode/utf8"
)

// Interleave sorts labels by length and emits them from both ends inward:
// shortest, longest, second shortest, second longest, and so on. With an odd
// count the middle label comes last on its own.
//
// Values are re-paired with their labels through a label->value map built
// before sorting, so labels are expected to be unique; for a duplicated label
// every occurrence takes the value of its last occurrence.
//
// The sort is stable, so labels of equal length keep their input order in the
// sorted sequence. Both inputs are left unmodified; values shorter than labels
// pair the missing entries with zero.
func Interleave(labels []string, values []float64) ([]string, []float64) {
	valueOf := make(map[string]float64, len(labels))
	for i, l := range labels {
		if i < len(values) {
			valueOf[l] = values[i]
		} else {
			valueOf[l] = 0
		}
	}

	sorted := slices.Clone(labels)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	})

	out := make([]string, 0, len(sorted))
	for start, end := 0, len(sorted)-1; start <= end; start, end = start+1, end-1 {
		out = append(out, sorted[start])
		if start != end {
			out = append(out, sorted[end])
		}
	}

	outValues := make([]float64, len(out))
	for i, l := range out {
		outValues[i] = valueOf[l]
	}
	return out, outValues
}

// Order returns the permutation Interleave applies: result[i] is the index in
// labels of the i-th interleaved label. Callers with parallel slices of other
// types (colors, errors) use it to reorder them in step.
func Order(labels []string) []int {
	idx := make([]int, len(labels))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return utf8.RuneCountInString(labels[a]) - utf8.RuneCountInString(labels[b])
	})

	out := make([]int, 0, len(idx))
	for start, end := 0, len(idx)-1; start <= end; start, end = start+1, end-1 {
		out = append(out, idx[start])
		if start != end {
			out = append(out, idx[end])
		}
	}
	return out
}
