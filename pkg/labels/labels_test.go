package labels

import (
	"slices"
	"strings"
	"testing"
)

func TestInterleave(t *testing.T) {
	tests := []struct {
		name       string
		labels     []string
		values     []float64
		wantLabels []string
		wantValues []float64
	}{
		{
			name:       "even count",
			labels:     []string{"a", "bb", "ccc", "dddd"},
			values:     []float64{1, 2, 3, 4},
			wantLabels: []string{"a", "dddd", "bb", "ccc"},
			wantValues: []float64{1, 4, 2, 3},
		},
		{
			name:       "odd count keeps middle last",
			labels:     []string{"eeeee", "a", "ccc", "bb", "dddd"},
			values:     []float64{5, 1, 3, 2, 4},
			wantLabels: []string{"a", "eeeee", "bb", "dddd", "ccc"},
			wantValues: []float64{1, 5, 2, 4, 3},
		},
		{
			name:       "single",
			labels:     []string{"only"},
			values:     []float64{7},
			wantLabels: []string{"only"},
			wantValues: []float64{7},
		},
		{
			name:       "equal lengths keep input order",
			labels:     []string{"xx", "yy", "zz"},
			values:     []float64{1, 2, 3},
			wantLabels: []string{"xx", "zz", "yy"},
			wantValues: []float64{1, 3, 2},
		},
		{
			name:       "rune length",
			labels:     []string{"ééé", "ab", "c"},
			values:     []float64{3, 2, 1},
			wantLabels: []string{"c", "ééé", "ab"},
			wantValues: []float64{1, 3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLabels, gotValues := Interleave(tt.labels, tt.values)
			if !slices.Equal(gotLabels, tt.wantLabels) {
				t.Errorf("labels = %v, want %v", gotLabels, tt.wantLabels)
			}
			if !slices.Equal(gotValues, tt.wantValues) {
				t.Errorf("values = %v, want %v", gotValues, tt.wantValues)
			}
		})
	}
}

func TestInterleaveEmpty(t *testing.T) {
	l, v := Interleave(nil, nil)
	if len(l) != 0 || len(v) != 0 {
		t.Errorf("Interleave(nil, nil) = %v, %v; want empty", l, v)
	}
	l, v = Interleave([]string{}, []float64{})
	if len(l) != 0 || len(v) != 0 {
		t.Errorf("Interleave([], []) = %v, %v; want empty", l, v)
	}
}

func TestInterleaveIsPermutation(t *testing.T) {
	inputs := [][]string{
		{"alpha", "b", "gamma ray", "de", "epsilon", "z"},
		{"one", "three", "seventeen", "4", "fifty-five", "six", "xx"},
		strings.Fields("the quick brown fox jumps over a lazy dog"),
	}
	for _, labels := range inputs {
		values := make([]float64, len(labels))
		for i := range values {
			values[i] = float64(i * 10)
		}
		gotLabels, gotValues := Interleave(labels, values)

		if !slices.Equal(sortedCopy(gotLabels), sortedCopy(labels)) {
			t.Errorf("Interleave(%v) labels %v are not a permutation", labels, gotLabels)
		}
		for i, l := range gotLabels {
			orig := slices.Index(labels, l)
			if gotValues[i] != values[orig] {
				t.Errorf("label %q paired with %v, want %v", l, gotValues[i], values[orig])
			}
		}
	}
}

func TestInterleaveDoesNotModifyInput(t *testing.T) {
	labels := []string{"dddd", "a", "ccc", "bb"}
	values := []float64{4, 1, 3, 2}
	Interleave(labels, values)
	if !slices.Equal(labels, []string{"dddd", "a", "ccc", "bb"}) {
		t.Errorf("labels modified: %v", labels)
	}
	if !slices.Equal(values, []float64{4, 1, 3, 2}) {
		t.Errorf("values modified: %v", values)
	}
}

func TestInterleaveDuplicateLabelsLastValueWins(t *testing.T) {
	gotLabels, gotValues := Interleave([]string{"a", "bbb", "a"}, []float64{1, 2, 3})
	if !slices.Equal(gotLabels, []string{"a", "bbb", "a"}) {
		t.Errorf("labels = %v", gotLabels)
	}
	if !slices.Equal(gotValues, []float64{3, 2, 3}) {
		t.Errorf("values = %v", gotValues)
	}
}

func TestOrder(t *testing.T) {
	labels := []string{"ccc", "a", "dddd", "bb"}
	got := Order(labels)
	if !slices.Equal(got, []int{1, 2, 3, 0}) {
		t.Errorf("Order(%v) = %v", labels, got)
	}

	interleaved, _ := Interleave(labels, nil)
	for i, idx := range got {
		if labels[idx] != interleaved[i] {
			t.Errorf("Order and Interleave disagree at %d: %q vs %q", i, labels[idx], interleaved[i])
		}
	}

	if len(Order(nil)) != 0 {
		t.Error("Order(nil) should be empty")
	}
}

func sortedCopy(s []string) []string {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}
