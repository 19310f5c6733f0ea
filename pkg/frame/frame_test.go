package frame

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/rg089/plotex/pkg/errors"
)

const results = `model,task,accuracy
bert,ner,0.9
gpt,ner,0.8
bert,qa,0.7
t5,qa,0.6
bert,ner,0.8
`

func mustRead(t *testing.T, data string) *Frame {
	t.Helper()
	f, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	return f
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestReadCSV(t *testing.T) {
	f := mustRead(t, results)
	if f.Len() != 5 {
		t.Errorf("Len() = %d, want 5", f.Len())
	}
	if want := []string{"model", "task", "accuracy"}; !slices.Equal(f.Columns(), want) {
		t.Errorf("Columns() = %v, want %v", f.Columns(), want)
	}

	models, err := f.Strings("model")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"bert", "gpt", "bert", "t5", "bert"}; !slices.Equal(models, want) {
		t.Errorf("Strings(model) = %v", models)
	}

	acc, err := f.Floats("accuracy")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(acc[0], 0.9) || !approx(acc[4], 0.8) {
		t.Errorf("Floats(accuracy) = %v", acc)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"ragged rows", "a,b\n1\n"},
		{"duplicate column", "a,a\n1,2\n"},
		{"empty column", "a,\n1,2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadCSV() error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestHeaderOnly(t *testing.T) {
	f := mustRead(t, "a,b\n")
	if f.Len() != 0 {
		t.Fatalf("Len() = %d", f.Len())
	}
	vals, err := f.Strings("a")
	if err != nil || len(vals) != 0 {
		t.Errorf("Strings(a) = %v, %v", vals, err)
	}
	groups, err := f.GroupReduce("a", "b", Mean)
	if err != nil || len(groups) != 0 {
		t.Errorf("GroupReduce() = %v, %v", groups, err)
	}
}

func TestColumnErrors(t *testing.T) {
	f := mustRead(t, results)
	if _, err := f.Strings("loss"); !errors.Is(err, errors.ErrCodeInvalidColumn) {
		t.Errorf("unknown column error = %v", err)
	}
	if _, err := f.Floats("model"); !errors.Is(err, errors.ErrCodeInvalidColumn) {
		t.Errorf("non-numeric column error = %v", err)
	}
}

func TestFloatsEmptyCellIsNaN(t *testing.T) {
	f := mustRead(t, "x\n1\n\"\"\n3\n")
	xs, err := f.Floats("x")
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 3 || !math.IsNaN(xs[1]) {
		t.Errorf("Floats(x) = %v", xs)
	}
}

func TestUnique(t *testing.T) {
	f := mustRead(t, results)
	got, _ := f.Unique("model")
	if want := []string{"bert", "gpt", "t5"}; !slices.Equal(got, want) {
		t.Errorf("Unique(model) = %v, want %v", got, want)
	}
}

func TestValueCounts(t *testing.T) {
	f := mustRead(t, results)
	got, err := f.ValueCounts("model")
	if err != nil {
		t.Fatal(err)
	}
	want := []ValueCount{{"bert", 3}, {"gpt", 1}, {"t5", 1}}
	if !slices.Equal(got, want) {
		t.Errorf("ValueCounts(model) = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	f := mustRead(t, results)
	qa, err := f.Filter("task", "qa")
	if err != nil {
		t.Fatal(err)
	}
	models, _ := qa.Strings("model")
	if want := []string{"bert", "t5"}; !slices.Equal(models, want) {
		t.Errorf("Filter(task=qa) models = %v, want %v", models, want)
	}
}

func TestGroupReduce(t *testing.T) {
	f := mustRead(t, results)

	tests := []struct {
		reducer string
		want    []Group
	}{
		{"mean", []Group{{"bert", 0.8}, {"gpt", 0.8}, {"t5", 0.6}}},
		{"sum", []Group{{"bert", 2.4}, {"gpt", 0.8}, {"t5", 0.6}}},
		{"count", []Group{{"bert", 3}, {"gpt", 1}, {"t5", 1}}},
		{"median", []Group{{"bert", 0.8}, {"gpt", 0.8}, {"t5", 0.6}}},
		{"min", []Group{{"bert", 0.7}, {"gpt", 0.8}, {"t5", 0.6}}},
		{"max", []Group{{"bert", 0.9}, {"gpt", 0.8}, {"t5", 0.6}}},
	}
	for _, tt := range tests {
		t.Run(tt.reducer, func(t *testing.T) {
			r, err := ReducerByName(tt.reducer)
			if err != nil {
				t.Fatal(err)
			}
			got, err := f.GroupReduce("model", "accuracy", r)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("GroupReduce() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].Key != tt.want[i].Key || !approx(got[i].Value, tt.want[i].Value) {
					t.Errorf("group %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMedianEvenCount(t *testing.T) {
	if got := Median([]float64{4, 1, 3, 2}); !approx(got, 2.5) {
		t.Errorf("Median(4, 1, 3, 2) = %v, want 2.5", got)
	}
	if got := Median([]float64{5}); !approx(got, 5) {
		t.Errorf("Median(5) = %v, want 5", got)
	}
}

func TestGroupReduceSkipsMissingValues(t *testing.T) {
	f := mustRead(t, "model,acc\na,1\na,\nb,3\nc,NaN\n")

	tests := []struct {
		reducer string
		want    []Group
	}{
		{"mean", []Group{{"a", 1}, {"b", 3}}},
		{"count", []Group{{"a", 1}, {"b", 1}}},
		{"median", []Group{{"a", 1}, {"b", 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.reducer, func(t *testing.T) {
			r, err := ReducerByName(tt.reducer)
			if err != nil {
				t.Fatal(err)
			}
			got, err := f.GroupReduce("model", "acc", r)
			if err != nil {
				t.Fatalf("GroupReduce() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("GroupReduce() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].Key != tt.want[i].Key || !approx(got[i].Value, tt.want[i].Value) {
					t.Errorf("group %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDropNaN(t *testing.T) {
	in := []float64{1, math.NaN(), 2}
	if got := DropNaN(in); !slices.Equal(got, []float64{1, 2}) {
		t.Errorf("DropNaN() = %v, want [1 2]", got)
	}
	if !math.IsNaN(in[1]) {
		t.Error("DropNaN modified its input")
	}
}

func TestGroupReduceNumericKeys(t *testing.T) {
	f := mustRead(t, "epoch,loss\n10,1\n2,3\n1,5\n2,1\n")
	got, err := f.GroupReduce("epoch", "loss", Mean)
	if err != nil {
		t.Fatal(err)
	}
	keys := make([]string, len(got))
	for i, g := range got {
		keys[i] = g.Key
	}
	if want := []string{"1", "2", "10"}; !slices.Equal(keys, want) {
		t.Errorf("keys = %v, want numeric order %v", keys, want)
	}
}

func TestReducerByName(t *testing.T) {
	if _, err := ReducerByName(" MEAN "); err != nil {
		t.Errorf("ReducerByName should trim and fold case: %v", err)
	}
	if _, err := ReducerByName("mode"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown reducer error = %v", err)
	}
	if !approx(GeoMean([]float64{1, 4}), 2) {
		t.Errorf("GeoMean(1, 4) = %v", GeoMean([]float64{1, 4}))
	}
}

func TestCrosstab(t *testing.T) {
	f := mustRead(t, results)
	ct, err := f.Crosstab("model", "task")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ct.Bases, []string{"bert", "gpt", "t5"}) {
		t.Errorf("Bases = %v", ct.Bases)
	}
	if !slices.Equal(ct.Stacks, []string{"ner", "qa"}) {
		t.Errorf("Stacks = %v", ct.Stacks)
	}
	want := [][]float64{
		{2, 1, 0}, // ner
		{1, 0, 1}, // qa
	}
	for i := range want {
		if !slices.Equal(ct.Counts[i], want[i]) {
			t.Errorf("Counts[%d] = %v, want %v", i, ct.Counts[i], want[i])
		}
	}
}
