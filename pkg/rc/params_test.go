package rc

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestParamsOrder(t *testing.T) {
	p := New("b", "1", "a", "2")
	p.Set("c", "3")
	p.Set("b", "4")

	if got := p.Keys(); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	if v, _ := p.Get("b"); v != "4" {
		t.Errorf("Get(b) = %q, want 4", v)
	}

	p.Delete("a")
	p.Delete("missing")
	if got := p.Keys(); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("Keys() after delete = %v", got)
	}
	if p.Has("a") {
		t.Error("a should be deleted")
	}
}

func TestParamsZeroValue(t *testing.T) {
	var p Params
	p.SetFloat("x", 2.5)
	if f, err := p.Float("x"); err != nil || f != 2.5 {
		t.Errorf("Float(x) = %v, %v", f, err)
	}
	if _, err := p.Float("y"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Float(y) error = %v, want ErrUnknownKey", err)
	}
}

func TestParamsCopyIsIndependent(t *testing.T) {
	p := New("font.size", "10")
	c := p.Copy()
	c.Set("font.size", "12")
	c.Set("extra", "1")

	if v, _ := p.Get("font.size"); v != "10" {
		t.Errorf("original modified: %q", v)
	}
	if p.Has("extra") {
		t.Error("original gained key from copy")
	}
	if p.Equal(c) {
		t.Error("copies should differ after modification")
	}
}

func TestParamsUpdate(t *testing.T) {
	p := New("a", "1", "b", "2")
	p.Update(New("b", "20", "c", "30"))
	p.Update(nil)

	if got := p.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	if v, _ := p.Get("b"); v != "20" {
		t.Errorf("b = %q, want 20", v)
	}
}

func TestBool(t *testing.T) {
	p := New("axes.grid", "True", "text.usetex", "false", "bad", "maybe")
	if b, err := p.Bool("axes.grid"); err != nil || !b {
		t.Errorf("Bool(axes.grid) = %v, %v", b, err)
	}
	if b, err := p.Bool("text.usetex"); err != nil || b {
		t.Errorf("Bool(text.usetex) = %v, %v", b, err)
	}
	if _, err := p.Bool("bad"); err == nil {
		t.Error("Bool(bad) should fail")
	}
}

func TestFontSize(t *testing.T) {
	p := Defaults()
	p.Set(FontSize, "10")

	tests := []struct {
		key  string
		want float64
	}{
		{FontSize, 10},
		{AxesTitleSize, 12},
		{AxesLabelSize, 10},
		{LegendTitleFontSize, 10}, // None falls back to legend.fontsize
	}
	for _, tt := range tests {
		got, err := p.FontSize(tt.key)
		if err != nil {
			t.Fatalf("FontSize(%s) error: %v", tt.key, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FontSize(%s) = %v, want %v", tt.key, got, tt.want)
		}
	}

	p.Set(XTickLabelSize, "x-small")
	if got, _ := p.FontSize(XTickLabelSize); math.Abs(got-6.94) > 1e-9 {
		t.Errorf("FontSize(x-small) = %v, want 6.94", got)
	}

	p.Set(YTickLabelSize, "gigantic")
	if _, err := p.FontSize(YTickLabelSize); err == nil {
		t.Error("unknown relative size should fail")
	}

	p.Set(FontSize, "large")
	if _, err := p.FontSize(FontSize); err == nil {
		t.Error("relative font.size should fail")
	}

	if _, err := New().FontSize(AxesTitleSize); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("missing key error = %v", err)
	}
}

func TestWeight(t *testing.T) {
	p := New("a", "bold", "b", "700", "c", "200", "d", "roman", "e", " Light ")
	tests := map[string]string{
		"a":       WeightBold,
		"b":       WeightBold,
		"c":       WeightLight,
		"d":       WeightNormal,
		"e":       WeightLight,
		"missing": WeightNormal,
	}
	for key, want := range tests {
		if got := p.Weight(key); got != want {
			t.Errorf("Weight(%s) = %q, want %q", key, got, want)
		}
	}
	if !ValidWeight("bold") || ValidWeight("heavy") {
		t.Error("ValidWeight should accept only light, normal and bold")
	}
}

func TestParse(t *testing.T) {
	const style = `# LaTeX-friendly plots
text.usetex: True
font.family : serif
font.size: 10   # base size
axes.facecolor: "#eaeaf2"
axes.labelsize : 'small'

legend.fontsize: 8
`
	p, err := ParseString(style)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := []string{"text.usetex", "font.family", "font.size", "axes.facecolor", "axes.labelsize", "legend.fontsize"}
	if got := p.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	checks := map[string]string{
		"font.family":    "serif",
		"font.size":      "10",
		"axes.facecolor": "#eaeaf2",
		"axes.labelsize": "small",
	}
	for k, want := range checks {
		if got, _ := p.Get(k); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
}

func TestParseReportsBadLines(t *testing.T) {
	p, err := ParseString("font.size: 9\nnot a param line\naxes.grid: True\n")
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("error = %v, want ParseError on line 2", err)
	}
	if p.Len() != 2 {
		t.Errorf("well-formed lines should still parse, got %d params", p.Len())
	}
}

func TestFormatRoundTrip(t *testing.T) {
	p := New("font.size", "11", "axes.facecolor", "#ffffff", "font.family", "serif")

	var buf bytes.Buffer
	if err := Format(&buf, p); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `axes.facecolor : "#ffffff"`) {
		t.Errorf("colors should be quoted:\n%s", buf.String())
	}

	back, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(p) || !slices.Equal(back.Keys(), p.Keys()) {
		t.Errorf("round trip mismatch: %v vs %v", back.Keys(), p.Keys())
	}
}
