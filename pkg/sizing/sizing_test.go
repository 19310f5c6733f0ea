package sizing

import (
	"bytes"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/rc"
)

func newTestSizer(t *testing.T) (*Sizer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(rc.Defaults(), WithLogger(log.New(&buf))), &buf
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSize(t *testing.T) {
	aclIn := 455.244 / PointsPerInch
	thesisIn := 426.79135 / PointsPerInch

	tests := []struct {
		name  string
		opts  SizeOptions
		wantW float64
		wantH float64
	}{
		{
			name:  "acl full width",
			opts:  SizeOptions{Publisher: "acl"},
			wantW: aclIn,
			wantH: aclIn * GoldenRatio,
		},
		{
			name:  "thesis half width",
			opts:  SizeOptions{Publisher: "thesis", Fraction: 0.5},
			wantW: thesisIn / 2,
			wantH: thesisIn / 2 * GoldenRatio,
		},
		{
			name:  "width wins over publisher",
			opts:  SizeOptions{Width: 300, Publisher: "acl"},
			wantW: 300 / PointsPerInch,
			wantH: 300 / PointsPerInch * GoldenRatio,
		},
		{
			name:  "subplot grid",
			opts:  SizeOptions{Publisher: "acl", Rows: 3, Cols: 2},
			wantW: aclIn,
			wantH: aclIn * GoldenRatio * 3 / 2,
		},
		{
			name:  "width in inches",
			opts:  SizeOptions{Width: 5, WidthInInches: true},
			wantW: 5,
			wantH: 5 * GoldenRatio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSizer(t)
			w, h, err := s.Size(tt.opts)
			if err != nil {
				t.Fatalf("Size() error: %v", err)
			}
			if !approx(w, tt.wantW) || !approx(h, tt.wantH) {
				t.Errorf("Size() = (%v, %v), want (%v, %v)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSizeErrors(t *testing.T) {
	tests := []struct {
		name string
		opts SizeOptions
	}{
		{"no width or publisher", SizeOptions{}},
		{"fraction above one", SizeOptions{Publisher: "acl", Fraction: 1.5}},
		{"negative fraction", SizeOptions{Publisher: "acl", Fraction: -0.5}},
		{"negative rows", SizeOptions{Publisher: "acl", Rows: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSizer(t)
			_, _, err := s.Size(tt.opts)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Size() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestUnknownPublisherFallsBack(t *testing.T) {
	s, buf := newTestSizer(t)
	got := s.WidthInches(0, "nature")
	if !approx(got, 455.244/PointsPerInch) {
		t.Errorf("WidthInches() = %v, want acl width", got)
	}
	if !strings.Contains(buf.String(), "Publisher not found") {
		t.Errorf("expected an info log, got %q", buf.String())
	}

	if _, err := PublisherWidth("nature"); !errors.Is(err, errors.ErrCodeInvalidPublisher) {
		t.Errorf("PublisherWidth() error = %v", err)
	}
	if !slices.Equal(Publishers(), []string{"acl", "thesis"}) {
		t.Errorf("Publishers() = %v", Publishers())
	}
}

func TestAdjustFontSize(t *testing.T) {
	tests := []struct {
		name      string
		cols      int
		fraction  float64
		wantBase  string
		wantTitle string
	}{
		{"unchanged", 1, 1, "10", "12"},
		{"half width", 1, 0.5, "5", "6"},
		{"two columns half width", 2, 0.5, "3", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSizer(t)
			if err := s.AdjustFontSize(tt.cols, tt.fraction); err != nil {
				t.Fatal(err)
			}
			p := s.Params()
			if v, _ := p.Get(rc.FontSize); v != tt.wantBase {
				t.Errorf("font.size = %q, want %q", v, tt.wantBase)
			}
			if v, _ := p.Get(rc.AxesTitleSize); v != tt.wantTitle {
				t.Errorf("axes.titlesize = %q, want %q", v, tt.wantTitle)
			}
			// legend.title_fontsize starts as None and follows legend.fontsize.
			if v, _ := p.Get(rc.LegendTitleFontSize); v != tt.wantBase {
				t.Errorf("legend.title_fontsize = %q, want %q", v, tt.wantBase)
			}
			if !s.Snapshot().Equal(p) {
				t.Error("snapshot should match adjusted params")
			}
		})
	}

	s, _ := newTestSizer(t)
	if err := s.AdjustFontSize(0, 1); err == nil {
		t.Error("AdjustFontSize(0, 1) should fail")
	}
}

func TestUpdateTextSize(t *testing.T) {
	s, buf := newTestSizer(t)
	if _, _, err := s.Size(SizeOptions{Publisher: "acl"}); err != nil {
		t.Fatal(err)
	}

	skipped := s.UpdateTextSize(true,
		SizeChange{Key: "xlabel", Delta: 2},
		SizeChange{Key: "fontsiz", Delta: 1},
		SizeChange{Key: "nonsense_key_zzz", Delta: 5},
		SizeChange{Key: "legnd", Delta: -2},
	)
	if !slices.Equal(skipped, []string{"nonsense_key_zzz"}) {
		t.Errorf("skipped = %v", skipped)
	}
	if !strings.Contains(buf.String(), "No match found for argument") {
		t.Errorf("expected a warning for the unresolved key, got %q", buf.String())
	}

	p := s.Params()
	want := map[string]string{
		rc.AxesLabelSize:  "12",
		rc.FontSize:       "11",
		rc.LegendFontSize: "8",
		rc.AxesTitleSize:  "12",
	}
	for k, v := range want {
		if got, _ := p.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}

	// Reinitializing starts again from the sized snapshot.
	s.UpdateTextSize(true, SizeChange{Key: "xlabel", Delta: 2})
	if got, _ := p.Get(rc.AxesLabelSize); got != "12" {
		t.Errorf("reinit: axes.labelsize = %q, want 12", got)
	}
	if got, _ := p.Get(rc.FontSize); got != "10" {
		t.Errorf("reinit: font.size = %q, want 10", got)
	}

	// Without reinit changes accumulate.
	s.UpdateTextSize(false, SizeChange{Key: "ylabel", Delta: 2})
	if got, _ := p.Get(rc.AxesLabelSize); got != "14" {
		t.Errorf("accumulate: axes.labelsize = %q, want 14", got)
	}
}

func TestUpdateTextWeight(t *testing.T) {
	s, _ := newTestSizer(t)

	skipped, err := s.UpdateTextWeight(false,
		WeightChange{Key: "title", Weight: rc.WeightBold},
		WeightChange{Key: "xlabel", Weight: rc.WeightLight},
		WeightChange{Key: "suptitel", Weight: rc.WeightBold},
		WeightChange{Key: "nonsense_key_zzz", Weight: rc.WeightBold},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(skipped, []string{"nonsense_key_zzz"}) {
		t.Errorf("skipped = %v", skipped)
	}

	p := s.Params()
	want := map[string]string{
		rc.AxesTitleWeight:   rc.WeightBold,
		rc.AxesLabelWeight:   rc.WeightLight,
		rc.FigureTitleWeight: rc.WeightBold,
		rc.FontWeight:        rc.WeightNormal,
	}
	for k, v := range want {
		if got, _ := p.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}

	before := p.Copy()
	_, err = s.UpdateTextWeight(false,
		WeightChange{Key: "fontweight", Weight: rc.WeightBold},
		WeightChange{Key: "title", Weight: "heavy"},
	)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("invalid weight error = %v", err)
	}
	if !p.Equal(before) {
		t.Error("an invalid weight should leave params unchanged")
	}
}

func TestRemoveTicks(t *testing.T) {
	s, _ := newTestSizer(t)
	s.RemoveTicks(true, false)

	p := s.Params()
	for _, k := range []string{"xtick.major.size", "xtick.minor.size"} {
		if v, _ := p.Get(k); v != "0" {
			t.Errorf("%s = %q, want 0", k, v)
		}
	}
	if v, _ := p.Get("ytick.major.size"); v != "3.5" {
		t.Errorf("ytick.major.size = %q, want untouched 3.5", v)
	}
}

func TestSizeRepeated(t *testing.T) {
	tests := []struct {
		name  string
		calls []SizeOptions
		want  string
	}{
		{"once", []SizeOptions{{Publisher: "acl", Fraction: 0.5}}, "5"},
		{"twice from baseline", []SizeOptions{
			{Publisher: "acl", Fraction: 0.5},
			{Publisher: "acl", Fraction: 0.5},
		}, "5"},
		{"twice accumulated", []SizeOptions{
			{Publisher: "acl", Fraction: 0.5},
			{Publisher: "acl", Fraction: 0.5, Accumulate: true},
		}, "3"},
		{"baseline after accumulating", []SizeOptions{
			{Publisher: "acl", Fraction: 0.5},
			{Publisher: "acl", Fraction: 0.5, Accumulate: true},
			{Publisher: "acl", Fraction: 0.5},
		}, "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSizer(t)
			for _, opts := range tt.calls {
				if _, _, err := s.Size(opts); err != nil {
					t.Fatal(err)
				}
			}
			if v, _ := s.Params().Get(rc.FontSize); v != tt.want {
				t.Errorf("font.size = %q, want %s", v, tt.want)
			}
		})
	}
}
