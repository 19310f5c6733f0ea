package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/sizing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, filepath.Join(dir, "elsewhere"), `
url = "https://example.com/style.txt"
theme = "whitegrid"
palette = "pastel"
colorblind = true
publisher = "thesis"
fraction = 0.5
cache_dir = "/tmp/plotex"

[fetch]
attempts = 3
`)

	cfg, got, err := loadProjectConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.Theme != "whitegrid" || cfg.Palette != "pastel" || !cfg.Colorblind {
		t.Errorf("style fields = %+v", cfg)
	}
	if cfg.publisher() != "thesis" || cfg.Fraction != 0.5 || cfg.Fetch.Attempts != 3 {
		t.Errorf("size/fetch fields = %+v", cfg)
	}
	opts := cfg.styleOptions()
	if opts.URL != "https://example.com/style.txt" || opts.PaletteName() != "pastel" {
		t.Errorf("styleOptions() = %+v", opts)
	}
}

func TestLoadProjectConfigSearch(t *testing.T) {
	dir := isolate(t)

	cfg, path, err := loadProjectConfig("")
	if err != nil || path != "" {
		t.Fatalf("no config: path %q, err %v", path, err)
	}
	if cfg.publisher() != sizing.DefaultPublisher {
		t.Errorf("default publisher = %q", cfg.publisher())
	}

	user := writeConfig(t, filepath.Join(dir, "config", appName), `theme = "dark"`)
	cfg, path, err = loadProjectConfig("")
	if err != nil || path != user || cfg.Theme != "dark" {
		t.Fatalf("user config: %+v, path %q, err %v", cfg, path, err)
	}

	// The working directory wins over the user config.
	writeConfig(t, dir, `theme = "ticks"`)
	cfg, path, err = loadProjectConfig("")
	if err != nil || cfg.Theme != "ticks" {
		t.Fatalf("local config: %+v, path %q, err %v", cfg, path, err)
	}
	if path != configFile {
		t.Errorf("path = %q, want the local %s", path, configFile)
	}
}

func TestLoadProjectConfigErrors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"malformed", `theme = `, errors.ErrCodeInvalidFormat},
		{"unknown key", `colour = "red"`, errors.ErrCodeInvalidFormat},
		{"bad fraction", `fraction = 2.0`, errors.ErrCodeInvalidInput},
		{"bad publisher", `publisher = "nature"`, errors.ErrCodeInvalidPublisher},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, filepath.Join(dir, string(rune('a'+i))), tt.body)
			if _, _, err := loadProjectConfig(path); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, _, err := loadProjectConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing explicit config error = %v", err)
	}
}

func TestParseSubplots(t *testing.T) {
	tests := []struct {
		in         string
		rows, cols int
		ok         bool
	}{
		{"1x1", 1, 1, true},
		{"2X3", 2, 3, true},
		{" 3 x 1 ", 3, 1, true},
		{"2", 0, 0, false},
		{"axb", 0, 0, false},
		{"0x2", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			rows, cols, err := parseSubplots(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("parseSubplots(%q) error = %v", tt.in, err)
			}
			if rows != tt.rows || cols != tt.cols {
				t.Errorf("parseSubplots(%q) = %d, %d", tt.in, rows, cols)
			}
		})
	}
}
