package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rg089/plotex/pkg/errors"
	"github.com/rg089/plotex/pkg/sizing"
	"github.com/rg089/plotex/pkg/style"
)

// projectConfig holds defaults read from plotex.toml.
type projectConfig struct {
	URL        string  `toml:"url"`
	Override   bool    `toml:"override"`
	Theme      string  `toml:"theme"`
	Palette    string  `toml:"palette"`
	Colorblind bool    `toml:"colorblind"`
	Publisher  string  `toml:"publisher"`
	Fraction   float64 `toml:"fraction"`
	CacheDir   string  `toml:"cache_dir"`

	Fetch struct {
		Attempts int `toml:"attempts"`
	} `toml:"fetch"`
}

// styleOptions returns the style options the file asks for.
func (p projectConfig) styleOptions() style.Options {
	return style.Options{
		URL:        p.URL,
		Override:   p.Override,
		Theme:      p.Theme,
		Palette:    p.Palette,
		Colorblind: p.Colorblind,
	}
}

// publisher returns the configured publisher, or the default one.
func (p projectConfig) publisher() string {
	if p.Publisher != "" {
		return p.Publisher
	}
	return sizing.DefaultPublisher
}

// loadProjectConfig reads path, or the first plotex.toml found in the
// working directory and then the user config directory. A missing file
// yields the zero config and an empty path.
func loadProjectConfig(path string) (projectConfig, string, error) {
	var cfg projectConfig
	if path == "" {
		path = findProjectConfig()
		if path == "" {
			return cfg, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, "", errors.New(errors.ErrCodeInvalidFormat, "%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Fraction != 0 {
		if err := errors.ValidateFraction(cfg.Fraction); err != nil {
			return cfg, "", err
		}
	}
	if cfg.Publisher != "" {
		if _, err := sizing.PublisherWidth(cfg.Publisher); err != nil {
			return cfg, "", err
		}
	}
	return cfg, path, nil
}

func findProjectConfig() string {
	candidates := []string{configFile}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, configFile))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
