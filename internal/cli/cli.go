// Package cli implements the plotex command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rg089/plotex/pkg/buildinfo"
	"github.com/rg089/plotex/pkg/cache"
	"github.com/rg089/plotex/pkg/httputil"
	"github.com/rg089/plotex/pkg/observability"
	"github.com/rg089/plotex/pkg/style"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "plotex"

	// configFile is the project configuration file name.
	configFile = appName + ".toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     projectConfig
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Plotex sizes and styles figures for publication",
		Long:         `Plotex sizes figures to a publisher's text width, loads a LaTeX-friendly style file and draws bar, pie and scatter charts from CSV data.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadProjectConfig(c.configPath)
			if err != nil {
				return err
			}
			if path != "" {
				c.Logger.Debug("Loaded project config", "path", path)
			}
			c.config = cfg

			hooks := newLogHooks(c.Logger)
			observability.SetChartHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "project config file (default ./"+configFile+")")

	// Register all subcommands
	root.AddCommand(c.sizeCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.paramsCommand())
	root.AddCommand(c.barCommand())
	root.AddCommand(c.stackCommand())
	root.AddCommand(c.pieCommand())
	root.AddCommand(c.scatterCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	for _, cmd := range root.Commands() {
		registerFlagCompletions(cmd)
	}

	return root
}

// =============================================================================
// Style Factory
// =============================================================================

// newStyle creates a style configuration backed by the on-disk cache.
func (c *CLI) newStyle(opts style.Options, noCache bool) (*style.Configuration, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	client := httputil.NewClient(httputil.WithAttempts(c.config.Fetch.Attempts))
	return style.New(opts,
		style.WithCache(store),
		style.WithFetcher(client),
		style.WithLogger(c.Logger),
	)
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the project's cache_dir when set, else the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.config.CacheDir != "" {
		return c.config.CacheDir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/plotex/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the user config directory using XDG standard (~/.config/plotex/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
