package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rg089/plotex/pkg/cache"
	"github.com/rg089/plotex/pkg/style"
)

// configCommand creates the command that manages the cached style file.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the cached style file",
	}

	cmd.AddCommand(c.configFetchCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configClearCommand())

	return cmd
}

// configFetchCommand creates the "config fetch" subcommand.
func (c *CLI) configFetchCommand() *cobra.Command {
	var (
		url      string
		override bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the style file into the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.styleForCache(cmd, url, override)
			if err != nil {
				return err
			}

			spinner := newSpinnerWithContext(cmd.Context(), "Fetching style file...")
			spinner.Start()
			content, cached, err := cfg.Content(cmd.Context())
			if err != nil {
				spinner.StopWithError("Fetch failed")
				return err
			}
			spinner.Stop()

			if cached {
				printSuccess("Style file already cached")
			} else {
				printSuccess("Fetched style file (%d bytes)", len(content))
			}
			printKeyValue("URL", StyleLink.Render(cfg.Options().URL))
			printKeyValue("Key", cfg.Key())
			printNextStep("Refresh it with", "plotex config fetch --override")
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "style file URL (default: the published LaTeX style)")
	cmd.Flags().BoolVar(&override, "override", false, "refetch even when cached")

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path of the cached style file, fetching it if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.styleForCache(cmd, url, false)
			if err != nil {
				return err
			}
			path, err := cfg.Path(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "style file URL (default: the published LaTeX style)")

	return cmd
}

// configClearCommand creates the "config clear" subcommand.
func (c *CLI) configClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached style file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			store, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			count, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// styleForCache builds a file-cached style configuration for the config
// subcommands. Flags win over the project config.
func (c *CLI) styleForCache(cmd *cobra.Command, url string, override bool) (*style.Configuration, error) {
	opts := style.Options{URL: c.config.URL, Override: c.config.Override}
	if cmd.Flags().Changed("url") {
		opts.URL = url
	}
	if cmd.Flags().Changed("override") {
		opts.Override = override
	}
	return c.newStyle(opts, false)
}
