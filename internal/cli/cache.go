package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the analysis and layout cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if c.noCache {
				printInfo(out, "Caching is disabled")
				return nil
			}

			cc, err := c.newCache(cmd.Context())
			if err != nil {
				return err
			}
			defer cc.Close()

			switch cc := cc.(type) {
			case *cache.RedisCache:
				if err := cc.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear redis cache: %w", err)
				}
				printSuccess(out, "Cleared Redis cache")
				printDetail(out, "Address: %s", c.Config.RedisAddr)
			case *cache.FileCache:
				if err := cc.Clear(); err != nil {
					return fmt.Errorf("clear cache dir: %w", err)
				}
				printSuccess(out, "Cleared cache")
				printDetail(out, "Directory: %s", cc.Dir())
			default:
				printInfo(out, "Caching is disabled")
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where results are cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.RedisAddr != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "redis://"+c.Config.RedisAddr)
				return nil
			}
			dir := c.Config.CacheDir
			if dir == "" {
				d, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				dir = d
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
