package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local cache",
		Long:  "Clear or pre-populate the memoized catalog listing and type vocabulary.",
	}

	cmd.AddCommand(newCacheClearCmd())
	cmd.AddCommand(newCacheWarmCmd())

	return cmd
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the cached listing and vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				if err := d.ListingHandler.HandleClearCache(ctx); err != nil {
					return fmt.Errorf("clearing cache: %w", err)
				}
				fmt.Println("Cache cleared.")
				return nil
			})
		},
	}
}

func newCacheWarmCmd() *cobra.Command {
	var images bool

	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Fetch and cache the listing and vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				result, err := d.ListingHandler.HandleWarm(ctx, images)
				if err != nil {
					return fmt.Errorf("warming cache: %w", err)
				}

				fmt.Printf("Cached %d entries and %d types.\n", result.Entries, result.Types)
				if !result.CachedAt.IsZero() {
					fmt.Printf("Listing cached at %s.\n", result.CachedAt.Local().Format(time.DateTime))
				}
				if images {
					fmt.Printf("Prefetched %d sprites (%d failed).\n", result.SpritesFetched, result.SpritesFailed)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&images, "images", false, "Also prefetch every list sprite")

	return cmd
}
